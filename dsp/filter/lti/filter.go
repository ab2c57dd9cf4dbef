package lti

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Capacity bounds for coefficient and history storage. A Filter never
// allocates beyond these, which keeps instances fixed-size for embedded and
// real-time use. Both bounds must be at least 2.
const (
	// MaxFeedback is the maximum number of feedback (a) coefficients.
	MaxFeedback = 16

	// MaxFeedforward is the maximum number of feedforward (b) coefficients.
	MaxFeedforward = 16
)

// Compile-time guards: a bound below 2 makes these constant expressions
// invalid.
const (
	_ = uint(MaxFeedback - 2)
	_ = uint(MaxFeedforward - 2)
)

// Errors returned by filter construction and combination.
var (
	ErrEmptyCoefficients   = errors.New("lti: empty coefficient sequence")
	ErrInvalidCoefficients = errors.New("lti: leading feedback coefficient is zero")
	ErrCapacityExceeded    = errors.New("lti: filter order exceeds capacity")
)

// Filter is a discrete-time LTI filter with fixed-capacity coefficient and
// history storage. Histories are kept most-recent-first: x[0] and y[0] are
// the current input and output.
//
// A Filter is owned and mutated by a single caller; instances are independent
// and require no locking.
type Filter struct {
	na, nb int

	a [MaxFeedback]float64
	b [MaxFeedforward]float64
	y [MaxFeedback]float64
	x [MaxFeedforward]float64

	// warmup counts samples processed since the last reset, saturating at nb.
	warmup int
}

// New creates a filter from feedback coefficients a and feedforward
// coefficients b. Both sequences are copied and normalized by a[0], so the
// stored a[0] is 1.
//
// Returns ErrEmptyCoefficients if either sequence is empty,
// ErrCapacityExceeded if a sequence exceeds its capacity bound, and
// ErrInvalidCoefficients if a[0] == 0.
func New(a, b []float64) (*Filter, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyCoefficients
	}
	if len(a) > MaxFeedback || len(b) > MaxFeedforward {
		return nil, ErrCapacityExceeded
	}
	if a[0] == 0 {
		return nil, ErrInvalidCoefficients
	}

	f := &Filter{na: len(a), nb: len(b)}
	copy(f.a[:f.na], a)
	copy(f.b[:f.nb], b)

	scale := 1 / a[0]
	vecmath.ScaleBlockInPlace(f.a[:f.na], scale)
	vecmath.ScaleBlockInPlace(f.b[:f.nb], scale)
	// a[0]*(1/a[0]) can round away from 1; the stored pivot must be exact.
	f.a[0] = 1

	f.Reset()
	return f, nil
}

// NewIdentity creates a pass-through filter y[n] = x[n].
func NewIdentity() *Filter {
	f := &Filter{na: 1, nb: 1}
	f.a[0] = 1
	f.b[0] = 1
	f.Reset()
	return f
}

// ProcessSample feeds one input sample x[n] and returns the output y[n].
//
// While fewer than NumFeedforward samples have been processed since
// construction or reset, the input history is not yet fully populated and the
// return value is 0 regardless of the computed output. The recurrence state
// still advances during this warmup, so the first ungated output is exact.
func (f *Filter) ProcessSample(xn float64) float64 {
	for n := f.na - 1; n > 0; n-- {
		f.y[n] = f.y[n-1]
	}
	for n := f.nb - 1; n > 0; n-- {
		f.x[n] = f.x[n-1]
	}
	f.x[0] = xn

	var yn float64
	for k := 0; k < f.nb; k++ {
		yn += f.b[k] * f.x[k]
	}
	for k := 1; k < f.na; k++ {
		yn -= f.a[k] * f.y[k]
	}
	f.y[0] = yn

	if f.warmup < f.nb {
		f.warmup++
		return 0
	}
	return yn
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears all past inputs and outputs and restarts the warmup period.
// Coefficients are untouched.
func (f *Filter) Reset() {
	for n := 0; n < f.na; n++ {
		f.y[n] = 0
	}
	for n := 0; n < f.nb; n++ {
		f.x[n] = 0
	}
	f.warmup = 1
}

// NumFeedback returns the number of feedback (a) coefficients.
func (f *Filter) NumFeedback() int { return f.na }

// NumFeedforward returns the number of feedforward (b) coefficients.
func (f *Filter) NumFeedforward() int { return f.nb }

// Order returns the filter order, the larger of the two coefficient counts
// minus one.
func (f *Filter) Order() int {
	if f.na > f.nb {
		return f.na - 1
	}
	return f.nb - 1
}

// FeedbackCoefficients returns a copy of the normalized feedback coefficients.
func (f *Filter) FeedbackCoefficients() []float64 {
	c := make([]float64, f.na)
	copy(c, f.a[:f.na])
	return c
}

// FeedforwardCoefficients returns a copy of the normalized feedforward
// coefficients.
func (f *Filter) FeedforwardCoefficients() []float64 {
	c := make([]float64, f.nb)
	copy(c, f.b[:f.nb])
	return c
}

// State is a snapshot of a filter's history buffers and warmup progress.
type State struct {
	X      [MaxFeedforward]float64
	Y      [MaxFeedback]float64
	Warmup int
}

// State returns the current history state.
func (f *Filter) State() State {
	return State{X: f.x, Y: f.y, Warmup: f.warmup}
}

// SetState restores a previously saved history state.
func (f *Filter) SetState(s State) {
	f.x = s.X
	f.y = s.Y
	f.warmup = s.Warmup
}

// ImpulseResponse computes n samples of the filter's response to a unit
// impulse from a cleared state. The filter itself is not modified. Warmup
// gating applies, so for a filter with NumFeedforward B the first B-1 samples
// are 0.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	c := *f
	c.Reset()
	ir := make([]float64, n)
	ir[0] = c.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = c.ProcessSample(0)
	}
	return ir
}
