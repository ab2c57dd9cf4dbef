package lti

import (
	"github.com/cwbudde/algo-lti/dsp/conv"
)

// Convolve combines two filters into a single filter whose response is their
// series cascade, expressed as one higher-order difference equation. The new
// coefficient sequences are the linear convolutions of the operands'
// sequences, so the combined orders are A1+A2-1 and B1+B2-1.
//
// Returns ErrCapacityExceeded if a combined order exceeds its capacity bound.
// Neither input filter is modified; the result starts from a cleared state.
func Convolve(f1, f2 *Filter) (*Filter, error) {
	na := f1.na + f2.na - 1
	nb := f1.nb + f2.nb - 1
	if na > MaxFeedback || nb > MaxFeedforward {
		return nil, ErrCapacityExceeded
	}

	var a [MaxFeedback]float64
	var b [MaxFeedforward]float64
	conv.DirectTo(a[:na], f1.a[:f1.na], f2.a[:f2.na])
	conv.DirectTo(b[:nb], f1.b[:f1.nb], f2.b[:f2.nb])

	// Both inputs are stored normalized, so a[0] == 1 and New cannot fail.
	return New(a[:na], b[:nb])
}
