// Package conv provides linear convolution of finite coefficient sequences.
//
// The package implements direct O(N*M) time-domain convolution. It is the
// combination primitive behind filter cascading (dsp/filter/lti.Convolve),
// where both operands are short, capacity-bounded coefficient sequences and
// direct evaluation is always the right algorithm.
//
// # Usage
//
// For one-shot convolution:
//
//	result, err := conv.Direct(a, b)
//
// For allocation-free use with a pre-sized destination:
//
//	conv.DirectTo(dst, a, b) // len(dst) == len(a)+len(b)-1
package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1. Zero-alloc for short kernels.
func DirectTo(dst, a, b []float64) {
	n := len(a)
	m := len(b)

	// Use SIMD-accelerated path for kernels >= 8 samples
	const simdThreshold = 8
	if m >= simdThreshold {
		for i := range dst {
			dst[i] = 0
		}
		directToSIMD(dst, a, b, n, m)
		return
	}
	directToScalar(dst, a, b, n, m)
}

// directToScalar evaluates each output sample as a bound-clamped inner
// product:
//
//	y[i] = sum_{k=kmin..kmax} a[k] * b[i-k]
//
// with kmin = max(0, i-(m-1)) and kmax = min(n-1, i).
func directToScalar(dst, a, b []float64, n, m int) {
	for i := range dst {
		kmin := 0
		if i >= m {
			kmin = i - (m - 1)
		}
		kmax := i
		if kmax > n-1 {
			kmax = n - 1
		}

		var acc float64
		for k := kmin; k <= kmax; k++ {
			acc += a[k] * b[i-k]
		}
		dst[i] = acc
	}
}

// directToSIMD performs SIMD-accelerated convolution for larger kernels.
// Uses vecmath operations to vectorize the inner loop.
func directToSIMD(dst, a, b []float64, n, m int) {
	// Scratch buffer for the scaled kernel
	temp := make([]float64, m)

	for i := 0; i < n; i++ {
		// Scale kernel by current input sample: temp = b * a[i]
		vecmath.ScaleBlock(temp, b, a[i])

		// Accumulate into destination: dst[i:i+m] += temp
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Convolve performs linear convolution of a and b.
// The longer operand is treated as the signal and the shorter as the kernel.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) > len(a) {
		a, b = b, a
	}

	return Direct(a, b)
}

// ConvolveMode performs convolution with the specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeFull:
		return full
	case ModeSame:
		// Center the result to match length of first input
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		// Return only fully overlapping portion
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}
