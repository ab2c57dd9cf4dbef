// Package firstorder designs basic first-order LTI filters.
//
// Each design function derives difference-equation coefficients from the
// analog prototype and returns a ready-to-run dsp/filter/lti Filter. The
// lowpass and highpass designs use the standard RC smoothing factor
//
//	alpha = 1 / (1 + 2*pi*cutoff/sampleRate)
//
// while the integrator and differentiator discretize 1/s and s directly.
package firstorder

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lti/dsp/filter/lti"
)

// alphaFor computes the RC smoothing factor for the given cutoff and sample
// frequency. cutoff == 0 yields alpha == 1 (degenerate all-pass-blocking
// lowpass).
func alphaFor(cutoff, sampleRate float64) float64 {
	return 1 / (1 + 2*math.Pi*cutoff/sampleRate)
}

func validateRates(cutoff, sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("firstorder: sample rate must be > 0: %g", sampleRate)
	}
	if cutoff < 0 {
		return fmt.Errorf("firstorder: cutoff must be >= 0: %g", cutoff)
	}
	if cutoff >= sampleRate/2 {
		return fmt.Errorf("firstorder: cutoff must be below Nyquist (%g): %g", sampleRate/2, cutoff)
	}
	return nil
}

// Lowpass designs a first-order lowpass filter with the given cutoff
// frequency (Hz) at the given sample rate (Hz):
//
//	a = [1, -alpha], b = [1-alpha]
func Lowpass(cutoff, sampleRate float64) (*lti.Filter, error) {
	if err := validateRates(cutoff, sampleRate); err != nil {
		return nil, err
	}
	alpha := alphaFor(cutoff, sampleRate)
	return lti.New([]float64{1, -alpha}, []float64{1 - alpha})
}

// Highpass designs a first-order highpass filter with the given cutoff
// frequency (Hz) at the given sample rate (Hz):
//
//	a = [1, -alpha], b = [alpha, -alpha]
func Highpass(cutoff, sampleRate float64) (*lti.Filter, error) {
	if err := validateRates(cutoff, sampleRate); err != nil {
		return nil, err
	}
	alpha := alphaFor(cutoff, sampleRate)
	return lti.New([]float64{1, -alpha}, []float64{alpha, -alpha})
}

// Integrator designs a discrete integrator at the given sample rate (Hz):
//
//	a = [sampleRate, -sampleRate], b = [1]
//
// After normalization each input sample adds x[n]/sampleRate to a running
// sum.
func Integrator(sampleRate float64) (*lti.Filter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("firstorder: sample rate must be > 0: %g", sampleRate)
	}
	return lti.New([]float64{sampleRate, -sampleRate}, []float64{1})
}

// Differentiator designs a discrete differentiator at the given sample rate
// (Hz):
//
//	a = [1], b = [sampleRate, -sampleRate]
//
// The output is the backward difference (x[n]-x[n-1])*sampleRate.
func Differentiator(sampleRate float64) (*lti.Filter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("firstorder: sample rate must be > 0: %g", sampleRate)
	}
	return lti.New([]float64{1}, []float64{sampleRate, -sampleRate})
}
