package firstorder

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-lti/internal/testutil"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestLowpass_Coefficients(t *testing.T) {
	const cutoff, sampleRate = 100.0, 1000.0
	f, err := Lowpass(cutoff, sampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alpha := 1 / (1 + 2*math.Pi*cutoff/sampleRate)
	testutil.RequireSliceNearlyEqual(t, f.FeedbackCoefficients(), []float64{1, -alpha}, eps)
	testutil.RequireSliceNearlyEqual(t, f.FeedforwardCoefficients(), []float64{1 - alpha}, eps)
}

func TestLowpass_ZeroCutoff(t *testing.T) {
	// cutoff = 0 gives alpha = 1: a = [1,-1], b = [0], all-zero output.
	f, err := Lowpass(0, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, f.FeedbackCoefficients(), []float64{1, -1}, eps)
	testutil.RequireSliceNearlyEqual(t, f.FeedforwardCoefficients(), []float64{0}, eps)

	for i := 0; i < 10; i++ {
		if y := f.ProcessSample(1); y != 0 {
			t.Fatalf("sample %d: got %v, want 0", i, y)
		}
	}
}

func TestLowpass_ConvergesToDC(t *testing.T) {
	f, err := Lowpass(50, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := testutil.Ones(2000)
	out := make([]float64, len(input))
	f.ProcessBlockTo(out, input)

	if y := out[len(out)-1]; !almostEqual(y, 1, 1e-6) {
		t.Errorf("DC response: got %v, want 1", y)
	}
}

func TestHighpass_Coefficients(t *testing.T) {
	const cutoff, sampleRate = 100.0, 1000.0
	f, err := Highpass(cutoff, sampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alpha := 1 / (1 + 2*math.Pi*cutoff/sampleRate)
	testutil.RequireSliceNearlyEqual(t, f.FeedbackCoefficients(), []float64{1, -alpha}, eps)
	testutil.RequireSliceNearlyEqual(t, f.FeedforwardCoefficients(), []float64{alpha, -alpha}, eps)
}

func TestHighpass_BlocksDC(t *testing.T) {
	f, err := Highpass(50, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := testutil.DC(0.5, 2000)
	out := make([]float64, len(input))
	f.ProcessBlockTo(out, input)

	if y := out[len(out)-1]; !almostEqual(y, 0, 1e-6) {
		t.Errorf("DC response: got %v, want 0", y)
	}
}

func TestIntegrator_Accumulates(t *testing.T) {
	const sampleRate = 100.0
	f, err := Integrator(sampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Normalized recurrence: y[n] = y[n-1] + x[n]/sampleRate. B=1, so no
	// warmup delay.
	for n := 1; n <= 50; n++ {
		y := f.ProcessSample(1)
		want := float64(n) / sampleRate
		if !almostEqual(y, want, eps) {
			t.Fatalf("sample %d: got %v, want %v", n, y, want)
		}
	}
}

func TestDifferentiator_BackwardDifference(t *testing.T) {
	const sampleRate = 10.0
	f, err := Differentiator(sampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Ramp input x[n] = n has slope 1 per sample, so the difference scaled by
	// the sample rate is constant. B=2 gates the first output.
	input := []float64{0, 1, 2, 3, 4}
	want := []float64{0, 10, 10, 10, 10}
	for i, x := range input {
		y := f.ProcessSample(x)
		if !almostEqual(y, want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestIntegratorDifferentiator_Cancel(t *testing.T) {
	// Differentiating an integrated signal recovers it (up to warmup gating).
	const sampleRate = 48000.0
	integ, err := Integrator(sampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff, err := Differentiator(sampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := testutil.DeterministicSine(440, sampleRate, 1.0, 64)
	for i, x := range input {
		y := diff.ProcessSample(integ.ProcessSample(x))
		if i == 0 {
			continue // gated by the differentiator's warmup
		}
		if !almostEqual(y, x, 1e-6) {
			t.Fatalf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestInvalidParameters(t *testing.T) {
	if _, err := Lowpass(100, 0); err == nil {
		t.Error("Lowpass with zero sample rate: want error")
	}
	if _, err := Highpass(-1, 1000); err == nil {
		t.Error("Highpass with negative cutoff: want error")
	}
	if _, err := Lowpass(600, 1000); err == nil {
		t.Error("Lowpass with cutoff above Nyquist: want error")
	}
	if _, err := Highpass(500, 1000); err == nil {
		t.Error("Highpass with cutoff at Nyquist: want error")
	}
	if _, err := Integrator(-100); err == nil {
		t.Error("Integrator with negative sample rate: want error")
	}
	if _, err := Differentiator(0); err == nil {
		t.Error("Differentiator with zero sample rate: want error")
	}
}
