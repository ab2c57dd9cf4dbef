// Package lti provides a generic linear time-invariant discrete-time filter
// evaluated as a fixed-order difference equation:
//
//	a[0]*y[n] + a[1]*y[n-1] + ... + a[A-1]*y[n-(A-1)] =
//	b[0]*x[n] + b[1]*x[n-1] + ... + b[B-1]*x[n-(B-1)]
//
// Coefficients are normalized by a[0] at construction, so the recurrence is
// evaluated as
//
//	y[n] = sum_k b[k]*x[n-k] - sum_{k>=1} a[k]*y[n-k]
//
// A [Filter] owns fixed-capacity coefficient and history storage and performs
// no allocation after construction, making ProcessSample safe to call from a
// periodic real-time tick handler. After construction or [Filter.Reset], the
// filter outputs 0 until the input history x[n] .. x[n-(B-1)] is fully
// populated.
//
// Two filters cascade into a single higher-order filter via [Convolve], which
// convolves their coefficient sequences in the time domain.
//
// First-order designs (lowpass, highpass, integrator, differentiator) live in
// dsp/filter/design/firstorder.
package lti
