// SPDX-License-Identifier: EPL-2.0

// Package resample converts mono 16-bit recordings between sample rates.
//
// Samples are interpolated with a Catmull-Rom spline. When lowering the rate a
// one-pole low-pass filter runs over the input first to tame aliasing.
//
//	out, err := resample.Mono(clip.Samples, clip.SampleRate, 16000)
package resample

import (
	"errors"
	"math"
)

// ErrInvalidRate indicates a zero source or destination sample rate.
var ErrInvalidRate = errors.New("invalid sample rate")

// filterAlpha is the coefficient of the anti-aliasing filter:
// y[n] = alpha*x[n] + (1-alpha)*y[n-1].
const filterAlpha = 0.5

// CubicInterpolate performs cubic interpolation
// x is the fractional position between y1 and y2 (0 <= x <= 1)
// y0, y1, y2, y3 are four consecutive samples
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}

// Len returns the number of samples Mono produces for n input samples.
func Len(n int, srcRate, dstRate uint32) int {
	if n <= 0 || srcRate == 0 || dstRate == 0 {
		return 0
	}
	return int((uint64(n)*uint64(dstRate) + uint64(srcRate) - 1) / uint64(srcRate))
}

// Mono resamples samples from srcRate to dstRate into a new slice. Equal rates
// give a copy.
func Mono(samples []int16, srcRate, dstRate uint32) ([]int16, error) {
	if srcRate == 0 || dstRate == 0 {
		return nil, ErrInvalidRate
	}

	if srcRate == dstRate {
		out := make([]int16, len(samples))
		copy(out, samples)
		return out, nil
	}

	in := make([]float32, len(samples))
	for i, s := range samples {
		in[i] = float32(s)
	}
	if srcRate > dstRate {
		lowPass(in)
	}

	out := make([]int16, Len(len(samples), srcRate, dstRate))
	ratio := float64(srcRate) / float64(dstRate)
	last := len(in) - 1

	at := func(i int) float32 {
		return in[max(0, min(i, last))]
	}

	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := float32(pos - float64(idx))

		v := CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
		out[i] = toInt16(v)
	}

	return out, nil
}

// lowPass filters in place, starting from the first sample to avoid a warm-up
// transient.
func lowPass(in []float32) {
	if len(in) == 0 {
		return
	}

	state := in[0]
	for i, x := range in {
		state = filterAlpha*x + (1-filterAlpha)*state
		in[i] = state
	}
}

func toInt16(v float32) int16 {
	r := math.Round(float64(v))
	switch {
	case r > math.MaxInt16:
		return math.MaxInt16
	case r < math.MinInt16:
		return math.MinInt16
	default:
		return int16(r)
	}
}
