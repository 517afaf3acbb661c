// SPDX-License-Identifier: EPL-2.0

package source

import "math"

// Float32ToInt16 converts a sample in [-1, 1] to 16 bits, clamping values
// outside the range.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1 in range.
	return int16(x * 32767.0)
}

// Downmix averages interleaved frames of the given channel count into mono.
// A trailing partial frame is dropped. channels must be positive.
func Downmix[T int | int16 | int32](interleaved []T, channels int) []int16 {
	frames := len(interleaved) / channels
	out := make([]int16, frames)

	if channels == 1 {
		for i := range out {
			out[i] = clamp16(int64(interleaved[i]))
		}
		return out
	}

	for i := range out {
		var sum int64
		for _, v := range interleaved[i*channels : (i+1)*channels] {
			sum += int64(v)
		}
		out[i] = clamp16(sum / int64(channels))
	}

	return out
}

func clamp16(v int64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}
