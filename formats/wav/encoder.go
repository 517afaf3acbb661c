// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"github.com/ik5/micwav/endian"
	"github.com/ik5/micwav/wbfile"
)

// Encode writes a mono 16-bit PCM WAV holding samples to f.
//
// The samples are numeric values as captured by a big-endian device. They are
// stored little-endian as the format requires, a byte swap on big-endian
// machines and a copy elsewhere. The caller's slice is left untouched.
func Encode(f *wbfile.File, samples []int16, sampleRate uint32) error {
	l, err := NewLayout(len(samples), sampleRate)
	if err != nil {
		return err
	}

	return encode(f, l, samples)
}

func encode(f *wbfile.File, l Layout, samples []int16) error {
	if err := wbfile.Write(f, l.Header()); err != nil {
		return err
	}
	if err := wbfile.Write(f, l.FormatHeader()); err != nil {
		return err
	}
	if err := wbfile.Write(f, l.Format()); err != nil {
		return err
	}
	if err := wbfile.Write(f, l.DataHeader()); err != nil {
		return err
	}

	payload := LittleEndianSamples(samples)
	n, err := wbfile.WriteRange(f, payload)
	if n != len(payload) {
		return &wbfile.ShortWriteError{
			Requested: len(payload) * bytesPerSample,
			Written:   n * bytesPerSample,
			Err:       err,
		}
	}

	return err
}

// LittleEndianSamples returns a copy of samples laid out little-endian.
func LittleEndianSamples(samples []int16) []endian.I16LE {
	out := make([]endian.I16LE, len(samples))
	for i, s := range samples {
		out[i] = endian.ToLE(s)
	}
	return out
}
