// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/micwav/riff"
)

func TestNewLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		numSamples int
		rate       uint32
		dataSize   uint32
		riffSize   uint32
		byteRate   uint32
	}{
		{"empty", 0, 8000, 0, 36, 16000},
		{"two samples", 2, 32000, 4, 40, 64000},
		{"one second", 44100, 44100, 88200, 88236, 88200},
		{"largest", (math.MaxUint32 - 36) / 2, 8000, math.MaxUint32 - 37, math.MaxUint32 - 1, 16000},
		{"highest rate", 1, MaxSampleRate, 2, 38, math.MaxUint32 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l, err := NewLayout(tt.numSamples, tt.rate)
			if err != nil {
				t.Fatalf("NewLayout() error = %v", err)
			}
			if l.DataSize != tt.dataSize {
				t.Errorf("DataSize = %d, want %d", l.DataSize, tt.dataSize)
			}
			if l.RIFFSize != tt.riffSize {
				t.Errorf("RIFFSize = %d, want %d", l.RIFFSize, tt.riffSize)
			}
			if l.ByteRate != tt.byteRate {
				t.Errorf("ByteRate = %d, want %d", l.ByteRate, tt.byteRate)
			}
			if l.BlockAlign != 2 {
				t.Errorf("BlockAlign = %d, want 2", l.BlockAlign)
			}
		})
	}
}

func TestNewLayout_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		numSamples int
		rate       uint32
		want       error
	}{
		{"zero rate", 1, 0, ErrInvalidSampleRate},
		{"byte rate overflow", 1, MaxSampleRate + 1, ErrInvalidSampleRate},
		{"negative count", -1, 8000, ErrTooManySamples},
		{"riff size overflow", (math.MaxUint32-36)/2 + 1, 8000, ErrTooManySamples},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := NewLayout(tt.numSamples, tt.rate); !errors.Is(err, tt.want) {
				t.Errorf("NewLayout() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLayout_Records(t *testing.T) {
	t.Parallel()

	l, err := NewLayout(3, 16000)
	if err != nil {
		t.Fatal(err)
	}

	if h := l.Header(); h.Tag() != riff.RIFF || h.Len() != 42 || h.FormatID() != riff.WAVE {
		t.Errorf("Header() = %v %d %v", h.Tag(), h.Len(), h.FormatID())
	}
	if h := l.FormatHeader(); h.Tag() != riff.Fmt || h.Len() != riff.FormatChunkSize {
		t.Errorf("FormatHeader() = %v %d", h.Tag(), h.Len())
	}
	if h := l.DataHeader(); h.Tag() != riff.Data || h.Len() != 6 {
		t.Errorf("DataHeader() = %v %d", h.Tag(), h.Len())
	}

	f := l.Format()
	if f.Format() != riff.PCM || f.NumChannels() != 1 || f.Rate() != 16000 ||
		f.BytesPerSec() != 32000 || f.Align() != 2 || f.Bits() != 16 {
		t.Errorf("Format() = %v %d %d %d %d %d",
			f.Format(), f.NumChannels(), f.Rate(), f.BytesPerSec(), f.Align(), f.Bits())
	}
}

func TestHeaderSize(t *testing.T) {
	t.Parallel()

	if HeaderSize != 44 {
		t.Errorf("HeaderSize = %d, want 44", HeaderSize)
	}
}
