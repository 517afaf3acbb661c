// SPDX-License-Identifier: EPL-2.0

package source

import (
	"bytes"
	"errors"
	"slices"
	"testing"
	"testing/iotest"
)

func TestRaw_Load(t *testing.T) {
	t.Parallel()

	input := []byte{0x01, 0x02, 0x03, 0x04, 0x80, 0x00, 0x7f, 0xff}
	clip, err := Raw{SampleRate: 32000}.Load(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []int16{0x0102, 0x0304, -32768, 32767}
	if !slices.Equal(clip.Samples, want) {
		t.Errorf("Samples = %#v, want %#v", clip.Samples, want)
	}
	if clip.SampleRate != 32000 {
		t.Errorf("SampleRate = %d, want 32000", clip.SampleRate)
	}
}

func TestRaw_Load_Errors(t *testing.T) {
	t.Parallel()

	errRead := errors.New("read failed")

	tests := []struct {
		name   string
		loader Raw
		input  []byte
		reader bool
		want   error
	}{
		{"odd length", Raw{SampleRate: 8000}, []byte{1, 2, 3}, false, ErrOddLength},
		{"no rate", Raw{}, []byte{1, 2}, false, ErrInvalidSampleRate},
		{"read failure", Raw{SampleRate: 8000}, nil, true, errRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := bytes.NewReader(tt.input)
			var err error
			if tt.reader {
				_, err = tt.loader.Load(iotest.ErrReader(errRead))
			} else {
				_, err = tt.loader.Load(r)
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRaw_Load_Empty(t *testing.T) {
	t.Parallel()

	clip, err := Raw{SampleRate: 8000}.Load(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(clip.Samples) != 0 {
		t.Errorf("len(Samples) = %d, want 0", len(clip.Samples))
	}
}
