// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"math"

	"github.com/ik5/micwav/riff"
)

const (
	// Channels is the channel count of every file written by this package.
	Channels = 1
	// BitsPerSample is the sample width of every file written by this package.
	BitsPerSample = 16

	// HeaderSize is the number of bytes before the first sample.
	HeaderSize = riff.HeaderSize + riff.ChunkHeaderSize + riff.FormatChunkSize + riff.ChunkHeaderSize

	bytesPerSample = BitsPerSample / 8

	// MaxSampleRate is the highest rate whose byte rate fits the 32-bit field.
	MaxSampleRate = math.MaxUint32 / (Channels * bytesPerSample)
)

// Layout holds the sizes of a mono 16-bit PCM file.
type Layout struct {
	NumSamples int
	SampleRate uint32

	// DataSize is the payload length, the size of the data chunk.
	DataSize uint32
	// RIFFSize is the master chunk size: the "WAVE" tag plus every sub-chunk.
	RIFFSize   uint32
	ByteRate   uint32
	BlockAlign uint16
}

// NewLayout computes the layout for numSamples samples at sampleRate.
func NewLayout(numSamples int, sampleRate uint32) (Layout, error) {
	if sampleRate == 0 || sampleRate > MaxSampleRate {
		return Layout{}, ErrInvalidSampleRate
	}

	const overhead = 4 + riff.ChunkHeaderSize + riff.FormatChunkSize + riff.ChunkHeaderSize
	if numSamples < 0 || uint64(numSamples)*bytesPerSample > math.MaxUint32-overhead {
		return Layout{}, ErrTooManySamples
	}

	dataSize := uint32(numSamples) * bytesPerSample

	return Layout{
		NumSamples: numSamples,
		SampleRate: sampleRate,
		DataSize:   dataSize,
		RIFFSize:   overhead + dataSize,
		ByteRate:   sampleRate * Channels * bytesPerSample,
		BlockAlign: Channels * bytesPerSample,
	}, nil
}

// Header returns the master chunk header.
func (l Layout) Header() riff.Header {
	return riff.NewHeader(l.RIFFSize)
}

// FormatHeader returns the header of the fmt chunk.
func (l Layout) FormatHeader() riff.ChunkHeader {
	return riff.NewChunkHeader(riff.Fmt, riff.FormatChunkSize)
}

// Format returns the body of the fmt chunk.
func (l Layout) Format() riff.FormatChunk {
	return riff.NewFormatChunk(riff.PCM, Channels, l.SampleRate, BitsPerSample)
}

// DataHeader returns the header of the data chunk.
func (l Layout) DataHeader() riff.ChunkHeader {
	return riff.NewChunkHeader(riff.Data, l.DataSize)
}
