// SPDX-License-Identifier: EPL-2.0

package riff

import "github.com/ik5/micwav/endian"

// Header is the master RIFF chunk header. Size counts every byte after the
// Size field itself.
type Header struct {
	ID     idBE
	Size   endian.U32LE
	Format idBE
}

// ChunkHeader precedes the body of every sub-chunk. Size is the body length.
type ChunkHeader struct {
	ID   idBE
	Size endian.U32LE
}

// FormatChunk is the body of a "fmt " chunk for integer PCM.
type FormatChunk struct {
	AudioFormat   audioFormatLE
	Channels      endian.U16LE
	SampleRate    endian.U32LE
	ByteRate      endian.U32LE
	BlockAlign    endian.U16LE
	BitsPerSample endian.U16LE
}

// NewHeader returns a RIFF/WAVE header declaring size bytes after the size
// field.
func NewHeader(size uint32) Header {
	return Header{
		ID:     endian.ToBE(RIFF),
		Size:   endian.ToLE(size),
		Format: endian.ToBE(WAVE),
	}
}

func (h Header) Tag() ID      { return endian.FromBE(h.ID) }
func (h Header) Len() uint32  { return endian.FromLE(h.Size) }
func (h Header) FormatID() ID { return endian.FromBE(h.Format) }

// NewChunkHeader returns the header of a chunk with a body of size bytes.
func NewChunkHeader(id ID, size uint32) ChunkHeader {
	return ChunkHeader{
		ID:   endian.ToBE(id),
		Size: endian.ToLE(size),
	}
}

func (c ChunkHeader) Tag() ID     { return endian.FromBE(c.ID) }
func (c ChunkHeader) Len() uint32 { return endian.FromLE(c.Size) }

// NewFormatChunk describes interleaved integer samples. The byte rate and the
// block alignment are derived from the other fields.
func NewFormatChunk(format AudioFormat, channels uint16, sampleRate uint32, bitsPerSample uint16) FormatChunk {
	blockAlign := channels * (bitsPerSample / 8)

	return FormatChunk{
		AudioFormat:   endian.ToLE(format),
		Channels:      endian.ToLE(channels),
		SampleRate:    endian.ToLE(sampleRate),
		ByteRate:      endian.ToLE(sampleRate * uint32(blockAlign)),
		BlockAlign:    endian.ToLE(blockAlign),
		BitsPerSample: endian.ToLE(bitsPerSample),
	}
}

func (f FormatChunk) Format() AudioFormat { return endian.FromLE(f.AudioFormat) }
func (f FormatChunk) NumChannels() uint16 { return endian.FromLE(f.Channels) }
func (f FormatChunk) Rate() uint32        { return endian.FromLE(f.SampleRate) }
func (f FormatChunk) BytesPerSec() uint32 { return endian.FromLE(f.ByteRate) }
func (f FormatChunk) Align() uint16       { return endian.FromLE(f.BlockAlign) }
func (f FormatChunk) Bits() uint16        { return endian.FromLE(f.BitsPerSample) }
