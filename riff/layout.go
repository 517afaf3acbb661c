// SPDX-License-Identifier: EPL-2.0

package riff

import "unsafe"

// Sizes of the records as defined by the RIFF/WAVE format.
const (
	HeaderSize      = 0x0c
	ChunkHeaderSize = 0x08
	FormatChunkSize = 0x10
)

var (
	header Header
	chunk  ChunkHeader
	format FormatChunk
)

// Each assertion is an array whose length is zero only when the layout is the
// documented one. A larger value gives a non-empty array that cannot be
// assigned, a smaller one underflows uintptr. Both fail to compile.
var (
	_ [0]struct{} = [unsafe.Sizeof(header) - HeaderSize]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(header.Size) - 0x04]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(header.Format) - 0x08]struct{}{}

	_ [0]struct{} = [unsafe.Sizeof(chunk) - ChunkHeaderSize]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(chunk.Size) - 0x04]struct{}{}

	_ [0]struct{} = [unsafe.Sizeof(format) - FormatChunkSize]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(format.Channels) - 0x02]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(format.SampleRate) - 0x04]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(format.ByteRate) - 0x08]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(format.BlockAlign) - 0x0c]struct{}{}
	_ [0]struct{} = [unsafe.Offsetof(format.BitsPerSample) - 0x0e]struct{}{}
)

// Bytes returns the memory of a record, which is its encoding.
func Bytes[T Header | ChunkHeader | FormatChunk](r *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(r)), unsafe.Sizeof(*r))
}
