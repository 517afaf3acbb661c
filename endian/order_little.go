//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

// SPDX-License-Identifier: EPL-2.0

package endian

import "encoding/binary"

// NativeBig reports whether the build target is big-endian.
const NativeBig = false

// Native returns the byte order of the build target.
func Native() binary.ByteOrder { return binary.LittleEndian }

type (
	U16LE = uint16
	U32LE = uint32
	U64LE = uint64
	I16LE = int16
	I32LE = int32
	I64LE = int64
	F32LE = float32
	F64LE = float64

	U16BE = Swapped[uint16]
	U32BE = Swapped[uint32]
	U64BE = Swapped[uint64]
	I16BE = Swapped[int16]
	I32BE = Swapped[int32]
	I64BE = Swapped[int64]
	F32BE = Swapped[float32]
	F64BE = Swapped[float64]
)

// ToLE returns v as a little-endian field.
func ToLE[T Scalar](v T) T { return v }

// FromLE returns the native value of a little-endian field.
func FromLE[T Scalar](v T) T { return v }

// ToBE returns v as a big-endian field.
func ToBE[T Scalar](v T) Swapped[T] { return FromNative(v) }

// FromBE returns the native value of a big-endian field.
func FromBE[T Scalar](v Swapped[T]) T { return v.Value() }
