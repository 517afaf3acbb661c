//go:build mips || mips64 || ppc64 || s390x

// SPDX-License-Identifier: EPL-2.0

package endian

import "encoding/binary"

// NativeBig reports whether the build target is big-endian.
const NativeBig = true

// Native returns the byte order of the build target.
func Native() binary.ByteOrder { return binary.BigEndian }

type (
	U16BE = uint16
	U32BE = uint32
	U64BE = uint64
	I16BE = int16
	I32BE = int32
	I64BE = int64
	F32BE = float32
	F64BE = float64

	U16LE = Swapped[uint16]
	U32LE = Swapped[uint32]
	U64LE = Swapped[uint64]
	I16LE = Swapped[int16]
	I32LE = Swapped[int32]
	I64LE = Swapped[int64]
	F32LE = Swapped[float32]
	F64LE = Swapped[float64]
)

// ToBE returns v as a big-endian field.
func ToBE[T Scalar](v T) T { return v }

// FromBE returns the native value of a big-endian field.
func FromBE[T Scalar](v T) T { return v }

// ToLE returns v as a little-endian field.
func ToLE[T Scalar](v T) Swapped[T] { return FromNative(v) }

// FromLE returns the native value of a little-endian field.
func FromLE[T Scalar](v Swapped[T]) T { return v.Value() }
