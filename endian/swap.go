// SPDX-License-Identifier: EPL-2.0

package endian

import (
	"math/bits"
	"unsafe"
)

// Integer is the set of fixed-width integer types, including named types such
// as enumerations declared over them.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of IEEE 754 binary types. Only 32 and 64 bit widths exist.
type Float interface {
	~float32 | ~float64
}

// Scalar is every type that can carry a byte order.
type Scalar interface {
	Integer | Float
}

// Swap reverses the byte order of v.
//
// Floating point values are swapped on their bit pattern, never through a
// numeric conversion. Single byte values are returned unchanged.
func Swap[T Scalar](v T) T {
	p := unsafe.Pointer(&v)

	switch unsafe.Sizeof(v) {
	case 2:
		*(*uint16)(p) = bits.ReverseBytes16(*(*uint16)(p))
	case 4:
		*(*uint32)(p) = bits.ReverseBytes32(*(*uint32)(p))
	case 8:
		*(*uint64)(p) = bits.ReverseBytes64(*(*uint64)(p))
	}

	return v
}
