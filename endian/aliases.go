// SPDX-License-Identifier: EPL-2.0

package endian

import "unsafe"

// A single byte has no order.
type (
	U8LE = uint8
	U8BE = uint8
	I8LE = int8
	I8BE = int8
)

// Bytes returns the memory of s as a byte slice, without copying. The element
// type must not contain pointers.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}
