// SPDX-License-Identifier: EPL-2.0

package endian

import (
	"cmp"
	"fmt"
)

// Swapped holds a T in the byte order opposite to the native one.
//
// It has the size and alignment of T and no other state, so it can be embedded
// in records that mirror an external binary layout. The zero value is zero.
//
// Swapped is normally reached through an order alias (U32BE on a little-endian
// machine, U32LE on a big-endian one) rather than named directly.
type Swapped[T Scalar] struct {
	v T
}

// FromNative stores the native value v.
func FromNative[T Scalar](v T) Swapped[T] {
	return Swapped[T]{v: Swap(v)}
}

// FromStorage stores v verbatim. Use it when the bytes of v are already in the
// storage order.
func FromStorage[T Scalar](v T) Swapped[T] {
	return Swapped[T]{v: v}
}

// Convert decodes s, converts the value to D using Go conversion rules and
// stores the result.
func Convert[D, S Scalar](s Swapped[S]) Swapped[D] {
	return FromNative(D(s.Value()))
}

// Value returns the value in native order.
func (s Swapped[T]) Value() T { return Swap(s.v) }

// Storage returns the stored representation, bytes in storage order.
func (s Swapped[T]) Storage() T { return s.v }

// Set replaces the value with the native value v.
func (s *Swapped[T]) Set(v T) { s.v = Swap(v) }

func (s *Swapped[T]) Add(v T) { s.v = Swap(s.Value() + v) }
func (s *Swapped[T]) Sub(v T) { s.v = Swap(s.Value() - v) }
func (s *Swapped[T]) Mul(v T) { s.v = Swap(s.Value() * v) }

// Div divides by v. Integer division by zero panics, as it does for T.
func (s *Swapped[T]) Div(v T) { s.v = Swap(s.Value() / v) }

// Equal reports whether both values are numerically equal. Unlike ==, it
// follows float rules: NaN is not equal to itself and -0 equals +0.
func (s Swapped[T]) Equal(o Swapped[T]) bool { return s.Value() == o.Value() }

// Compare returns -1, 0 or +1 following cmp.Compare on the native values.
func (s Swapped[T]) Compare(o Swapped[T]) int { return cmp.Compare(s.Value(), o.Value()) }

func (s Swapped[T]) String() string { return fmt.Sprint(s.Value()) }

// Format applies any fmt verb and flags to the native value.
func (s Swapped[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), s.Value())
}
