// SPDX-License-Identifier: EPL-2.0

package endian

// Bitwise operations commute with a byte swap, so And, Or, Xor, AndNot and Not
// work on the stored bits directly. Shifts and increments go through the native
// value.

func And[T Integer](s *Swapped[T], v T)    { s.v &= Swap(v) }
func Or[T Integer](s *Swapped[T], v T)     { s.v |= Swap(v) }
func Xor[T Integer](s *Swapped[T], v T)    { s.v ^= Swap(v) }
func AndNot[T Integer](s *Swapped[T], v T) { s.v &^= Swap(v) }

// Not returns the bitwise complement of s.
func Not[T Integer](s Swapped[T]) Swapped[T] {
	return Swapped[T]{v: ^s.v}
}

func Shl[T Integer](s *Swapped[T], n uint) { s.v = Swap(s.Value() << n) }
func Shr[T Integer](s *Swapped[T], n uint) { s.v = Swap(s.Value() >> n) }

// Inc adds one and returns the value held before the increment.
func Inc[T Integer](s *Swapped[T]) T {
	old := s.Value()
	s.v = Swap(old + 1)
	return old
}

// Dec subtracts one and returns the value held before the decrement.
func Dec[T Integer](s *Swapped[T]) T {
	old := s.Value()
	s.v = Swap(old - 1)
	return old
}
