// SPDX-License-Identifier: EPL-2.0

// Package endian provides numeric fields with a fixed byte order.
//
// A field declared with one of the order aliases (U32LE, U16BE, F64LE, ...) is
// laid out in memory exactly as the external format requires, whatever the
// byte order of the machine running the program. Records built from these
// aliases can therefore be written to a file byte for byte.
//
// # Aliases
//
// The aliases are resolved at build time from GOARCH. When the declared order
// matches the native order the alias is the bare Go type and no swap is ever
// performed:
//
//	// on amd64
//	var size endian.U32LE = 40       // plain uint32
//	var tag endian.U32BE             // endian.Swapped[uint32]
//
// When the orders differ the alias is Swapped[T], which stores the value byte
// reversed and converts on every access.
//
// # Portable code
//
// Because an alias is either T or Swapped[T] depending on the target, code that
// must build everywhere goes through the generic helpers:
//
//	size := endian.ToLE(uint32(40))  // U32LE on every target
//	n := endian.FromLE(size)         // uint32
//	tag := endian.ToBE(uint32(0x52494646))
//
// # Arithmetic
//
// Go has no operator overloading, so Swapped exposes arithmetic as methods
// (Add, Sub, Mul, Div) and integer-only operations as package functions (And,
// Or, Xor, Shl, Shr, Inc, Dec, ...). Each one decodes to the native value,
// applies the operator of T and encodes the result again. The stored bits are
// never exposed for arithmetic.
//
//	var n endian.Swapped[uint32]
//	n.Add(10)
//	endian.Shl(&n, 2)
//	fmt.Println(n) // 40
package endian
