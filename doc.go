// Package nonmax provides integer types that can never hold the maximum value
// of their underlying primitive.
//
// Excluding one bit pattern gives every type a niche: Option[T] uses it to
// represent "absent", so an optional non-max integer occupies exactly the
// same memory as the primitive itself. Tables of optional indices, handles
// and slot references pay nothing for the missing case.
//
// # Quick Start
//
//	n, ok := nonmax.New[uint32](42)   // ok is false only for math.MaxUint32
//	fmt.Println(n.Get())              // 42
//
//	var slot nonmax.Option[uint32]    // zero value is None
//	slot = nonmax.Some(n)
//	if v, ok := slot.Value(); ok {
//	    fmt.Println(v)
//	}
//
// # Encoding
//
// A NonMax[T] stores v XOR MAX, where MAX is the largest value of T. The
// forbidden logical value MAX maps to the all-zero pattern, which is exactly
// the zero value of the struct and therefore of Option[T]. XOR is its own
// inverse, so Get is a single instruction and no carry or wraparound check is
// needed at the signed extremes.
//
// Because the bias reverses order for unsigned types, comparisons always go
// through the logical value (Compare, Less); raw patterns are never compared.
//
// # Widths
//
// NonMax is generic over every sized Go integer. Named instantiations are
// provided for the common widths (NonMaxU8 ... NonMaxInt). The 128-bit types
// NonMaxU128 and NonMaxI128 are backed by github.com/shabbyrobe/go-num.
//
// Widening conversions (NonMaxU32FromNonMaxU16, NonMaxI64FromU32, ...) and
// per-type constants are generated by cmd/nonmaxgen. Narrowing is never
// offered; narrow the primitive yourself and go through New or TryFrom.
//
// # Bitwise AND
//
// AND can only clear bits, so And on two non-max values is always non-max.
// Mixing in a plain primitive (AndMask, MaskAnd) is only sound for unsigned
// types and is restricted to them by constraint: for signed types -1 AND the
// maximum yields the maximum.
//
// # Unchecked construction
//
// NewUnchecked skips validation. Passing the maximum produces a value whose
// pattern is the None niche and silently corrupts every Option built from it.
// Build with -tags nonmax_debug to turn the precondition into a panic.
package nonmax

//go:generate go run ./cmd/nonmaxgen -o conversions_gen.go
