package conv

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bits returns the width of T in bits.
func Bits[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Signed reports whether T is a signed integer type.
func Signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < 0
}

// Max returns the largest value representable by T.
//
// For unsigned types this is the all-ones pattern. For signed types it is
// every bit except the sign bit.
func Max[T constraints.Integer]() T {
	var zero T
	ones := ^zero
	if ones > 0 {
		return ones
	}
	return T(^uint64(0) >> (65 - Bits[T]()))
}

// Min returns the smallest value representable by T.
func Min[T constraints.Integer]() T {
	if Signed[T]() {
		return ^Max[T]()
	}
	return 0
}

// Widens reports whether every value of S is representable by D without
// reaching D's maximum. It holds when D is strictly wider than S and D is
// signed whenever S is.
func Widens[S, D constraints.Integer]() bool {
	if Bits[D]() <= Bits[S]() {
		return false
	}
	return Signed[D]() || !Signed[S]()
}
