package nonmax

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/nonmax/internal/conv"
)

// And returns n & o.
//
// The result is never the maximum. Unsigned: AND only clears bits, and o
// already lacks one bit of the all-ones maximum. Signed: reaching the
// maximum needs every non-sign bit set in both operands and the sign bit
// clear in at least one, which makes that operand the maximum.
func (n NonMax[T]) And(o NonMax[T]) NonMax[T] {
	// (a^m)&(b^m) is not the encoding of a&b, so go through logical values.
	return NonMax[T]{repr: (n.Get() & o.Get()) ^ conv.Max[T]()}
}

// AndAssign sets n to n & o.
func (n *NonMax[T]) AndAssign(o NonMax[T]) {
	*n = n.And(o)
}

// AndMask returns n & mask for an arbitrary primitive mask.
//
// Only unsigned types qualify: for signed types -1 & MAX == MAX, so a plain
// operand could reintroduce the excluded value.
func AndMask[T constraints.Unsigned](n NonMax[T], mask T) NonMax[T] {
	return NonMax[T]{repr: (n.Get() & mask) ^ conv.Max[T]()}
}

// MaskAnd returns mask & n. It is AndMask with the operands swapped.
func MaskAnd[T constraints.Unsigned](mask T, n NonMax[T]) NonMax[T] {
	return AndMask(n, mask)
}

// AndAssignMask sets *n to *n & mask.
func AndAssignMask[T constraints.Unsigned](n *NonMax[T], mask T) {
	*n = AndMask(*n, mask)
}
