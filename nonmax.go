package nonmax

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/nonmax/internal/conv"
)

// NonMax is an integer of type T that is known not to equal T's maximum.
//
// The zero value is not a valid NonMax: it is the niche pattern that
// Option[T] uses for None. Obtain values from New, TryFrom, NewUnchecked,
// Parse, the conversion functions or the constants.
type NonMax[T constraints.Integer] struct {
	repr T // v ^ max; zero only for the excluded value
}

// Named instantiations for Go's sized integer types.
type (
	NonMaxU8   = NonMax[uint8]
	NonMaxU16  = NonMax[uint16]
	NonMaxU32  = NonMax[uint32]
	NonMaxU64  = NonMax[uint64]
	NonMaxUint = NonMax[uint]

	NonMaxI8  = NonMax[int8]
	NonMaxI16 = NonMax[int16]
	NonMaxI32 = NonMax[int32]
	NonMaxI64 = NonMax[int64]
	NonMaxInt = NonMax[int]
)

// New returns v as a NonMax. ok is false exactly when v is the maximum of T.
func New[T constraints.Integer](v T) (n NonMax[T], ok bool) {
	m := conv.Max[T]()
	if v == m {
		return NonMax[T]{}, false
	}
	return NonMax[T]{repr: v ^ m}, true
}

// TryFrom is New in conversion form: it fails with ErrOutOfRange when v is
// the maximum of T.
func TryFrom[T constraints.Integer](v T) (NonMax[T], error) {
	n, ok := New(v)
	if !ok {
		return NonMax[T]{}, outOfRange(v)
	}
	return n, nil
}

// NewUnchecked returns v as a NonMax without validating it.
//
// The caller must guarantee that v is not the maximum of T. Breaking that
// contract yields the None niche disguised as a value; it is not detected
// unless the package is built with the nonmax_debug tag, in which case it
// panics.
func NewUnchecked[T constraints.Integer](v T) NonMax[T] {
	m := conv.Max[T]()
	if debugAssertions && v == m {
		panic("nonmax: NewUnchecked called with the maximum value")
	}
	return NonMax[T]{repr: v ^ m}
}

// Get returns the logical value.
func (n NonMax[T]) Get() T {
	return n.repr ^ conv.Max[T]()
}

// Compare returns -1, 0 or +1 depending on whether n is less than, equal to
// or greater than o.
func (n NonMax[T]) Compare(o NonMax[T]) int {
	// repr is order-reversing for unsigned types; compare logical values.
	return cmp.Compare(n.Get(), o.Get())
}

// Less reports whether n < o.
func (n NonMax[T]) Less(o NonMax[T]) bool {
	return n.Get() < o.Get()
}

// Compare is the function form of NonMax.Compare, suitable for slices.SortFunc.
func Compare[T constraints.Integer](a, b NonMax[T]) int {
	return a.Compare(b)
}

// Zero returns the NonMax holding 0.
func Zero[T constraints.Integer]() NonMax[T] {
	return NewUnchecked(T(0))
}

// One returns the NonMax holding 1.
func One[T constraints.Integer]() NonMax[T] {
	return NewUnchecked(T(1))
}

// Max returns the largest legal NonMax, one below the maximum of T.
func Max[T constraints.Integer]() NonMax[T] {
	return NewUnchecked(conv.Max[T]() - 1)
}

// Min returns the smallest NonMax, the minimum of T.
func Min[T constraints.Integer]() NonMax[T] {
	return NewUnchecked(conv.Min[T]())
}
