package nonmax

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Option is an optional NonMax[T] with the same size as T.
//
// None is the all-zero pattern that no NonMax can hold, so no presence flag
// is stored. The zero value is None.
type Option[T constraints.Integer] struct {
	v NonMax[T]
}

// Some wraps n.
func Some[T constraints.Integer](n NonMax[T]) Option[T] {
	return Option[T]{v: n}
}

// None returns the empty Option.
func None[T constraints.Integer]() Option[T] {
	return Option[T]{}
}

// OptionOf is the checked constructor in optional form: None exactly when v
// is the maximum of T.
func OptionOf[T constraints.Integer](v T) Option[T] {
	n, ok := New(v)
	if !ok {
		return Option[T]{}
	}
	return Some(n)
}

// OptionFromBits reinterprets a packed pattern produced by Bits. Every
// pattern of T decodes to exactly one Option.
func OptionFromBits[T constraints.Integer](bits T) Option[T] {
	return Option[T]{v: NonMax[T]{repr: bits}}
}

// Bits returns the packed pattern of o: zero for None, the NonMax encoding
// otherwise.
func (o Option[T]) Bits() T {
	return o.v.repr
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.v.repr != 0
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return o.v.repr == 0
}

// Get returns the held NonMax and whether there was one.
func (o Option[T]) Get() (NonMax[T], bool) {
	return o.v, o.IsSome()
}

// Value returns the held logical value and whether there was one.
func (o Option[T]) Value() (T, bool) {
	if o.IsNone() {
		return 0, false
	}
	return o.v.Get(), true
}

// Or returns the held NonMax, or def when o is None.
func (o Option[T]) Or(def NonMax[T]) NonMax[T] {
	if o.IsNone() {
		return def
	}
	return o.v
}

// String returns "None" or the decimal value.
func (o Option[T]) String() string {
	if o.IsNone() {
		return "None"
	}
	return o.v.String()
}

// Format implements fmt.Formatter. Present values are formatted like the
// primitive; None prints as "None" for any verb.
func (o Option[T]) Format(f fmt.State, verb rune) {
	if o.IsNone() {
		_, _ = fmt.Fprint(f, "None")
		return
	}
	o.v.Format(f, verb)
}

// MarshalJSON encodes None as null and values as JSON numbers.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if o.IsNone() {
		return []byte("null"), nil
	}
	return o.v.MarshalJSON()
}

// UnmarshalJSON decodes null as None; any number goes through the checked
// constructor.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*o = Option[T]{}
		return nil
	}
	var n NonMax[T]
	if err := n.UnmarshalJSON(data); err != nil {
		return err
	}
	*o = Some(n)
	return nil
}

// MarshalText encodes None as empty text.
func (o Option[T]) MarshalText() ([]byte, error) {
	if o.IsNone() {
		return []byte{}, nil
	}
	return o.v.MarshalText()
}

// UnmarshalText decodes empty text as None.
func (o *Option[T]) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*o = Option[T]{}
		return nil
	}
	var n NonMax[T]
	if err := n.UnmarshalText(text); err != nil {
		return err
	}
	*o = Some(n)
	return nil
}

// Named Option instantiations.
type (
	OptionU8   = Option[uint8]
	OptionU16  = Option[uint16]
	OptionU32  = Option[uint32]
	OptionU64  = Option[uint64]
	OptionUint = Option[uint]

	OptionI8  = Option[int8]
	OptionI16 = Option[int16]
	OptionI32 = Option[int32]
	OptionI64 = Option[int64]
	OptionInt = Option[int]
)
