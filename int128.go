package nonmax

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"strconv"

	num "github.com/shabbyrobe/go-num"
)

var (
	maxU128 = num.U128FromRaw(math.MaxUint64, math.MaxUint64)
	maxI128 = num.I128FromRaw(math.MaxInt64, math.MaxUint64)
	minI128 = num.I128FromRaw(1<<63, 0)
)

func xorU128(a, b num.U128) num.U128 {
	ah, al := a.Raw()
	bh, bl := b.Raw()
	return num.U128FromRaw(ah^bh, al^bl)
}

func andU128(a, b num.U128) num.U128 {
	ah, al := a.Raw()
	bh, bl := b.Raw()
	return num.U128FromRaw(ah&bh, al&bl)
}

func xorI128(a, b num.I128) num.I128 {
	ah, al := a.Raw()
	bh, bl := b.Raw()
	return num.I128FromRaw(ah^bh, al^bl)
}

func andI128(a, b num.I128) num.I128 {
	ah, al := a.Raw()
	bh, bl := b.Raw()
	return num.I128FromRaw(ah&bh, al&bl)
}

// parseBig parses s in base into a big.Int, reporting failures the way
// strconv does so that ErrParse causes look the same for every width.
func parseBig(s string, base int) (*big.Int, error) {
	if base != 0 && (base < 2 || base > 36) {
		return nil, strconv.ErrSyntax
	}
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, strconv.ErrSyntax
	}
	return b, nil
}

// NonMaxU128 is a 128-bit unsigned integer that is never 2^128-1.
//
// It follows the same XOR encoding as NonMax; the zero value is the niche
// and not a valid NonMaxU128.
type NonMaxU128 struct {
	repr num.U128
}

// NewU128 returns v as a NonMaxU128. ok is false exactly when v is the
// maximum U128.
func NewU128(v num.U128) (n NonMaxU128, ok bool) {
	if v == maxU128 {
		return NonMaxU128{}, false
	}
	return NonMaxU128{repr: xorU128(v, maxU128)}, true
}

// TryFromU128 is NewU128 failing with ErrOutOfRange.
func TryFromU128(v num.U128) (NonMaxU128, error) {
	n, ok := NewU128(v)
	if !ok {
		return NonMaxU128{}, outOfRange(v)
	}
	return n, nil
}

// NewU128Unchecked returns v as a NonMaxU128 without validation. The caller
// must guarantee v is not the maximum U128.
func NewU128Unchecked(v num.U128) NonMaxU128 {
	if debugAssertions && v == maxU128 {
		panic("nonmax: NewU128Unchecked called with the maximum value")
	}
	return NonMaxU128{repr: xorU128(v, maxU128)}
}

// Get returns the logical value.
func (n NonMaxU128) Get() num.U128 { return xorU128(n.repr, maxU128) }

// Compare compares logical values.
func (n NonMaxU128) Compare(o NonMaxU128) int { return n.Get().Cmp(o.Get()) }

// Less reports whether n < o.
func (n NonMaxU128) Less(o NonMaxU128) bool { return n.Compare(o) < 0 }

// And returns n & o.
func (n NonMaxU128) And(o NonMaxU128) NonMaxU128 {
	return NonMaxU128{repr: xorU128(andU128(n.Get(), o.Get()), maxU128)}
}

// AndAssign sets n to n & o.
func (n *NonMaxU128) AndAssign(o NonMaxU128) { *n = n.And(o) }

// AndMask returns n & mask.
func (n NonMaxU128) AndMask(mask num.U128) NonMaxU128 {
	return NonMaxU128{repr: xorU128(andU128(n.Get(), mask), maxU128)}
}

// AndAssignMask sets n to n & mask.
func (n *NonMaxU128) AndAssignMask(mask num.U128) { *n = n.AndMask(mask) }

// MaskAndU128 returns mask & n.
func MaskAndU128(mask num.U128, n NonMaxU128) NonMaxU128 { return n.AndMask(mask) }

// ParseU128 parses s in base and applies the checked constructor.
func ParseU128(s string, base int) (NonMaxU128, error) {
	b, err := parseBig(s, base)
	if err != nil {
		return NonMaxU128{}, &ErrParse{Input: s, cause: err}
	}
	v, accurate := num.U128FromBigInt(b)
	if !accurate || b.Sign() < 0 {
		return NonMaxU128{}, &ErrParse{Input: s, cause: strconv.ErrRange}
	}
	return TryFromU128(v)
}

func (n NonMaxU128) String() string { return n.Get().String() }

// Format delegates to num.U128's formatter.
func (n NonMaxU128) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), n.Get())
}

// MarshalText implements encoding.TextMarshaler.
func (n NonMaxU128) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NonMaxU128) UnmarshalText(text []byte) error {
	v, err := ParseU128(string(text), 10)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalJSON encodes n as a JSON number.
func (n NonMaxU128) MarshalJSON() ([]byte, error) { return n.MarshalText() }

// UnmarshalJSON decodes a JSON number; null leaves n unchanged.
func (n *NonMaxU128) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	return n.UnmarshalText(bytes.TrimSpace(data))
}

// NonMaxI128 is a 128-bit signed integer that is never 2^127-1.
type NonMaxI128 struct {
	repr num.I128
}

// NewI128 returns v as a NonMaxI128. ok is false exactly when v is the
// maximum I128.
func NewI128(v num.I128) (n NonMaxI128, ok bool) {
	if v == maxI128 {
		return NonMaxI128{}, false
	}
	return NonMaxI128{repr: xorI128(v, maxI128)}, true
}

// TryFromI128 is NewI128 failing with ErrOutOfRange.
func TryFromI128(v num.I128) (NonMaxI128, error) {
	n, ok := NewI128(v)
	if !ok {
		return NonMaxI128{}, outOfRange(v)
	}
	return n, nil
}

// NewI128Unchecked returns v as a NonMaxI128 without validation. The caller
// must guarantee v is not the maximum I128.
func NewI128Unchecked(v num.I128) NonMaxI128 {
	if debugAssertions && v == maxI128 {
		panic("nonmax: NewI128Unchecked called with the maximum value")
	}
	return NonMaxI128{repr: xorI128(v, maxI128)}
}

// Get returns the logical value.
func (n NonMaxI128) Get() num.I128 { return xorI128(n.repr, maxI128) }

// Compare compares logical values.
func (n NonMaxI128) Compare(o NonMaxI128) int { return n.Get().Cmp(o.Get()) }

// Less reports whether n < o.
func (n NonMaxI128) Less(o NonMaxI128) bool { return n.Compare(o) < 0 }

// And returns n & o. There is no mask form for signed types.
func (n NonMaxI128) And(o NonMaxI128) NonMaxI128 {
	return NonMaxI128{repr: xorI128(andI128(n.Get(), o.Get()), maxI128)}
}

// AndAssign sets n to n & o.
func (n *NonMaxI128) AndAssign(o NonMaxI128) { *n = n.And(o) }

// ParseI128 parses s in base and applies the checked constructor.
func ParseI128(s string, base int) (NonMaxI128, error) {
	b, err := parseBig(s, base)
	if err != nil {
		return NonMaxI128{}, &ErrParse{Input: s, cause: err}
	}
	v, accurate := num.I128FromBigInt(b)
	if !accurate {
		return NonMaxI128{}, &ErrParse{Input: s, cause: strconv.ErrRange}
	}
	return TryFromI128(v)
}

func (n NonMaxI128) String() string { return n.Get().String() }

// Format delegates to num.I128's formatter.
func (n NonMaxI128) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), n.Get())
}

// MarshalText implements encoding.TextMarshaler.
func (n NonMaxI128) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NonMaxI128) UnmarshalText(text []byte) error {
	v, err := ParseI128(string(text), 10)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalJSON encodes n as a JSON number.
func (n NonMaxI128) MarshalJSON() ([]byte, error) { return n.MarshalText() }

// UnmarshalJSON decodes a JSON number; null leaves n unchanged.
func (n *NonMaxI128) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	return n.UnmarshalText(bytes.TrimSpace(data))
}

// Constants for the 128-bit types.
var (
	ZeroU128 = NewU128Unchecked(num.U128{})
	OneU128  = NewU128Unchecked(num.U128From64(1))
	MaxU128  = NewU128Unchecked(num.U128FromRaw(math.MaxUint64, math.MaxUint64-1))

	ZeroI128 = NewI128Unchecked(num.I128{})
	OneI128  = NewI128Unchecked(num.I128From64(1))
	MaxI128  = NewI128Unchecked(num.I128FromRaw(math.MaxInt64, math.MaxUint64-1))
	MinI128  = NewI128Unchecked(minI128)
)
