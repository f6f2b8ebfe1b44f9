package nonmax

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/nonmax/internal/conv"
)

// Parse interprets s in the given base (0, 2 to 36) following strconv's
// rules for T's width and signedness, then applies the checked constructor.
//
// A malformed or out-of-width input yields *ErrParse; the maximum of T
// yields an error wrapping ErrOutOfRange.
func Parse[T constraints.Integer](s string, base int) (NonMax[T], error) {
	v, err := parsePrimitive[T](s, base)
	if err != nil {
		return NonMax[T]{}, &ErrParse{Input: s, cause: err}
	}
	return TryFrom(v)
}

func parsePrimitive[T constraints.Integer](s string, base int) (T, error) {
	if conv.Signed[T]() {
		v, err := strconv.ParseInt(s, base, conv.Bits[T]())
		return T(v), err
	}
	v, err := strconv.ParseUint(s, base, conv.Bits[T]())
	return T(v), err
}

func appendDecimal[T constraints.Integer](dst []byte, v T) []byte {
	if conv.Signed[T]() {
		return strconv.AppendInt(dst, int64(v), 10)
	}
	return strconv.AppendUint(dst, uint64(v), 10)
}

// String returns the decimal form of the logical value.
func (n NonMax[T]) String() string {
	return string(appendDecimal(nil, n.Get()))
}

// Format implements fmt.Formatter by handing the verb, flags, width and
// precision to the primitive's formatter.
func (n NonMax[T]) Format(f fmt.State, verb rune) {
	_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), n.Get())
}

// AppendText implements encoding.TextAppender.
func (n NonMax[T]) AppendText(b []byte) ([]byte, error) {
	return appendDecimal(b, n.Get()), nil
}

// MarshalText implements encoding.TextMarshaler.
func (n NonMax[T]) MarshalText() ([]byte, error) {
	return n.AppendText(nil)
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed as a
// base-10 integer.
func (n *NonMax[T]) UnmarshalText(text []byte) error {
	v, err := Parse[T](string(text), 10)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalJSON encodes n as a JSON number.
func (n NonMax[T]) MarshalJSON() ([]byte, error) {
	return appendDecimal(nil, n.Get()), nil
}

// UnmarshalJSON decodes a JSON number. null leaves n unchanged, following
// encoding/json conventions.
func (n *NonMax[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}
	v, err := Parse[T](string(bytes.TrimSpace(data)), 10)
	if err != nil {
		return fmt.Errorf("nonmax: json: %w", err)
	}
	*n = v
	return nil
}

func isJSONNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}
