package nonmax

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a value equals the maximum of its
	// primitive type and therefore cannot be held by a non-max integer.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidSyntax matches every *ErrParse via errors.Is.
	ErrInvalidSyntax = errors.New("cannot parse integer")

	// ErrInvalidLength is returned when binary input does not have the
	// width of the target type.
	ErrInvalidLength = errors.New("invalid encoded length")
)

// ErrParse indicates that a textual input is not a valid integer of the
// underlying primitive type.
//
// The primitive parser's error can be accessed via errors.Unwrap.
type ErrParse struct {
	Input string
	cause error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("cannot parse %q: %v", e.Input, e.cause)
}

func (e *ErrParse) Unwrap() error { return e.cause }

// Is makes every parse failure match ErrInvalidSyntax.
func (e *ErrParse) Is(target error) bool { return target == ErrInvalidSyntax }

func outOfRange[T any](v T) error {
	return fmt.Errorf("%w: %v is the maximum of %T", ErrOutOfRange, v, v)
}
