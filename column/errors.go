package column

import "errors"

var (
	// ErrInvalidMagic is returned when the input does not start with the
	// column magic bytes.
	ErrInvalidMagic = errors.New("invalid magic")

	// ErrUnsupportedVersion is returned for a format version this package
	// cannot read.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrTypeMismatch is returned when the encoded width or signedness does
	// not match the requested element type.
	ErrTypeMismatch = errors.New("element type mismatch")

	// ErrLimitExceeded is returned when the encoded column is larger than the
	// configured limit.
	ErrLimitExceeded = errors.New("limit exceeded")

	// ErrCorrupt is returned when the encoded column is structurally invalid.
	ErrCorrupt = errors.New("corrupt column")
)
