package nonmax

import (
	"fmt"

	"github.com/hupe1980/nonmax/internal/conv"
)

// AppendBinary implements encoding.BinaryAppender. The logical value is
// written little-endian in T's width.
func (n NonMax[T]) AppendBinary(b []byte) ([]byte, error) {
	v := uint64(n.Get())
	for i := 0; i < conv.Bits[T]()/8; i++ {
		b = append(b, byte(v>>(8*i)))
	}
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n NonMax[T]) MarshalBinary() ([]byte, error) {
	return n.AppendBinary(make([]byte, 0, conv.Bits[T]()/8))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be
// exactly T's width; the decoded value goes through the checked constructor.
func (n *NonMax[T]) UnmarshalBinary(data []byte) error {
	size := conv.Bits[T]() / 8
	if len(data) != size {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, size, len(data))
	}
	var v uint64
	for i := size - 1; i >= 0; i-- {
		v = v<<8 | uint64(data[i])
	}
	out, err := TryFrom(T(v))
	if err != nil {
		return err
	}
	*n = out
	return nil
}
