package column

import (
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/nonmax"
	"github.com/hupe1980/nonmax/codec"
	"github.com/hupe1980/nonmax/internal/conv"
)

// Column is a dense sequence of optional non-max integers.
//
// Column is not safe for concurrent mutation. Index arguments outside
// [0, Len) panic like slice indexing.
type Column[T constraints.Integer] struct {
	slots []nonmax.Option[T]
}

// New returns a column of n None slots.
func New[T constraints.Integer](n int) *Column[T] {
	return &Column[T]{slots: make([]nonmax.Option[T], n)}
}

// FromOptions returns a column holding a copy of opts.
func FromOptions[T constraints.Integer](opts []nonmax.Option[T]) *Column[T] {
	slots := make([]nonmax.Option[T], len(opts))
	copy(slots, opts)
	return &Column[T]{slots: slots}
}

// Len returns the number of slots.
func (c *Column[T]) Len() int {
	return len(c.slots)
}

// Get returns slot i.
func (c *Column[T]) Get(i int) nonmax.Option[T] {
	return c.slots[i]
}

// Set stores v in slot i.
func (c *Column[T]) Set(i int, v nonmax.NonMax[T]) {
	c.slots[i] = nonmax.Some(v)
}

// Clear sets slot i to None.
func (c *Column[T]) Clear(i int) {
	c.slots[i] = nonmax.None[T]()
}

// Append adds slots to the end of the column.
func (c *Column[T]) Append(opts ...nonmax.Option[T]) {
	c.slots = append(c.slots, opts...)
}

// Count returns the number of present slots.
func (c *Column[T]) Count() int {
	n := 0
	for _, s := range c.slots {
		if s.IsSome() {
			n++
		}
	}
	return n
}

// Present returns the indices of present slots. Roaring bitmaps hold 32-bit
// keys, so slots at index 1<<32 and beyond are not reported.
func (c *Column[T]) Present() *roaring.Bitmap {
	bm := roaring.New()
	n := uint64(len(c.slots))
	if n > math.MaxUint32+1 {
		n = math.MaxUint32 + 1
	}
	for i := uint64(0); i < n; i++ {
		if c.slots[i].IsSome() {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// All iterates over every slot with its index.
func (c *Column[T]) All() iter.Seq2[int, nonmax.Option[T]] {
	return func(yield func(int, nonmax.Option[T]) bool) {
		for i, s := range c.slots {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Values iterates over the present slots with their index and logical value.
func (c *Column[T]) Values() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, s := range c.slots {
			if v, ok := s.Value(); ok {
				if !yield(i, v) {
					return
				}
			}
		}
	}
}

// Options returns a copy of the slots.
func (c *Column[T]) Options() []nonmax.Option[T] {
	out := make([]nonmax.Option[T], len(c.slots))
	copy(out, c.slots)
	return out
}

// SizeBytes returns the memory held by the slots: Len times the width of T.
func (c *Column[T]) SizeBytes() int {
	return len(c.slots) * (conv.Bits[T]() / 8)
}

// MarshalJSON encodes the column as an array of numbers and nulls.
func (c *Column[T]) MarshalJSON() ([]byte, error) {
	if c.slots == nil {
		return []byte("[]"), nil
	}
	return codec.Default.Marshal(c.slots)
}

// UnmarshalJSON replaces the column with the decoded array. Values equal to
// the maximum of T are rejected.
func (c *Column[T]) UnmarshalJSON(data []byte) error {
	var slots []nonmax.Option[T]
	if err := codec.Default.Unmarshal(data, &slots); err != nil {
		return err
	}
	c.slots = slots
	return nil
}
