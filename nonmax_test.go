package nonmax

import (
	"cmp"
	"math"
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/nonmax/internal/conv"
	"github.com/hupe1980/nonmax/testutil"
)

func TestConstruct(t *testing.T) {
	zero, ok := New[uint8](0)
	require.True(t, ok)
	assert.Equal(t, uint8(0), zero.Get())

	some, ok := New[uint8](19)
	require.True(t, ok)
	assert.Equal(t, uint8(19), some.Get())

	_, ok = New[uint8](math.MaxUint8)
	assert.False(t, ok)
}

func TestScenarioU8(t *testing.T) {
	n, ok := New[uint8](16)
	require.True(t, ok)
	assert.Equal(t, uint8(16), n.Get())

	_, ok = New[uint8](255)
	assert.False(t, ok)
}

func TestScenarioI16Min(t *testing.T) {
	n, ok := New[int16](math.MinInt16)
	require.True(t, ok)
	assert.Equal(t, int16(math.MinInt16), n.Get())
}

func testLaws[T constraints.Integer](t *testing.T, rng *testutil.RNG) {
	t.Helper()

	_, ok := New(conv.Max[T]())
	assert.False(t, ok, "maximum must be rejected")

	_, err := TryFrom(conv.Max[T]())
	assert.ErrorIs(t, err, ErrOutOfRange)

	values := append(testutil.Edges[T](), testutil.LegalN[T](rng, 1000)...)
	for _, v := range values {
		n, ok := New(v)
		require.True(t, ok, "value %v", v)
		require.Equal(t, v, n.Get())
		require.NotZero(t, n.repr, "stored pattern must never be zero")
		require.Equal(t, n, NewUnchecked(v))

		m, err := TryFrom(v)
		require.NoError(t, err)
		require.Equal(t, n, m)
	}

	for i := 0; i+1 < len(values); i++ {
		a, b := NewUnchecked(values[i]), NewUnchecked(values[i+1])
		require.Equal(t, values[i] < values[i+1], a.Less(b), "%v < %v", values[i], values[i+1])
		require.Equal(t, values[i] == values[i+1], a == b)
	}

	assert.Equal(t, T(0), Zero[T]().Get())
	assert.Equal(t, T(1), One[T]().Get())
	assert.Equal(t, conv.Max[T]()-1, Max[T]().Get())
	assert.Equal(t, conv.Min[T](), Min[T]().Get())
}

func TestLaws(t *testing.T) {
	rng := testutil.NewRNG(4711)

	t.Run("uint8", func(t *testing.T) { testLaws[uint8](t, rng) })
	t.Run("uint16", func(t *testing.T) { testLaws[uint16](t, rng) })
	t.Run("uint32", func(t *testing.T) { testLaws[uint32](t, rng) })
	t.Run("uint64", func(t *testing.T) { testLaws[uint64](t, rng) })
	t.Run("uint", func(t *testing.T) { testLaws[uint](t, rng) })
	t.Run("int8", func(t *testing.T) { testLaws[int8](t, rng) })
	t.Run("int16", func(t *testing.T) { testLaws[int16](t, rng) })
	t.Run("int32", func(t *testing.T) { testLaws[int32](t, rng) })
	t.Run("int64", func(t *testing.T) { testLaws[int64](t, rng) })
	t.Run("int", func(t *testing.T) { testLaws[int](t, rng) })
}

func TestExhaustive8Bit(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		for a := 0; a < math.MaxUint8; a++ {
			na := NewUnchecked(uint8(a))
			if na.Get() != uint8(a) {
				t.Fatalf("round trip %d: got %d", a, na.Get())
			}
			for b := 0; b < math.MaxUint8; b++ {
				nb := NewUnchecked(uint8(b))
				if got, want := na.Less(nb), a < b; got != want {
					t.Fatalf("%d < %d: got %v want %v", a, b, got, want)
				}
				if got, want := na.Compare(nb), cmp.Compare(a, b); got != want {
					t.Fatalf("compare(%d, %d): got %d want %d", a, b, got, want)
				}
			}
		}
	})

	t.Run("int8", func(t *testing.T) {
		for a := math.MinInt8; a < math.MaxInt8; a++ {
			na := NewUnchecked(int8(a))
			if na.Get() != int8(a) {
				t.Fatalf("round trip %d: got %d", a, na.Get())
			}
			for b := math.MinInt8; b < math.MaxInt8; b++ {
				nb := NewUnchecked(int8(b))
				if got, want := na.Less(nb), a < b; got != want {
					t.Fatalf("%d < %d: got %v want %v", a, b, got, want)
				}
			}
		}
	})
}

func TestOrderingIgnoresRepr(t *testing.T) {
	// For unsigned types the stored patterns order the other way round.
	a, b := NewUnchecked[uint32](1), NewUnchecked[uint32](2)
	require.Greater(t, a.repr, b.repr)
	assert.True(t, a.Less(b))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestSortFunc(t *testing.T) {
	in := []int16{5, -3, 0, math.MinInt16, math.MaxInt16 - 1, 7}
	vals := make([]NonMaxI16, len(in))
	for i, v := range in {
		vals[i] = NewUnchecked(v)
	}
	slices.SortFunc(vals, Compare[int16])

	got := make([]int16, len(vals))
	for i, v := range vals {
		got[i] = v.Get()
	}
	assert.Equal(t, []int16{math.MinInt16, -3, 0, 5, 7, math.MaxInt16 - 1}, got)
}

func TestMapKey(t *testing.T) {
	seen := map[NonMaxU64]string{
		NewUnchecked[uint64](7): "seven",
	}
	assert.Equal(t, "seven", seen[NewUnchecked[uint64](7)])
	_, ok := seen[NewUnchecked[uint64](8)]
	assert.False(t, ok)
}

func TestSizes(t *testing.T) {
	assert.Equal(t, unsafe.Sizeof(uint8(0)), unsafe.Sizeof(NonMaxU8{}))
	assert.Equal(t, unsafe.Sizeof(uint8(0)), unsafe.Sizeof(OptionU8{}))
	assert.Equal(t, unsafe.Sizeof(int16(0)), unsafe.Sizeof(NonMaxI16{}))
	assert.Equal(t, unsafe.Sizeof(uint32(0)), unsafe.Sizeof(OptionU32{}))
	assert.Equal(t, unsafe.Sizeof(int64(0)), unsafe.Sizeof(OptionI64{}))
	assert.Equal(t, unsafe.Sizeof(uint(0)), unsafe.Sizeof(OptionUint{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(NonMaxU128{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(NonMaxI128{}))

	// A slice of options costs exactly as much as a slice of primitives.
	assert.Equal(t, unsafe.Sizeof([64]uint32{}), unsafe.Sizeof([64]OptionU32{}))
}

func TestGeneratedConstants(t *testing.T) {
	assert.Equal(t, uint8(0), ZeroU8.Get())
	assert.Equal(t, uint8(1), OneU8.Get())
	assert.Equal(t, uint8(math.MaxUint8-1), MaxU8.Get())
	assert.Equal(t, uint64(math.MaxUint64-1), MaxU64.Get())
	assert.Equal(t, int8(math.MaxInt8-1), MaxI8.Get())
	assert.Equal(t, int8(math.MinInt8), MinI8.Get())
	assert.Equal(t, int(math.MaxInt-1), MaxInt.Get())
	assert.Equal(t, int32(0), ZeroI32.Get())
	assert.Equal(t, uint(1), OneUint.Get())
}
