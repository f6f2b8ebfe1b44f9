package nonmax

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/nonmax/internal/conv"
	"github.com/hupe1980/nonmax/testutil"
)

func TestParseScenario(t *testing.T) {
	n, err := Parse[uint8]("19", 10)
	require.NoError(t, err)
	assert.Equal(t, uint8(19), n.Get())

	_, err = Parse[uint8]("255", 10)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.NotErrorIs(t, err, ErrInvalidSyntax)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		base int
		want int16
		err  error
	}{
		{"decimal", "1234", 10, 1234, nil},
		{"negative", "-32768", 10, math.MinInt16, nil},
		{"hex", "7ffe", 16, math.MaxInt16 - 1, nil},
		{"prefixed", "0b101", 0, 5, nil},
		{"max", "32767", 10, 0, ErrOutOfRange},
		{"max hex", "0x7fff", 0, 0, ErrOutOfRange},
		{"overflow", "32768", 10, 0, ErrInvalidSyntax},
		{"garbage", "12a", 10, 0, ErrInvalidSyntax},
		{"empty", "", 10, 0, ErrInvalidSyntax},
		{"bad base", "1", 1, 0, ErrInvalidSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse[int16](tt.in, tt.base)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Get())
		})
	}
}

func TestParseErrorCause(t *testing.T) {
	_, err := Parse[uint32]("4294967296", 10)

	var pe *ErrParse
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "4294967296", pe.Input)
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = Parse[uint32]("-1", 10)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `cannot parse "-1"`)
}

func TestFormatDelegates(t *testing.T) {
	u := NewUnchecked[uint8](0xAB)
	i := NewUnchecked[int16](-42)

	tests := []struct {
		format string
		value  any
		want   string
	}{
		{"%d", u, "171"},
		{"%v", u, "171"},
		{"%b", u, "10101011"},
		{"%o", u, "253"},
		{"%x", u, "ab"},
		{"%X", u, "AB"},
		{"%#x", u, "0xab"},
		{"%08b", u, "10101011"},
		{"%6d", u, "   171"},
		{"%-5d|", u, "171  |"},
		{"%d", i, "-42"},
		{"%+d", NewUnchecked[int16](42), "+42"},
		{"%x", i, "-2a"},
		{"%s", i, "%!s(int16=-42)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprintf(tt.format, tt.value))
		})
	}

	assert.Equal(t, "171", u.String())
	assert.Equal(t, "-42", i.String())
}

func testSerialization[T constraints.Integer](t *testing.T, rng *testutil.RNG) {
	t.Helper()

	for _, v := range append(testutil.Edges[T](), testutil.LegalN[T](rng, 200)...) {
		n := NewUnchecked(v)

		text, err := n.MarshalText()
		require.NoError(t, err)
		var fromText NonMax[T]
		require.NoError(t, fromText.UnmarshalText(text))
		require.Equal(t, n, fromText)

		js, err := json.Marshal(n)
		require.NoError(t, err)
		var fromJSON NonMax[T]
		require.NoError(t, json.Unmarshal(js, &fromJSON))
		require.Equal(t, n, fromJSON)

		bin, err := n.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, bin, conv.Bits[T]()/8)
		var fromBin NonMax[T]
		require.NoError(t, fromBin.UnmarshalBinary(bin))
		require.Equal(t, n, fromBin)
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)

	t.Run("uint8", func(t *testing.T) { testSerialization[uint8](t, rng) })
	t.Run("uint16", func(t *testing.T) { testSerialization[uint16](t, rng) })
	t.Run("uint32", func(t *testing.T) { testSerialization[uint32](t, rng) })
	t.Run("uint64", func(t *testing.T) { testSerialization[uint64](t, rng) })
	t.Run("int8", func(t *testing.T) { testSerialization[int8](t, rng) })
	t.Run("int16", func(t *testing.T) { testSerialization[int16](t, rng) })
	t.Run("int32", func(t *testing.T) { testSerialization[int32](t, rng) })
	t.Run("int64", func(t *testing.T) { testSerialization[int64](t, rng) })
	t.Run("int", func(t *testing.T) { testSerialization[int](t, rng) })
}

func TestDeserializeRejectsMax(t *testing.T) {
	var n NonMaxU16
	assert.ErrorIs(t, n.UnmarshalText([]byte("65535")), ErrOutOfRange)
	assert.ErrorIs(t, json.Unmarshal([]byte("65535"), &n), ErrOutOfRange)
	assert.ErrorIs(t, n.UnmarshalBinary([]byte{0xFF, 0xFF}), ErrOutOfRange)

	var s NonMaxI32
	assert.ErrorIs(t, s.UnmarshalBinary([]byte{0xFF, 0xFF, 0xFF, 0x7F}), ErrOutOfRange)
	require.NoError(t, s.UnmarshalBinary([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	assert.Equal(t, int32(-1), s.Get())
}

func TestUnmarshalBinaryLength(t *testing.T) {
	var n NonMaxU32
	assert.ErrorIs(t, n.UnmarshalBinary([]byte{1, 2, 3}), ErrInvalidLength)
}

func TestBinaryLittleEndian(t *testing.T) {
	b, err := NewUnchecked[uint32](0x01020304).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b)

	b, err = NewUnchecked[int16](-2).AppendBinary([]byte{0xAA})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xFE, 0xFF}, b)
}

func TestJSONNullKeepsValue(t *testing.T) {
	n := NewUnchecked[uint8](9)
	require.NoError(t, json.Unmarshal([]byte("null"), &n))
	assert.Equal(t, uint8(9), n.Get())

	assert.Error(t, json.Unmarshal([]byte(`"9"`), &n))
}
