package column_test

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/nonmax"
	"github.com/hupe1980/nonmax/column"
)

func ExampleColumn() {
	c := column.New[uint16](5)
	c.Set(1, nonmax.NewUnchecked[uint16](10))
	c.Set(4, nonmax.NewUnchecked[uint16](40))

	fmt.Println(c.Count(), c.SizeBytes())
	fmt.Println(c.Present().ToArray())
	for i, v := range c.Values() {
		fmt.Println(i, v)
	}
	// Output:
	// 2 10
	// [1 4]
	// 1 10
	// 4 40
}

func ExampleEncode() {
	c := column.FromOptions([]nonmax.OptionI32{
		nonmax.OptionOf[int32](-7),
		nonmax.None[int32](),
	})

	var buf bytes.Buffer
	if err := column.Encode(&buf, c, column.WithCompression(column.CompressionZSTD)); err != nil {
		panic(err)
	}

	got, err := column.Decode[int32](&buf)
	if err != nil {
		panic(err)
	}
	fmt.Println(got.Get(0), got.Get(1))
	// Output:
	// -7 None
}
