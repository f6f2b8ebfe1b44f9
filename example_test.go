package nonmax_test

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/nonmax"
)

func ExampleNew() {
	n, ok := nonmax.New[uint8](16)
	fmt.Println(n, ok)

	_, ok = nonmax.New[uint8](math.MaxUint8)
	fmt.Println(ok)
	// Output:
	// 16 true
	// false
}

func ExampleOption() {
	// Parent links in a tree of up to 2^32-1 nodes; roots have no parent.
	parents := make([]nonmax.OptionU32, 4)
	parents[1] = nonmax.OptionOf[uint32](0)
	parents[2] = nonmax.OptionOf[uint32](0)
	parents[3] = nonmax.OptionOf[uint32](2)

	for i, p := range parents {
		fmt.Printf("%d -> %v\n", i, p)
	}
	fmt.Println(unsafe.Sizeof(parents[0]))
	// Output:
	// 0 -> None
	// 1 -> 0
	// 2 -> 0
	// 3 -> 2
	// 4
}

func ExampleParse() {
	n, err := nonmax.Parse[uint8]("19", 10)
	fmt.Println(n, err)

	_, err = nonmax.Parse[uint8]("255", 10)
	fmt.Println(errors.Is(err, nonmax.ErrOutOfRange))
	// Output:
	// 19 <nil>
	// true
}

func ExampleNonMax_And() {
	a := nonmax.NewUnchecked[uint8](0b1010_1010)
	b := nonmax.NewUnchecked[uint8](0b0101_0101)
	fmt.Printf("%08b\n", a.And(b))
	// Output:
	// 00000000
}

func ExampleNonMaxU32FromNonMaxU16() {
	n := nonmax.NewUnchecked[uint16](math.MaxUint16 - 1)
	fmt.Println(nonmax.NonMaxU32FromNonMaxU16(n))
	// Output:
	// 65534
}
