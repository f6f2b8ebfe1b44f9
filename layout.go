package nonmax

import "unsafe"

// Compile-time checks that neither NonMax nor Option adds storage to the
// primitive. Each pair asserts NonMax >= T >= Option; since Option holds a
// NonMax, all three sizes must be equal or the array length goes negative.
var (
	_ [unsafe.Sizeof(NonMaxU8{}) - unsafe.Sizeof(uint8(0))]struct{}
	_ [unsafe.Sizeof(uint8(0)) - unsafe.Sizeof(OptionU8{})]struct{}
	_ [unsafe.Sizeof(NonMaxU16{}) - unsafe.Sizeof(uint16(0))]struct{}
	_ [unsafe.Sizeof(uint16(0)) - unsafe.Sizeof(OptionU16{})]struct{}
	_ [unsafe.Sizeof(NonMaxU32{}) - unsafe.Sizeof(uint32(0))]struct{}
	_ [unsafe.Sizeof(uint32(0)) - unsafe.Sizeof(OptionU32{})]struct{}
	_ [unsafe.Sizeof(NonMaxU64{}) - unsafe.Sizeof(uint64(0))]struct{}
	_ [unsafe.Sizeof(uint64(0)) - unsafe.Sizeof(OptionU64{})]struct{}
	_ [unsafe.Sizeof(NonMaxUint{}) - unsafe.Sizeof(uint(0))]struct{}
	_ [unsafe.Sizeof(uint(0)) - unsafe.Sizeof(OptionUint{})]struct{}

	_ [unsafe.Sizeof(NonMaxI8{}) - unsafe.Sizeof(int8(0))]struct{}
	_ [unsafe.Sizeof(int8(0)) - unsafe.Sizeof(OptionI8{})]struct{}
	_ [unsafe.Sizeof(NonMaxI16{}) - unsafe.Sizeof(int16(0))]struct{}
	_ [unsafe.Sizeof(int16(0)) - unsafe.Sizeof(OptionI16{})]struct{}
	_ [unsafe.Sizeof(NonMaxI32{}) - unsafe.Sizeof(int32(0))]struct{}
	_ [unsafe.Sizeof(int32(0)) - unsafe.Sizeof(OptionI32{})]struct{}
	_ [unsafe.Sizeof(NonMaxI64{}) - unsafe.Sizeof(int64(0))]struct{}
	_ [unsafe.Sizeof(int64(0)) - unsafe.Sizeof(OptionI64{})]struct{}
	_ [unsafe.Sizeof(NonMaxInt{}) - unsafe.Sizeof(int(0))]struct{}
	_ [unsafe.Sizeof(int(0)) - unsafe.Sizeof(OptionInt{})]struct{}

	_ [unsafe.Sizeof(NonMaxU128{}) - 16]struct{}
	_ [16 - unsafe.Sizeof(NonMaxU128{})]struct{}
	_ [unsafe.Sizeof(NonMaxI128{}) - 16]struct{}
	_ [16 - unsafe.Sizeof(NonMaxI128{})]struct{}
)
