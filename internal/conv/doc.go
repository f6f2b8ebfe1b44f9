// Package conv provides integer width and limit helpers plus checked
// conversions between Go's platform int and fixed-width length fields.
//
// The limit helpers (Bits, Max, Min, Signed) are generic over every sized
// integer type and are resolved per instantiation, so callers never need a
// per-type table of constants.
//
// The checked casts are meant for untrusted input such as decoded headers.
// For conversions that are provably safe by construction, use direct type
// casts instead.
package conv
