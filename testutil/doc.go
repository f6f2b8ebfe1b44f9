// Package testutil provides testing utilities for nonmax.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and helpers that draw legal
// (non-maximum) values of any integer width.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	v := testutil.Legal[uint32](rng)       // never math.MaxUint32
//	vs := testutil.LegalN[int16](rng, 1024)
//	edges := testutil.Edges[int8]()        // min, -1, 0, 1, max-1
package testutil
