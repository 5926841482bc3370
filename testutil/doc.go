// Package testutil provides testing utilities for maskgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random masks and bit ranges with a
// seeded, reproducible RNG.
//
// # Random Mask Generation
//
//	rng := testutil.NewRNG(seed)
//	mask := bitset.New(1000)
//	rng.FillMask(mask, 0.25) // each bit set with probability 0.25
//
// # Random Ranges
//
//	beg, end := rng.Range(mask.Len()) // half-open [beg, end)
package testutil
