// Package simd provides word-level kernels for dense bitset storage.
//
// All kernels operate on []uint64 block arrays. The generic Go
// implementations are unrolled 4x so the compiler can keep the hot loop
// branch-light; platform-specific SIMD variants can slot in behind the
// same signatures without touching callers.
package simd
