// Package bitset implements a dense, fixed-size bitset used as a selection
// mask over flat atom/residue arrays.
//
// A Bitset is created with a fixed number of bits and never resizes. Storage
// is a contiguous []uint64 block array, rounded up to 16-byte granularity so
// the layout stays friendly to 128-bit vector loads. Range operations work
// block-aligned: partial head and tail blocks are touched through boundary
// masks, fully covered interior blocks through whole-word fills and scans.
//
// # Canonical tail
//
// Bits at index >= Len() within the last block are always zero. Every
// operation that could set them (SetAll, InvertAll, OrNot) re-masks the tail
// before returning. Whole-buffer operations such as Count, All and Equal are
// therefore exact; no caller ever observes padding bits.
//
// # Contract
//
// A Bitset is a pure, unsynchronized data structure. No operation is safe to
// run concurrently with a mutating operation on the same Bitset; distinct
// Bitsets are fully independent. Precondition violations (mismatched sizes,
// out-of-range indices, output overflow in Extract) panic: they are
// programming errors, not recoverable runtime conditions.
package bitset
