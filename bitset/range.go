package bitset

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/hupe1980/maskgo/internal/simd"
)

// Range operations take a half-open [beg, end) interval and work
// block-aligned: the partial head and tail blocks are touched through
// boundary masks, fully covered interior blocks through whole-word
// fills and scans. A full range is never iterated bit by bit.

func (b *Bitset) checkRangeBounds(beg, end int) {
	if beg < 0 || end > b.Len() || beg > end {
		panic(fmt.Sprintf("bitset: range [%d,%d) out of bounds [0,%d)", beg, end, b.Len()))
	}
}

// headMask isolates the bits >= beg within the block containing beg.
func headMask(beg int) uint64 {
	return ^uint64(0) << (uint(beg) & 63)
}

// lowMask isolates the bits < end within the block containing end-1.
func lowMask(end int) uint64 {
	if r := uint(end) & 63; r != 0 {
		return ^uint64(0) >> (64 - r)
	}
	return ^uint64(0)
}

// SetRange sets every bit in [beg, end).
func (b *Bitset) SetRange(beg, end int) {
	b.checkRangeBounds(beg, end)
	if beg == end {
		return
	}
	bb := blockIdx(beg)
	eb := blockIdx(end - 1)

	if bb == eb {
		// All bits reside within the same block.
		b.blocks[bb] |= headMask(beg) & lowMask(end)
		return
	}

	b.blocks[bb] |= headMask(beg)
	b.blocks[eb] |= lowMask(end)

	// Fill any fully covered interior blocks: bb, [interior], eb.
	simd.FillWords(b.blocks[bb+1:eb], ^uint64(0))
}

// ClearRange clears every bit in [beg, end).
func (b *Bitset) ClearRange(beg, end int) {
	b.checkRangeBounds(beg, end)
	if beg == end {
		return
	}
	bb := blockIdx(beg)
	eb := blockIdx(end - 1)

	if bb == eb {
		b.blocks[bb] &^= headMask(beg) & lowMask(end)
		return
	}

	b.blocks[bb] &^= headMask(beg)
	b.blocks[eb] &^= lowMask(end)

	simd.FillWords(b.blocks[bb+1:eb], 0)
}

// AnyInRange reports whether at least one bit in [beg, end) is set.
func (b *Bitset) AnyInRange(beg, end int) bool {
	b.checkRangeBounds(beg, end)
	if beg == end {
		return false
	}
	bb := blockIdx(beg)
	eb := blockIdx(end - 1)

	if bb == eb {
		return b.blocks[bb]&headMask(beg)&lowMask(end) != 0
	}

	// Mask out and explicitly check head and tail blocks.
	if b.blocks[bb]&headMask(beg) != 0 {
		return true
	}
	if b.blocks[eb]&lowMask(end) != 0 {
		return true
	}

	for _, w := range b.blocks[bb+1 : eb] {
		if w != 0 {
			return true
		}
	}
	return false
}

// AllInRange reports whether every bit in [beg, end) is set.
// Vacuously true for an empty range.
func (b *Bitset) AllInRange(beg, end int) bool {
	b.checkRangeBounds(beg, end)
	if beg == end {
		return true
	}
	bb := blockIdx(beg)
	eb := blockIdx(end - 1)

	if bb == eb {
		m := headMask(beg) & lowMask(end)
		return b.blocks[bb]&m == m
	}

	if b.blocks[bb]&headMask(beg) != headMask(beg) {
		return false
	}
	if b.blocks[eb]&lowMask(end) != lowMask(end) {
		return false
	}

	for _, w := range b.blocks[bb+1 : eb] {
		if w != ^uint64(0) {
			return false
		}
	}
	return true
}

// NextSet returns the lowest set bit index >= offset, or false if no bit is
// set at or after offset. Repeated calls with offset = last+1 enumerate all
// set bits in ascending order; the scan is restartable from any offset.
// Panics if offset is negative; any offset >= Len() reports false.
func (b *Bitset) NextSet(offset int) (int, bool) {
	if offset < 0 {
		panic(fmt.Sprintf("bitset: negative offset %d", offset))
	}
	if offset >= b.Len() {
		return 0, false
	}
	x := blockIdx(offset)

	// Check the first block explicitly with the offset mask. The canonical
	// tail invariant keeps padding bits zero, so the last block needs no
	// special handling.
	if first := b.blocks[x] >> (uint(offset) & 63); first != 0 {
		return offset + bits.TrailingZeros64(first), true
	}

	for x++; x < len(b.blocks); x++ {
		if w := b.blocks[x]; w != 0 {
			return x<<6 + bits.TrailingZeros64(w), true
		}
	}
	return 0, false
}

// Bits returns a lazy iterator over the set bit indices in ascending order,
// built on NextSet.
func (b *Bitset) Bits() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}
