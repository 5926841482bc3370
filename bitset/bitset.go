package bitset

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/maskgo/internal/simd"
)

const bitsPerBlock = 64

// Bitset is a fixed-size dense bitset backed by 64-bit blocks.
//
// The zero value is an empty bitset: it reports Len() == 0, is safe to Free
// and can be reused as the destination of a decode or clone.
type Bitset struct {
	blocks []uint64
	nbits  int
}

// blockCount returns the number of 64-bit blocks backing nbits bits,
// derived from the byte size so it matches the storage contract:
// byteSize = ceil(nbits/8), blockCount = ceil(byteSize/8).
func blockCount(nbits int) int {
	byteSize := (nbits + 7) / 8
	return (byteSize + 7) / 8
}

// alignBlocks rounds a block count up to 16-byte granularity (2 words).
func alignBlocks(n int) int {
	return (n + 1) &^ 1
}

func blockIdx(i int) int { return i >> 6 }

func bitMask(i int) uint64 { return 1 << (uint(i) & 63) }

// New creates a zeroed bitset holding nbits bits.
// Panics if nbits is negative. Allocation failure is fatal (runtime panic),
// matching the construction-failure contract of the engine.
func New(nbits int) *Bitset {
	if nbits < 0 {
		panic(fmt.Sprintf("bitset: negative bit count %d", nbits))
	}
	b := &Bitset{nbits: nbits}
	if nbits > 0 {
		nb := blockCount(nbits)
		buf := make([]uint64, alignBlocks(nb))
		b.blocks = buf[:nb]
	}
	return b
}

// Len returns the number of addressable bits.
func (b *Bitset) Len() int {
	if b == nil {
		return 0
	}
	return b.nbits
}

// IsEmpty reports whether the bitset holds no bits (zero value or freed).
func (b *Bitset) IsEmpty() bool {
	return b == nil || b.nbits == 0
}

// Free releases the backing storage and resets the bitset to the empty
// state. Idempotent; the freed bitset may be reused via CopyFrom-free
// operations such as Clone targets.
func (b *Bitset) Free() {
	if b == nil {
		return
	}
	b.blocks = nil
	b.nbits = 0
}

// Clone returns a bitset with the same length and content, backed by fresh
// storage. Cloning an empty bitset yields an empty bitset.
func (b *Bitset) Clone() *Bitset {
	if b.IsEmpty() {
		return &Bitset{}
	}
	c := New(b.nbits)
	copy(c.blocks, b.blocks)
	return c
}

// CopyFrom copies the bit content of src without reallocating.
// Both bitsets must have the same length.
func (b *Bitset) CopyFrom(src *Bitset) {
	if b.Len() != src.Len() {
		panic(fmt.Sprintf("bitset: copy size mismatch: %d != %d", b.Len(), src.Len()))
	}
	if b.IsEmpty() {
		return
	}
	copy(b.blocks, src.blocks)
}

// tailMask returns the mask of valid bits in the last block.
func (b *Bitset) tailMask() uint64 {
	if r := uint(b.nbits) & 63; r != 0 {
		return ^uint64(0) >> (64 - r)
	}
	return ^uint64(0)
}

// maskTail clears padding bits in the last block, restoring the canonical
// tail invariant after an operation that may have set them.
func (b *Bitset) maskTail() {
	if n := len(b.blocks); n > 0 {
		b.blocks[n-1] &= b.tailMask()
	}
}

func (b *Bitset) checkIndex(i int) {
	if i < 0 || i >= b.Len() {
		panic(fmt.Sprintf("bitset: index %d out of range [0,%d)", i, b.Len()))
	}
}

// Test reports whether bit i is set.
func (b *Bitset) Test(i int) bool {
	b.checkIndex(i)
	return b.blocks[blockIdx(i)]&bitMask(i) != 0
}

// Set sets bit i.
func (b *Bitset) Set(i int) {
	b.checkIndex(i)
	b.blocks[blockIdx(i)] |= bitMask(i)
}

// Clear clears bit i.
func (b *Bitset) Clear(i int) {
	b.checkIndex(i)
	b.blocks[blockIdx(i)] &^= bitMask(i)
}

// Flip inverts bit i and returns its new value.
func (b *Bitset) Flip(i int) bool {
	b.checkIndex(i)
	b.blocks[blockIdx(i)] ^= bitMask(i)
	return b.blocks[blockIdx(i)]&bitMask(i) != 0
}

// SetAll sets every bit.
func (b *Bitset) SetAll() {
	if b.IsEmpty() {
		return
	}
	simd.FillWords(b.blocks, ^uint64(0))
	b.maskTail()
}

// ClearAll clears every bit.
func (b *Bitset) ClearAll() {
	if b.IsEmpty() {
		return
	}
	simd.FillWords(b.blocks, 0)
}

// InvertAll complements every bit.
func (b *Bitset) InvertAll() {
	if b.IsEmpty() {
		return
	}
	simd.NotWords(b.blocks, b.blocks)
	b.maskTail()
}

// Count returns the number of set bits.
//
// The last block is masked to the valid bit range before counting, so the
// result is exact even if the canonical tail invariant has been violated
// through outside mutation of shared storage.
func (b *Bitset) Count() int {
	if b.IsEmpty() {
		return 0
	}
	n := len(b.blocks)
	count := simd.PopcountWords(b.blocks[:n-1])
	count += bits.OnesCount64(b.blocks[n-1] & b.tailMask())
	return count
}

// Any reports whether at least one bit is set.
func (b *Bitset) Any() bool {
	if b.IsEmpty() {
		return false
	}
	n := len(b.blocks)
	for _, w := range b.blocks[:n-1] {
		if w != 0 {
			return true
		}
	}
	return b.blocks[n-1]&b.tailMask() != 0
}

// All reports whether every bit is set. Vacuously true for an empty bitset.
func (b *Bitset) All() bool {
	if b.IsEmpty() {
		return true
	}
	n := len(b.blocks)
	for _, w := range b.blocks[:n-1] {
		if w != ^uint64(0) {
			return false
		}
	}
	return b.blocks[n-1]&b.tailMask() == b.tailMask()
}

// Equal reports whether both bitsets have the same length and content.
func (b *Bitset) Equal(other *Bitset) bool {
	if b.Len() != other.Len() {
		return false
	}
	if b.IsEmpty() {
		return true
	}
	for i, w := range b.blocks {
		if w != other.blocks[i] {
			return false
		}
	}
	return true
}

// Words exposes the backing block array as a live view, least-significant
// block first. Intended for serialization layers that need raw word access;
// writers must keep bits at index >= Len() within the last word zero, or
// whole-buffer operations lose their exactness.
func (b *Bitset) Words() []uint64 {
	if b == nil {
		return nil
	}
	return b.blocks
}

// String returns a compact digest for logging and debugging.
func (b *Bitset) String() string {
	return fmt.Sprintf("Bitset(%d/%d)", b.Count(), b.Len())
}
