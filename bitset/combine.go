package bitset

import (
	"fmt"

	"github.com/hupe1980/maskgo/internal/simd"
)

// Whole-field combinators compute dst = a OP b word-wise over the block
// array. All three bitsets must have the same length; dst may alias a or b.
// Combinators that complement an operand re-mask the tail so the canonical
// tail invariant survives every combination.

func (b *Bitset) checkSameLen(x, y *Bitset) {
	if b.Len() != x.Len() || b.Len() != y.Len() {
		panic(fmt.Sprintf("bitset: combine size mismatch: dst=%d a=%d b=%d", b.Len(), x.Len(), y.Len()))
	}
}

// And computes dst = a AND b.
func (dst *Bitset) And(a, b *Bitset) {
	dst.checkSameLen(a, b)
	if dst.IsEmpty() {
		return
	}
	simd.AndWords(dst.blocks, a.blocks, b.blocks)
}

// AndNot computes dst = a AND NOT b.
func (dst *Bitset) AndNot(a, b *Bitset) {
	dst.checkSameLen(a, b)
	if dst.IsEmpty() {
		return
	}
	simd.AndNotWords(dst.blocks, a.blocks, b.blocks)
}

// Or computes dst = a OR b.
func (dst *Bitset) Or(a, b *Bitset) {
	dst.checkSameLen(a, b)
	if dst.IsEmpty() {
		return
	}
	simd.OrWords(dst.blocks, a.blocks, b.blocks)
}

// OrNot computes dst = a OR NOT b.
func (dst *Bitset) OrNot(a, b *Bitset) {
	dst.checkSameLen(a, b)
	if dst.IsEmpty() {
		return
	}
	simd.OrNotWords(dst.blocks, a.blocks, b.blocks)
	dst.maskTail()
}

// Xor computes dst = a XOR b.
func (dst *Bitset) Xor(a, b *Bitset) {
	dst.checkSameLen(a, b)
	if dst.IsEmpty() {
		return
	}
	simd.XorWords(dst.blocks, a.blocks, b.blocks)
}
