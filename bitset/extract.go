package bitset

import (
	"fmt"
	"math/bits"
)

// Extract gathers data[i] into out for every index i where mask bit i is
// set, preserving ascending index order, and returns the number of elements
// written. All-zero blocks are skipped whole; only non-zero blocks are
// walked bit by bit.
//
// data must cover the full mask range (len(data) >= mask.Len()) and out must
// have room for every extracted element; mask.Len() is always a sufficient
// upper bound, mask.Count() an exact one. Violating either is a precondition
// failure and panics.
func Extract[T any](out, data []T, mask *Bitset) int {
	if mask.IsEmpty() {
		return 0
	}
	if len(data) < mask.nbits {
		panic(fmt.Sprintf("bitset: data length %d shorter than mask length %d", len(data), mask.nbits))
	}
	n := 0
	for bi, w := range mask.blocks {
		if w == 0 {
			continue
		}
		base := bi << 6
		for ; w != 0; w &= w - 1 {
			i := base + bits.TrailingZeros64(w)
			if n == len(out) {
				panic(fmt.Sprintf("bitset: extract output capacity %d exceeded", len(out)))
			}
			out[n] = data[i]
			n++
		}
	}
	return n
}
