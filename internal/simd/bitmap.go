package simd

import "math/bits"

// ==============================================================================
// Bitmap Word Kernels
// ==============================================================================
//
// These operations back the Bitset combinators in the bitset package.
// They operate on []uint64 representing bit arrays. The three-operand
// forms write dst[i] = a[i] OP b[i]; dst may alias a or b.
//
// All kernels assume len(dst) == len(a) == len(b); the caller checks.

// AndWords computes dst[i] = a[i] & b[i] for all words.
func AndWords(dst, a, b []uint64) {
	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = a[i] & b[i]
		dst[i+1] = a[i+1] & b[i+1]
		dst[i+2] = a[i+2] & b[i+2]
		dst[i+3] = a[i+3] & b[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] & b[i]
	}
}

// AndNotWords computes dst[i] = a[i] &^ b[i] for all words.
func AndNotWords(dst, a, b []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = a[i] &^ b[i]
		dst[i+1] = a[i+1] &^ b[i+1]
		dst[i+2] = a[i+2] &^ b[i+2]
		dst[i+3] = a[i+3] &^ b[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] &^ b[i]
	}
}

// OrWords computes dst[i] = a[i] | b[i] for all words.
func OrWords(dst, a, b []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = a[i] | b[i]
		dst[i+1] = a[i+1] | b[i+1]
		dst[i+2] = a[i+2] | b[i+2]
		dst[i+3] = a[i+3] | b[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] | b[i]
	}
}

// OrNotWords computes dst[i] = a[i] | ^b[i] for all words.
// The result has padding bits set; callers re-mask the tail.
func OrNotWords(dst, a, b []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = a[i] | ^b[i]
		dst[i+1] = a[i+1] | ^b[i+1]
		dst[i+2] = a[i+2] | ^b[i+2]
		dst[i+3] = a[i+3] | ^b[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] | ^b[i]
	}
}

// XorWords computes dst[i] = a[i] ^ b[i] for all words.
func XorWords(dst, a, b []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = a[i] ^ b[i]
		dst[i+1] = a[i+1] ^ b[i+1]
		dst[i+2] = a[i+2] ^ b[i+2]
		dst[i+3] = a[i+3] ^ b[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// NotWords computes dst[i] = ^a[i] for all words.
// The result has padding bits set; callers re-mask the tail.
func NotWords(dst, a []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = ^a[i]
		dst[i+1] = ^a[i+1]
		dst[i+2] = ^a[i+2]
		dst[i+3] = ^a[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = ^a[i]
	}
}

// FillWords sets every word of dst to v.
func FillWords(dst []uint64, v uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = v
		dst[i+1] = v
		dst[i+2] = v
		dst[i+3] = v
	}
	for ; i < len(dst); i++ {
		dst[i] = v
	}
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}
