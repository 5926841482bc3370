package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/maskgo/bitset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillMask sets each bit of mask independently with the given probability.
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillMask(mask *bitset.Bitset, density float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	mask.ClearAll()
	for i := 0; i < mask.Len(); i++ {
		if r.rand.Float64() < density {
			mask.Set(i)
		}
	}
}

// Range returns a random half-open [beg, end) range with 0 <= beg <= end <= n.
func (r *RNG) Range(n int) (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	beg := r.rand.Intn(n + 1)
	end := beg + r.rand.Intn(n-beg+1)
	return beg, end
}

// Indices returns k distinct pseudo-random indices in [0,n) in random order.
func (r *RNG) Indices(n, k int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)[:k]
}
