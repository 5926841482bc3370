package selection

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/maskgo/bitset"
)

// ToSparse converts a dense mask to a compressed roaring bitmap for
// interchange with indexing layers that work on sparse ID sets.
func ToSparse(mask *bitset.Bitset) *roaring.Bitmap {
	rb := roaring.New()
	for i := range mask.Bits() {
		rb.Add(uint32(i))
	}
	return rb
}

// FromSparse materializes a roaring bitmap as a dense mask of nbits bits.
// Returns ErrSizeMismatch if the bitmap holds an ID >= nbits.
func FromSparse(rb *roaring.Bitmap, nbits int) (*bitset.Bitset, error) {
	mask := bitset.New(nbits)
	it := rb.Iterator()
	for it.HasNext() {
		v := it.Next()
		if int(v) >= nbits {
			return nil, fmt.Errorf("%w: sparse ID %d exceeds mask length %d", ErrSizeMismatch, v, nbits)
		}
		mask.Set(int(v))
	}
	return mask, nil
}
