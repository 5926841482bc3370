package selection

import (
	"fmt"
	"sort"

	"github.com/hupe1980/maskgo/bitset"
)

// Stored is a named selection mask.
type Stored struct {
	Name string
	Mask *bitset.Bitset
}

// Registry holds named selection masks for a structure of a fixed atom
// count. Masks are cloned on Define and on Get, so the registry owns its
// storage exclusively and callers can mutate their copies freely.
//
// Like the masks themselves, the registry is unsynchronized.
type Registry struct {
	nbits  int
	stored map[string]*bitset.Bitset
}

// NewRegistry creates a registry for masks of the given bit length.
func NewRegistry(nbits int) *Registry {
	return &Registry{
		nbits:  nbits,
		stored: make(map[string]*bitset.Bitset),
	}
}

// Bits returns the mask length the registry accepts.
func (r *Registry) Bits() int { return r.nbits }

// Len returns the number of stored selections.
func (r *Registry) Len() int { return len(r.stored) }

// Define stores a clone of mask under name, replacing any previous entry.
func (r *Registry) Define(name string, mask *bitset.Bitset) error {
	if mask.Len() != r.nbits {
		return fmt.Errorf("%w: got %d bits, registry holds %d", ErrSizeMismatch, mask.Len(), r.nbits)
	}
	r.stored[name] = mask.Clone()
	return nil
}

// Get returns a clone of the stored mask.
func (r *Registry) Get(name string) (*bitset.Bitset, bool) {
	m, ok := r.stored[name]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

// Delete removes a stored selection, reporting whether it existed.
func (r *Registry) Delete(name string) bool {
	_, ok := r.stored[name]
	delete(r.stored, name)
	return ok
}

// Names returns the stored selection names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.stored))
	for n := range r.stored {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// List returns all stored selections as (name, clone) pairs, sorted by name.
func (r *Registry) List() []Stored {
	names := r.Names()
	out := make([]Stored, len(names))
	for i, n := range names {
		out[i] = Stored{Name: n, Mask: r.stored[n].Clone()}
	}
	return out
}
