// Package selection builds and stores selection masks over a molecular
// structure. Predicates are composed programmatically (there is no textual
// expression language here) and populate a bitset.Bitset sized to the
// structure's atom count.
package selection

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/maskgo/bitset"
	"github.com/hupe1980/maskgo/mol"
)

var (
	// ErrSizeMismatch is returned when a mask length does not match the
	// structure's atom count.
	ErrSizeMismatch = errors.New("selection: mask size mismatch")

	// ErrUnknownElement is returned when an element symbol does not resolve.
	ErrUnknownElement = errors.New("selection: unknown element symbol")
)

// Predicate populates a selection mask from a structure description.
//
// Eval ORs its matching atoms into mask; it never clears bits. Combinators
// that need an isolated result pass a freshly cleared scratch mask to their
// sub-predicates.
type Predicate interface {
	Eval(s *mol.Structure, mask *bitset.Bitset) error
}

// PredicateFunc adapts a function to the Predicate interface.
type PredicateFunc func(s *mol.Structure, mask *bitset.Bitset) error

// Eval calls f.
func (f PredicateFunc) Eval(s *mol.Structure, mask *bitset.Bitset) error {
	return f(s, mask)
}

// Compute evaluates p against s into a freshly allocated mask.
func Compute(s *mol.Structure, p Predicate) (*bitset.Bitset, error) {
	mask := bitset.New(s.AtomCount())
	if err := p.Eval(s, mask); err != nil {
		return nil, err
	}
	return mask, nil
}

// ComputeBatch evaluates independent predicates concurrently, one fresh mask
// per predicate. Each goroutine owns its own bitset, so no synchronization
// of the masks themselves is needed. The first error cancels the batch.
func ComputeBatch(ctx context.Context, s *mol.Structure, preds []Predicate) ([]*bitset.Bitset, error) {
	masks := make([]*bitset.Bitset, len(preds))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range preds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := Compute(s, p)
			if err != nil {
				return fmt.Errorf("predicate %d: %w", i, err)
			}
			masks[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return masks, nil
}

// All selects every atom.
func All() Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		mask.SetRange(0, s.AtomCount())
		return nil
	})
}

// None selects no atoms.
func None() Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		return nil
	})
}

// AtomIndex selects the atoms covered by the given index ranges.
func AtomIndex(ranges ...mol.Range) Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		n := s.AtomCount()
		for _, r := range ranges {
			if r.Beg < 0 || int(r.End) > n || r.Beg > r.End {
				return fmt.Errorf("selection: atom range [%d,%d) out of bounds [0,%d)", r.Beg, r.End, n)
			}
			mask.SetRange(int(r.Beg), int(r.End))
		}
		return nil
	})
}

// ElementIs selects atoms whose element matches one of the given symbols.
func ElementIs(syms ...string) Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		want := make(map[mol.Element]bool, len(syms))
		for _, sym := range syms {
			e := mol.ElementFromSymbol(sym)
			if e == mol.Unknown {
				return fmt.Errorf("%w: %q", ErrUnknownElement, sym)
			}
			want[e] = true
		}
		for i, e := range s.Elements {
			if want[e] {
				mask.Set(i)
			}
		}
		return nil
	})
}

// LabelIs selects atoms whose label matches one of the given names.
func LabelIs(names ...string) Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		want := make(map[string]bool, len(names))
		for _, n := range names {
			want[n] = true
		}
		for i, l := range s.Labels {
			if want[l] {
				mask.Set(i)
			}
		}
		return nil
	})
}

// ResidueName selects the atoms of every residue whose name matches.
// Residue atom spans are contiguous, so this sets whole ranges.
func ResidueName(names ...string) Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		want := make(map[string]bool, len(names))
		for _, n := range names {
			want[n] = true
		}
		for _, res := range s.Residues {
			if want[res.Name] {
				mask.SetRange(int(res.Atoms.Beg), int(res.Atoms.End))
			}
		}
		return nil
	})
}

// ResidueIndex selects the atoms of the residues in the given index ranges.
func ResidueIndex(ranges ...mol.Range) Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		for _, r := range ranges {
			if r.Beg < 0 || int(r.End) > len(s.Residues) || r.Beg > r.End {
				return fmt.Errorf("selection: residue range [%d,%d) out of bounds [0,%d)", r.Beg, r.End, len(s.Residues))
			}
			for _, res := range s.Residues[r.Beg:r.End] {
				mask.SetRange(int(res.Atoms.Beg), int(res.Atoms.End))
			}
		}
		return nil
	})
}

// ChainID selects the atoms of every chain whose ID matches.
func ChainID(ids ...string) Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		want := make(map[string]bool, len(ids))
		for _, id := range ids {
			want[id] = true
		}
		for c, ch := range s.Chains {
			if !want[ch.ID] {
				continue
			}
			r := s.ChainAtomRange(c)
			mask.SetRange(int(r.Beg), int(r.End))
		}
		return nil
	})
}

// Backbone selects protein backbone atoms by label (N, CA, C, O).
func Backbone() Predicate {
	return LabelIs("N", "CA", "C", "O")
}

// Water selects atoms of common water residue names.
func Water() Predicate {
	return ResidueName("HOH", "SOL", "WAT", "TIP3")
}

// Not selects the complement of p.
func Not(p Predicate) Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		tmp := bitset.New(s.AtomCount())
		if err := p.Eval(s, tmp); err != nil {
			return err
		}
		tmp.InvertAll()
		mask.Or(mask, tmp)
		return nil
	})
}

// AndP selects the intersection of all given predicates.
func AndP(preds ...Predicate) Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		if len(preds) == 0 {
			return errors.New("selection: AndP requires at least one predicate")
		}
		acc := bitset.New(s.AtomCount())
		if err := preds[0].Eval(s, acc); err != nil {
			return err
		}
		tmp := bitset.New(s.AtomCount())
		for _, p := range preds[1:] {
			tmp.ClearAll()
			if err := p.Eval(s, tmp); err != nil {
				return err
			}
			acc.And(acc, tmp)
		}
		mask.Or(mask, acc)
		return nil
	})
}

// OrP selects the union of all given predicates.
func OrP(preds ...Predicate) Predicate {
	return PredicateFunc(func(s *mol.Structure, mask *bitset.Bitset) error {
		for _, p := range preds {
			if err := p.Eval(s, mask); err != nil {
				return err
			}
		}
		return nil
	})
}
