// Package mol provides a minimal in-memory molecular structure model: the
// flat atom arrays that selection masks index into. File-format parsing and
// geometry computation live outside this module; mol only describes what a
// mask of length AtomCount() refers to.
package mol

import (
	"fmt"

	"github.com/hupe1980/maskgo/bitset"
)

// Range is a half-open [Beg, End) index interval.
type Range struct {
	Beg int32
	End int32
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int { return int(r.End - r.Beg) }

// Residue groups a contiguous span of atoms.
type Residue struct {
	Name     string
	Atoms    Range
	ChainIdx int32
}

// Chain groups a contiguous span of residues.
type Chain struct {
	ID       string
	Residues Range
}

// Structure describes a molecule as parallel per-atom arrays (SoA layout)
// plus residue and chain index spans. All per-atom slices have the same
// length; Validate checks the cross-references.
type Structure struct {
	Labels     []string  // per-atom label, e.g. "CA"
	Elements   []Element // per-atom element code
	ResidueIdx []int32   // per-atom owning residue index
	Residues   []Residue
	Chains     []Chain
}

// AtomCount returns the number of atoms, which is also the length of every
// selection mask over this structure.
func (s *Structure) AtomCount() int { return len(s.Elements) }

// Validate checks that the per-atom arrays are parallel and that residue
// and chain spans stay in bounds.
func (s *Structure) Validate() error {
	n := s.AtomCount()
	if len(s.Labels) != n || len(s.ResidueIdx) != n {
		return fmt.Errorf("mol: per-atom arrays not parallel: labels=%d elements=%d residueIdx=%d",
			len(s.Labels), n, len(s.ResidueIdx))
	}
	for i, res := range s.Residues {
		if res.Atoms.Beg < 0 || int(res.Atoms.End) > n || res.Atoms.Beg > res.Atoms.End {
			return fmt.Errorf("mol: residue %d atom range [%d,%d) out of bounds [0,%d)", i, res.Atoms.Beg, res.Atoms.End, n)
		}
		if int(res.ChainIdx) >= len(s.Chains) {
			return fmt.Errorf("mol: residue %d references chain %d of %d", i, res.ChainIdx, len(s.Chains))
		}
	}
	for i, ch := range s.Chains {
		if ch.Residues.Beg < 0 || int(ch.Residues.End) > len(s.Residues) || ch.Residues.Beg > ch.Residues.End {
			return fmt.Errorf("mol: chain %d residue range [%d,%d) out of bounds [0,%d)", i, ch.Residues.Beg, ch.Residues.End, len(s.Residues))
		}
	}
	return nil
}

// ChainAtomRange returns the atom span covered by chain c.
func (s *Structure) ChainAtomRange(c int) Range {
	ch := s.Chains[c]
	if ch.Residues.Len() == 0 {
		return Range{}
	}
	return Range{
		Beg: s.Residues[ch.Residues.Beg].Atoms.Beg,
		End: s.Residues[ch.Residues.End-1].Atoms.End,
	}
}

// Positions holds atom coordinates as separate component arrays.
type Positions struct {
	X []float32
	Y []float32
	Z []float32
}

// NewPositions allocates zeroed position arrays for n atoms.
func NewPositions(n int) *Positions {
	return &Positions{
		X: make([]float32, n),
		Y: make([]float32, n),
		Z: make([]float32, n),
	}
}

// Len returns the number of atoms covered.
func (p *Positions) Len() int { return len(p.X) }

// ExtractPositions gathers the coordinates of every masked atom from src
// into dst, preserving atom order, and returns the number of atoms written.
// dst must have room for mask.Count() atoms per component.
func ExtractPositions(dst, src *Positions, mask *bitset.Bitset) int {
	n := bitset.Extract(dst.X, src.X, mask)
	bitset.Extract(dst.Y, src.Y, mask)
	bitset.Extract(dst.Z, src.Z, mask)
	return n
}
