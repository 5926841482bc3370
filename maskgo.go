package maskgo

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/maskgo/bitset"
	"github.com/hupe1980/maskgo/mol"
	"github.com/hupe1980/maskgo/selection"
	"github.com/hupe1980/maskgo/snapshot"
)

// CombineOp selects how a predicate result refines the active selection.
type CombineOp uint8

const (
	// Replace overwrites the active selection with the predicate result.
	Replace CombineOp = iota
	// Add unions the predicate result into the active selection.
	Add
	// Remove subtracts the predicate result from the active selection.
	Remove
	// Intersect keeps only atoms in both the active selection and the
	// predicate result.
	Intersect
	// Toggle flips the selection state of every atom in the predicate result.
	Toggle
)

// String returns the operation name.
func (op CombineOp) String() string {
	switch op {
	case Replace:
		return "replace"
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Intersect:
		return "intersect"
	case Toggle:
		return "toggle"
	default:
		return fmt.Sprintf("CombineOp(%d)", uint8(op))
	}
}

// Workspace ties a structure to an active selection mask, a registry of
// named selections and an undo history. It is the top-level entry point of
// the selection subsystem.
//
// A Workspace is unsynchronized, like the masks it owns; wrap it if multiple
// goroutines need access.
type Workspace struct {
	structure *mol.Structure
	active    *bitset.Bitset
	registry  *selection.Registry
	history   *snapshot.History
	logger    *Logger
}

// NewWorkspace creates a workspace over the given structure with an empty
// active selection. The structure must be non-empty and internally
// consistent.
func NewWorkspace(s *mol.Structure, optFns ...Option) (*Workspace, error) {
	opts := options{
		logger:       NoopLogger(),
		historyDepth: snapshot.DefaultDepth,
		compression:  snapshot.LZ4,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if s == nil || s.AtomCount() == 0 {
		return nil, fmt.Errorf("%w: no atoms", ErrInvalidStructure)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStructure, err)
	}

	ws := &Workspace{
		structure: s,
		active:    bitset.New(s.AtomCount()),
		registry:  selection.NewRegistry(s.AtomCount()),
		history:   snapshot.NewHistory(opts.historyDepth, opts.compression),
		logger:    opts.logger,
	}
	// Seed the history with the empty state so the first Select is undoable.
	if err := ws.history.Push(ws.active); err != nil {
		return nil, err
	}
	return ws, nil
}

// Structure returns the structure the workspace selects over.
func (ws *Workspace) Structure() *mol.Structure { return ws.structure }

// Active returns the live active selection mask. The workspace retains
// ownership; treat it as read-only, or Clone before mutating.
func (ws *Workspace) Active() *bitset.Bitset { return ws.active }

// SelectedCount returns the number of selected atoms.
func (ws *Workspace) SelectedCount() int { return ws.active.Count() }

// Select replaces the active selection with the predicate result and
// records the new state in the history.
func (ws *Workspace) Select(ctx context.Context, p selection.Predicate) error {
	mask, err := selection.Compute(ws.structure, p)
	if err == nil {
		ws.active = mask
		err = ws.history.Push(ws.active)
	}
	ws.logger.LogSelect(ctx, ws.active.Count(), err)
	return err
}

// Modify refines the active selection with the predicate result using the
// given combine operation and records the new state in the history.
func (ws *Workspace) Modify(ctx context.Context, op CombineOp, p selection.Predicate) error {
	mask, err := selection.Compute(ws.structure, p)
	if err == nil {
		switch op {
		case Replace:
			ws.active = mask
		case Add:
			ws.active.Or(ws.active, mask)
		case Remove:
			ws.active.AndNot(ws.active, mask)
		case Intersect:
			ws.active.And(ws.active, mask)
		case Toggle:
			ws.active.Xor(ws.active, mask)
		default:
			err = fmt.Errorf("unknown combine op %d", op)
		}
	}
	if err == nil {
		err = ws.history.Push(ws.active)
	}
	ws.logger.LogModify(ctx, op, ws.active.Count(), err)
	return err
}

// ClearSelection empties the active selection and records the new state.
func (ws *Workspace) ClearSelection(ctx context.Context) error {
	ws.active.ClearAll()
	err := ws.history.Push(ws.active)
	ws.logger.LogSelect(ctx, 0, err)
	return err
}

// InvertSelection complements the active selection and records the new state.
func (ws *Workspace) InvertSelection(ctx context.Context) error {
	ws.active.InvertAll()
	err := ws.history.Push(ws.active)
	ws.logger.LogSelect(ctx, ws.active.Count(), err)
	return err
}

// Undo restores the previous selection state.
func (ws *Workspace) Undo(ctx context.Context) error {
	mask, err := ws.history.Undo()
	if err == nil {
		ws.active = mask
	} else if errors.Is(err, snapshot.ErrNoHistory) {
		err = fmt.Errorf("%w: nothing to undo", ErrNoHistory)
	}
	ws.logger.LogHistory(ctx, "undo", ws.active.Count(), err)
	return err
}

// Redo re-applies the most recently undone selection state.
func (ws *Workspace) Redo(ctx context.Context) error {
	mask, err := ws.history.Redo()
	if err == nil {
		ws.active = mask
	} else if errors.Is(err, snapshot.ErrNoHistory) {
		err = fmt.Errorf("%w: nothing to redo", ErrNoHistory)
	}
	ws.logger.LogHistory(ctx, "redo", ws.active.Count(), err)
	return err
}

// Store saves a copy of the active selection under name.
func (ws *Workspace) Store(ctx context.Context, name string) error {
	err := ws.registry.Define(name, ws.active)
	ws.logger.LogStore(ctx, "store", name, err)
	return err
}

// Load replaces the active selection with the named stored selection and
// records the new state in the history.
func (ws *Workspace) Load(ctx context.Context, name string) error {
	mask, ok := ws.registry.Get(name)
	var err error
	if !ok {
		err = fmt.Errorf("%w: %q", ErrNotFound, name)
	} else {
		ws.active = mask
		err = ws.history.Push(ws.active)
	}
	ws.logger.LogStore(ctx, "load", name, err)
	return err
}

// Delete removes a stored selection.
func (ws *Workspace) Delete(name string) error {
	if !ws.registry.Delete(name) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// Stored returns a copy of a named stored selection.
func (ws *Workspace) Stored(name string) (*bitset.Bitset, error) {
	mask, ok := ws.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return mask, nil
}

// Names returns the stored selection names in sorted order.
func (ws *Workspace) Names() []string { return ws.registry.Names() }

// ExtractPositions gathers the coordinates of the selected atoms from src
// into dst, preserving atom order, and returns the number of atoms written.
// src must cover the whole structure; dst must have room for SelectedCount()
// atoms per component.
func (ws *Workspace) ExtractPositions(dst, src *mol.Positions) (int, error) {
	if src.Len() != ws.structure.AtomCount() {
		return 0, fmt.Errorf("%w: %d positions for %d atoms", ErrSizeMismatch, src.Len(), ws.structure.AtomCount())
	}
	if dst.Len() < ws.active.Count() {
		return 0, fmt.Errorf("%w: destination holds %d of %d selected atoms", ErrSizeMismatch, dst.Len(), ws.active.Count())
	}
	return mol.ExtractPositions(dst, src, ws.active), nil
}
