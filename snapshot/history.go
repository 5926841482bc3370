package snapshot

import (
	"errors"

	"github.com/hupe1980/maskgo/bitset"
)

// ErrNoHistory is returned when Undo or Redo has no entry to move to.
var ErrNoHistory = errors.New("snapshot: no history entry")

// History is a bounded undo/redo stack of encoded mask states. The top of
// the undo stack is the current state; Push records a new current state and
// discards any redo entries. When the depth limit is exceeded the oldest
// state falls off the bottom.
//
// States are stored encoded, so a deep history over a large structure stays
// cheap. Like the masks themselves, History is unsynchronized.
type History struct {
	depth       int
	compression Compression
	undo        [][]byte
	redo        [][]byte
}

// DefaultDepth is the fallback history depth when none is configured.
const DefaultDepth = 64

// NewHistory creates a history keeping at most depth states, encoded with
// the given compression. A non-positive depth falls back to DefaultDepth.
func NewHistory(depth int, c Compression) *History {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &History{depth: depth, compression: c}
}

// Len returns the number of recorded states, including the current one.
func (h *History) Len() int { return len(h.undo) }

// CanUndo reports whether a previous state exists.
func (h *History) CanUndo() bool { return len(h.undo) >= 2 }

// CanRedo reports whether an undone state can be restored.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Push records mask as the new current state and clears the redo stack.
func (h *History) Push(mask *bitset.Bitset) error {
	buf, err := Encode(mask, h.compression)
	if err != nil {
		return err
	}
	h.undo = append(h.undo, buf)
	if len(h.undo) > h.depth {
		h.undo = h.undo[len(h.undo)-h.depth:]
	}
	h.redo = nil
	return nil
}

// Undo moves one state back and returns the decoded previous state.
// Returns ErrNoHistory if no previous state exists.
func (h *History) Undo() (*bitset.Bitset, error) {
	if !h.CanUndo() {
		return nil, ErrNoHistory
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, top)
	return Decode(h.undo[len(h.undo)-1])
}

// Redo re-applies the most recently undone state and returns it.
// Returns ErrNoHistory if nothing has been undone.
func (h *History) Redo() (*bitset.Bitset, error) {
	if !h.CanRedo() {
		return nil, ErrNoHistory
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, top)
	return Decode(top)
}

// Clear drops all recorded states.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
