// Package maskgo provides dense selection masks for molecular data.
//
// Maskgo is the selection subsystem of a molecular visualization pipeline:
// a fixed-size bitset engine plus the layers that populate, combine, store
// and snapshot selection masks over flat atom arrays.
//
// # Quick Start
//
//	structure := loadStructure() // *mol.Structure from your own parser
//	ws, _ := maskgo.NewWorkspace(structure)
//
//	// Select all protein backbone carbons.
//	_ = ws.Select(ctx, selection.AndP(selection.Backbone(), selection.ElementIs("C")))
//
//	// Refine: drop everything in chain B.
//	_ = ws.Modify(ctx, maskgo.Remove, selection.ChainID("B"))
//
//	// Gather the selected coordinates.
//	dst := mol.NewPositions(ws.SelectedCount())
//	n, _ := ws.ExtractPositions(dst, positions)
//
//	// Name the result, change your mind, take it back.
//	_ = ws.Store(ctx, "backbone-c")
//	_ = ws.Select(ctx, selection.Water())
//	_ = ws.Undo(ctx)
//
// # Layers
//
//   - bitset: the core engine. Fixed-size []uint64 bitset with block-aligned
//     range operations, restartable set-bit scans and mask-driven compaction.
//   - selection: programmatic predicates over a mol.Structure, a registry of
//     named selections, and roaring-bitmap interchange for sparse consumers.
//   - snapshot: compressed in-memory mask snapshots backing undo/redo.
//   - mol: the minimal structure description masks index into.
//
// The engine is single-threaded by contract: no operation locks, and no
// mask may be mutated concurrently with another operation on the same mask.
// Distinct masks are fully independent.
package maskgo
