package maskgo_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/maskgo"
	"github.com/hupe1980/maskgo/mol"
	"github.com/hupe1980/maskgo/selection"
	"github.com/hupe1980/maskgo/snapshot"
)

// testStructure builds a two-chain toy structure:
// chain A: ALA (N, CA, C, O, CB), GLY (N, CA, C, O)
// chain W: HOH (O, H, H)
func testStructure(t *testing.T) *mol.Structure {
	t.Helper()
	s := &mol.Structure{
		Labels: []string{
			"N", "CA", "C", "O", "CB",
			"N", "CA", "C", "O",
			"O", "H1", "H2",
		},
		Elements: []mol.Element{
			mol.N, mol.C, mol.C, mol.O, mol.C,
			mol.N, mol.C, mol.C, mol.O,
			mol.O, mol.H, mol.H,
		},
		ResidueIdx: []int32{0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2},
		Residues: []mol.Residue{
			{Name: "ALA", Atoms: mol.Range{Beg: 0, End: 5}, ChainIdx: 0},
			{Name: "GLY", Atoms: mol.Range{Beg: 5, End: 9}, ChainIdx: 0},
			{Name: "HOH", Atoms: mol.Range{Beg: 9, End: 12}, ChainIdx: 1},
		},
		Chains: []mol.Chain{
			{ID: "A", Residues: mol.Range{Beg: 0, End: 2}},
			{ID: "W", Residues: mol.Range{Beg: 2, End: 3}},
		},
	}
	require.NoError(t, s.Validate())
	return s
}

func TestNewWorkspace(t *testing.T) {
	ws, err := maskgo.NewWorkspace(testStructure(t))
	require.NoError(t, err)
	assert.Equal(t, 12, ws.Structure().AtomCount())
	assert.Equal(t, 0, ws.SelectedCount())

	_, err = maskgo.NewWorkspace(nil)
	assert.ErrorIs(t, err, maskgo.ErrInvalidStructure)

	_, err = maskgo.NewWorkspace(&mol.Structure{})
	assert.ErrorIs(t, err, maskgo.ErrInvalidStructure)

	bad := testStructure(t)
	bad.Residues[0].Atoms.End = 99
	_, err = maskgo.NewWorkspace(bad)
	assert.ErrorIs(t, err, maskgo.ErrInvalidStructure)
}

func TestWorkspaceSelectModify(t *testing.T) {
	ctx := context.Background()
	ws, err := maskgo.NewWorkspace(testStructure(t),
		maskgo.WithLogger(maskgo.NewTextLogger(slog.LevelError)),
	)
	require.NoError(t, err)

	require.NoError(t, ws.Select(ctx, selection.ChainID("A")))
	assert.Equal(t, 9, ws.SelectedCount())

	// Remove oxygens from the active selection.
	require.NoError(t, ws.Modify(ctx, maskgo.Remove, selection.ElementIs("O")))
	assert.Equal(t, 7, ws.SelectedCount())

	// Add water back in.
	require.NoError(t, ws.Modify(ctx, maskgo.Add, selection.Water()))
	assert.Equal(t, 10, ws.SelectedCount())

	// Intersect with the backbone. The water oxygen is labeled "O" and
	// survives the cut.
	require.NoError(t, ws.Modify(ctx, maskgo.Intersect, selection.Backbone()))
	assert.Equal(t, 7, ws.SelectedCount())

	// Toggle CA atoms (both currently selected).
	require.NoError(t, ws.Modify(ctx, maskgo.Toggle, selection.LabelIs("CA")))
	assert.Equal(t, 5, ws.SelectedCount())

	// Replace through Modify.
	require.NoError(t, ws.Modify(ctx, maskgo.Replace, selection.All()))
	assert.Equal(t, 12, ws.SelectedCount())

	err = ws.Select(ctx, selection.ElementIs("Bogus"))
	assert.ErrorIs(t, err, selection.ErrUnknownElement)
}

func TestWorkspaceClearInvert(t *testing.T) {
	ctx := context.Background()
	ws, err := maskgo.NewWorkspace(testStructure(t))
	require.NoError(t, err)

	require.NoError(t, ws.Select(ctx, selection.Water()))
	require.NoError(t, ws.InvertSelection(ctx))
	assert.Equal(t, 9, ws.SelectedCount())

	require.NoError(t, ws.ClearSelection(ctx))
	assert.Equal(t, 0, ws.SelectedCount())
}

func TestWorkspaceUndoRedo(t *testing.T) {
	ctx := context.Background()
	ws, err := maskgo.NewWorkspace(testStructure(t),
		maskgo.WithHistoryDepth(16),
		maskgo.WithCompression(snapshot.ZSTD),
	)
	require.NoError(t, err)

	require.NoError(t, ws.Select(ctx, selection.ChainID("A"))) // 9 atoms
	require.NoError(t, ws.Modify(ctx, maskgo.Remove, selection.ElementIs("O"))) // 7 atoms

	require.NoError(t, ws.Undo(ctx))
	assert.Equal(t, 9, ws.SelectedCount())

	require.NoError(t, ws.Undo(ctx))
	assert.Equal(t, 0, ws.SelectedCount())

	err = ws.Undo(ctx)
	assert.ErrorIs(t, err, maskgo.ErrNoHistory)

	require.NoError(t, ws.Redo(ctx))
	assert.Equal(t, 9, ws.SelectedCount())

	require.NoError(t, ws.Redo(ctx))
	assert.Equal(t, 7, ws.SelectedCount())

	err = ws.Redo(ctx)
	assert.ErrorIs(t, err, maskgo.ErrNoHistory)

	// A new selection clears the redo branch.
	require.NoError(t, ws.Undo(ctx))
	require.NoError(t, ws.Select(ctx, selection.Water()))
	err = ws.Redo(ctx)
	assert.ErrorIs(t, err, maskgo.ErrNoHistory)
}

func TestWorkspaceStoredSelections(t *testing.T) {
	ctx := context.Background()
	ws, err := maskgo.NewWorkspace(testStructure(t))
	require.NoError(t, err)

	require.NoError(t, ws.Select(ctx, selection.Backbone()))
	require.NoError(t, ws.Store(ctx, "bb"))

	require.NoError(t, ws.Select(ctx, selection.Water()))
	require.NoError(t, ws.Store(ctx, "wet"))
	assert.Equal(t, []string{"bb", "wet"}, ws.Names())

	require.NoError(t, ws.Load(ctx, "bb"))
	assert.Equal(t, 9, ws.SelectedCount())

	mask, err := ws.Stored("wet")
	require.NoError(t, err)
	assert.Equal(t, 3, mask.Count())

	_, err = ws.Stored("nope")
	assert.ErrorIs(t, err, maskgo.ErrNotFound)
	assert.ErrorIs(t, ws.Load(ctx, "nope"), maskgo.ErrNotFound)

	require.NoError(t, ws.Delete("wet"))
	assert.ErrorIs(t, ws.Delete("wet"), maskgo.ErrNotFound)

	// Loading a stored selection is undoable.
	require.NoError(t, ws.Undo(ctx))
	assert.Equal(t, 3, ws.SelectedCount())
}

func TestWorkspaceExtractPositions(t *testing.T) {
	ctx := context.Background()
	ws, err := maskgo.NewWorkspace(testStructure(t))
	require.NoError(t, err)

	src := mol.NewPositions(12)
	for i := 0; i < 12; i++ {
		src.X[i] = float32(i)
		src.Y[i] = float32(i) + 100
		src.Z[i] = float32(i) + 200
	}

	require.NoError(t, ws.Select(ctx, selection.LabelIs("CA")))
	dst := mol.NewPositions(ws.SelectedCount())

	n, err := ws.ExtractPositions(dst, src)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, []float32{1, 6}, dst.X)
	assert.Equal(t, []float32{101, 106}, dst.Y)
	assert.Equal(t, []float32{201, 206}, dst.Z)

	_, err = ws.ExtractPositions(dst, mol.NewPositions(11))
	assert.ErrorIs(t, err, maskgo.ErrSizeMismatch)

	_, err = ws.ExtractPositions(mol.NewPositions(1), src)
	assert.ErrorIs(t, err, maskgo.ErrSizeMismatch)
}

func TestCombineOpString(t *testing.T) {
	assert.Equal(t, "replace", maskgo.Replace.String())
	assert.Equal(t, "add", maskgo.Add.String())
	assert.Equal(t, "remove", maskgo.Remove.String())
	assert.Equal(t, "intersect", maskgo.Intersect.String())
	assert.Equal(t, "toggle", maskgo.Toggle.String())
	assert.Equal(t, "CombineOp(9)", maskgo.CombineOp(9).String())
}
