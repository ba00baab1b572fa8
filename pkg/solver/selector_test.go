package solver

import (
	"testing"

	"github.com/eternity/tessellate/pkg/model"
)

func TestCellSelectorAvoidsTrappedGap(t *testing.T) {
	b := model.NewBoard(1, 5)
	tile := model.NewTile(1, 5, 5, 5, 5)
	// Fill column 0 on the top border row, leaving column 1 empty. Selecting
	// column 2 next would strand column 1 between two filled cells.
	b.Place(0, 0, model.NewPlacement(tile, 0))

	dm := NewDomainManager(1, 5, map[model.TileID]model.Tile{1: tile}, NewPlacementValidator(0))
	dm.Initialize(b, model.NewPieceUsedSet(1))

	cs := NewCellSelector(dm, 1, 5, false)
	if !cs.wouldTrapGap(b, 0, 2) {
		t.Fatal("expected selecting column 2 to be flagged as trapping the gap at column 1")
	}
	if cs.wouldTrapGap(b, 0, 1) {
		t.Fatal("selecting the gap cell itself should never be flagged as trapping")
	}
}

func TestCellSelectorReturnsFalseWhenFull(t *testing.T) {
	b := model.NewBoard(1, 1)
	tile := model.NewTile(1, 0, 0, 0, 0)
	b.Place(0, 0, model.NewPlacement(tile, 0))

	dm := NewDomainManager(1, 1, map[model.TileID]model.Tile{1: tile}, NewPlacementValidator(0))
	dm.Initialize(b, model.NewPieceUsedSet(1))

	cs := NewCellSelector(dm, 1, 1, false)
	if _, _, ok := cs.Select(b); ok {
		t.Fatal("expected Select to report no cell left on a full board")
	}
}

func TestCellSelectorPicksLowestMRV(t *testing.T) {
	// Two empty cells with differing domain sizes; the narrower one wins
	// in the absence of any border/neighbor tie-break difference.
	b := model.NewBoard(1, 2)
	tiles := map[model.TileID]model.Tile{
		1: model.NewTile(1, 0, 9, 0, 0),
		2: model.NewTile(2, 0, 9, 0, 9),
	}
	dm := NewDomainManager(1, 2, tiles, NewPlacementValidator(0))
	dm.Initialize(b, model.NewPieceUsedSet(2))
	// Force an artificial MRV gap: cell 1 keeps both tiles, cell 0 only one.
	dm.Set(0, 0, CellDomain{1: {0}})
	dm.Set(0, 1, CellDomain{1: {0}, 2: {0}})

	cs := NewCellSelector(dm, 1, 2, false)
	row, col, ok := cs.Select(b)
	if !ok {
		t.Fatal("expected a cell to be selected")
	}
	if row != 0 || col != 0 {
		t.Fatalf("expected MRV to pick (0,0) with the smaller domain, got (%d,%d)", row, col)
	}
}
