package solver

import (
	"testing"

	"github.com/eternity/tessellate/pkg/model"
)

func TestValueOrdererPrefersLeastConstrainingRotation(t *testing.T) {
	tiles := map[model.TileID]model.Tile{
		1: model.NewTile(1, 1, 5, 1, 9), // rotation0 shows East=5, rotation1 shows East=1
		2: model.NewTile(2, 2, 2, 2, 5), // West=5 at rotation0
		3: model.NewTile(3, 9, 9, 9, 9), // West never matches 5 or 1
	}
	dm := NewDomainManager(1, 2, tiles, NewPlacementValidator(0))
	dm.Set(0, 0, CellDomain{1: {0, 1}})
	dm.Set(0, 1, CellDomain{2: {0}, 3: {0}})

	idx := BuildEdgeCompatibilityIndex(tiles)
	vo := NewValueOrderer(dm, tiles, idx, model.Ascending)

	b := model.NewBoard(1, 2)
	ordered := vo.Order(b, 0, 0, dm.Get(0, 0))

	if len(ordered) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(ordered))
	}
	if ordered[0].Rotation != 0 {
		t.Fatalf("expected rotation 0 (East=5, matches tile 2's West) to sort first as least constraining, got rotation %d", ordered[0].Rotation)
	}
	if ordered[1].Rotation != 1 {
		t.Fatalf("expected rotation 1 (East=1, matches nothing) to sort last, got rotation %d", ordered[1].Rotation)
	}
}

func TestValueOrdererTileIDTiebreakDirection(t *testing.T) {
	// Two tiles with identical edges (equal constraint impact and equal
	// difficulty score) differ only by id; sort direction should decide.
	tiles := map[model.TileID]model.Tile{
		5: model.NewTile(5, 0, 0, 0, 0),
		2: model.NewTile(2, 0, 0, 0, 0),
	}
	dm := NewDomainManager(1, 1, tiles, NewPlacementValidator(0))
	dm.Set(0, 0, CellDomain{5: {0}, 2: {0}})
	idx := BuildEdgeCompatibilityIndex(tiles)

	b := model.NewBoard(1, 1)

	ascending := NewValueOrderer(dm, tiles, idx, model.Ascending)
	ordAsc := ascending.Order(b, 0, 0, dm.Get(0, 0))
	if ordAsc[0].TileID != 2 {
		t.Fatalf("expected ascending order to place tile 2 first, got %d", ordAsc[0].TileID)
	}

	descending := NewValueOrderer(dm, tiles, idx, model.Descending)
	ordDesc := descending.Order(b, 0, 0, dm.Get(0, 0))
	if ordDesc[0].TileID != 5 {
		t.Fatalf("expected descending order to place tile 5 first, got %d", ordDesc[0].TileID)
	}
}
