package solver

import (
	"testing"

	"github.com/eternity/tessellate/pkg/model"
)

func contains(ids []model.TileID, want model.TileID) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}

func TestEdgeCompatibilityIndexFindsDirectMatch(t *testing.T) {
	tiles := map[model.TileID]model.Tile{
		1: model.NewTile(1, 0, 1, 0, 0),
		2: model.NewTile(2, 9, 9, 9, 9),
	}
	idx := BuildEdgeCompatibilityIndex(tiles)

	matches := idx.TilesShowingColor(model.East, 1)
	if !contains(matches, 1) {
		t.Fatalf("expected tile 1 to be able to show color 1 on East under some rotation, got %v", matches)
	}
	if contains(matches, 2) {
		t.Fatalf("tile 2 never shows color 1 on any side, should not match East=1")
	}
}

func TestEdgeCompatibilityIndexFindsRotatedMatch(t *testing.T) {
	// Tile shows color 7 only on its North edge at rotation 0; rotating it
	// should let it show 7 on every other side too.
	tiles := map[model.TileID]model.Tile{
		1: model.NewTile(1, 7, 2, 3, 4),
	}
	idx := BuildEdgeCompatibilityIndex(tiles)

	for _, side := range []model.Side{model.North, model.East, model.South, model.West} {
		matches := idx.TilesShowingColor(side, 7)
		if !contains(matches, 1) {
			t.Fatalf("expected tile 1 to show color 7 on side %v under some rotation", side)
		}
	}
}

func TestEdgeCompatibilityIndexEmptyForUnusedColor(t *testing.T) {
	tiles := map[model.TileID]model.Tile{
		1: model.NewTile(1, 1, 2, 3, 4),
	}
	idx := BuildEdgeCompatibilityIndex(tiles)
	matches := idx.TilesShowingColor(model.North, 999)
	if len(matches) != 0 {
		t.Fatalf("expected no matches for an unused color, got %v", matches)
	}
}
