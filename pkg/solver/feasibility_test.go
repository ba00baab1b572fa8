package solver

import (
	"testing"

	"github.com/eternity/tessellate/pkg/model"
)

func TestCheckFeasibleRejectsOddColorCount(t *testing.T) {
	tiles := map[model.TileID]model.Tile{
		1: model.NewTile(1, 0, 5, 0, 0),
		2: model.NewTile(2, 0, 0, 0, 0),
	}
	unused := map[model.TileID]bool{1: true, 2: true}

	report := CheckFeasible(tiles, unused, 0, 1, 2)
	if report.Feasible {
		t.Fatal("expected infeasible: color 5 appears exactly once across unused tiles")
	}
}

func TestCheckFeasibleRejectsInsufficientBorderEdges(t *testing.T) {
	tiles := map[model.TileID]model.Tile{
		1: model.NewTile(1, 9, 9, 9, 9),
		2: model.NewTile(2, 9, 9, 9, 9),
		3: model.NewTile(3, 9, 9, 9, 9),
		4: model.NewTile(4, 9, 9, 9, 9),
	}
	unused := map[model.TileID]bool{1: true, 2: true, 3: true, 4: true}

	report := CheckFeasible(tiles, unused, 0, 2, 2)
	if report.Feasible {
		t.Fatal("expected infeasible: no tile shows the border color at all")
	}
}

func TestCheckFeasibleAcceptsBalancedTileSet(t *testing.T) {
	// A 2x2 grid needs 8 border-facing sides. Each tile below shows border
	// on two adjacent sides (a corner shape) and shares interior colors 1/2
	// pairwise, so every non-border color count is even.
	tiles := map[model.TileID]model.Tile{
		1: model.NewTile(1, 0, 1, 2, 0),
		2: model.NewTile(2, 0, 0, 2, 1),
		3: model.NewTile(3, 2, 1, 0, 0),
		4: model.NewTile(4, 2, 0, 0, 1),
	}
	unused := map[model.TileID]bool{1: true, 2: true, 3: true, 4: true}

	report := CheckFeasible(tiles, unused, 0, 2, 2)
	if !report.Feasible {
		t.Fatalf("expected feasible tile set, got infeasible: %s", report.Reason)
	}
}

func TestRequiredBorderEdgesCountsCorners(t *testing.T) {
	if got := requiredBorderEdges(2, 2); got != 8 {
		t.Fatalf("expected 8 border-facing sides on a 2x2 grid (corners contribute 2 each), got %d", got)
	}
	if got := requiredBorderEdges(1, 3); got != 8 {
		t.Fatalf("expected 8 border-facing sides on a 1x3 row (each cell contributes at least 2), got %d", got)
	}
	if got := requiredBorderEdges(3, 3); got != 12 {
		t.Fatalf("expected 12 border-facing sides on a 3x3 grid, got %d", got)
	}
}
