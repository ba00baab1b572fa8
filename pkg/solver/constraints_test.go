package solver

import (
	"testing"

	"github.com/eternity/tessellate/pkg/model"
)

func TestConstraintsForCellBorderFlags(t *testing.T) {
	b := model.NewBoard(3, 3)

	c := ConstraintsForCell(b, 0, 0)
	if !c.RequiresBorder[model.North] || !c.RequiresBorder[model.West] {
		t.Fatal("top-left corner must require border on North and West")
	}
	if c.RequiresBorder[model.East] || c.RequiresBorder[model.South] {
		t.Fatal("top-left corner must not require border on East or South")
	}

	mid := ConstraintsForCell(b, 1, 1)
	for _, side := range allSides {
		if mid.RequiresBorder[side] {
			t.Fatalf("center cell should not require border on side %v", side)
		}
	}
}

func TestConstraintsForCellNeighborColors(t *testing.T) {
	b := model.NewBoard(1, 2)
	tile := model.NewTile(1, 0, 7, 0, 0)
	b.Place(0, 0, model.NewPlacement(tile, 0))

	c := ConstraintsForCell(b, 0, 1)
	if !c.NeighborPlaced[model.West] {
		t.Fatal("expected (0,1) to see a placed West neighbor")
	}
	if c.NeighborColor[model.West] != 7 {
		t.Fatalf("expected neighbor color 7, got %d", c.NeighborColor[model.West])
	}
}
