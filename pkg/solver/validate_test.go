package solver

import (
	"testing"

	"github.com/eternity/tessellate/pkg/model"
)

func TestFitsBorderRequirement(t *testing.T) {
	v := NewPlacementValidator(0)
	b := model.NewBoard(2, 2)

	tile := model.NewTile(1, 0, 1, 2, 0) // N=0 E=1 S=2 W=0, fits top-left corner
	p := model.NewPlacement(tile, 0)
	if !v.Fits(b, 0, 0, p) {
		t.Fatal("expected corner tile with border N/W to fit (0,0)")
	}

	bad := model.NewTile(2, 9, 1, 2, 0) // N=9 (not border) at a cell requiring border N
	if v.Fits(b, 0, 0, model.NewPlacement(bad, 0)) {
		t.Fatal("expected tile without border N to be rejected at (0,0)")
	}
}

func TestFitsInteriorCannotShowBorder(t *testing.T) {
	v := NewPlacementValidator(0)
	b := model.NewBoard(3, 3)

	// Center cell (1,1) has no border-facing sides and no placed
	// neighbors yet, so no side may show the border color - a border edge
	// there could never match a future (necessarily non-border) neighbor.
	tile := model.NewTile(1, 9, 0, 9, 9) // E == border, illegal here
	if v.Fits(b, 1, 1, model.NewPlacement(tile, 0)) {
		t.Fatal("expected interior-facing side showing border color to be rejected")
	}

	ok := model.NewTile(2, 9, 8, 9, 9)
	if !v.Fits(b, 1, 1, model.NewPlacement(ok, 0)) {
		t.Fatal("expected all-interior non-border edges to fit the center cell")
	}
}

func TestFitsNeighborMatch(t *testing.T) {
	v := NewPlacementValidator(0)
	b := model.NewBoard(1, 2)

	left := model.NewTile(1, 0, 7, 0, 0)
	b.Place(0, 0, model.NewPlacement(left, 0))

	matching := model.NewTile(2, 0, 0, 0, 7)
	if !v.Fits(b, 0, 1, model.NewPlacement(matching, 0)) {
		t.Fatal("expected tile with matching west edge to fit")
	}

	mismatch := model.NewTile(3, 0, 0, 0, 8)
	if v.Fits(b, 0, 1, model.NewPlacement(mismatch, 0)) {
		t.Fatal("expected tile with mismatched west edge to be rejected")
	}
}
