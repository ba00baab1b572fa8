package model

import "testing"

func validCheckpoint() *Checkpoint {
	order := []PlacementInfo{
		{Row: 0, Col: 0, TileID: 1, Rotation: 0},
		{Row: 0, Col: 1, TileID: 2, Rotation: 1},
	}
	return &Checkpoint{
		PuzzleName:     "p",
		Rows:           1,
		Cols:           2,
		PlacementOrder: order,
		PlacementsByCell: map[[2]int]PlacementInfo{
			{0, 0}: order[0],
			{0, 1}: order[1],
		},
		UnusedTileIDs:      []TileID{3},
		NumFixedPieces:     1,
		InitialFixedPieces: []PlacementInfo{order[0]},
	}
}

func TestValidateAcceptsConsistentCheckpoint(t *testing.T) {
	cp := validCheckpoint()
	if err := cp.Validate(3); err != nil {
		t.Fatalf("expected a valid checkpoint to pass, got %v", err)
	}
}

func TestValidateRejectsOrderCellMismatch(t *testing.T) {
	cp := validCheckpoint()
	cp.PlacementOrder = append(cp.PlacementOrder, PlacementInfo{Row: 5, Col: 5, TileID: 9})
	if err := cp.Validate(3); err == nil {
		t.Fatal("expected an error when placementOrder has an entry missing from placementsByCell")
	}
}

func TestValidateRejectsDuplicateCellInOrder(t *testing.T) {
	cp := validCheckpoint()
	cp.PlacementOrder = append(cp.PlacementOrder, cp.PlacementOrder[0])
	if err := cp.Validate(3); err == nil {
		t.Fatal("expected an error when a cell appears twice in placementOrder")
	}
}

func TestValidateRejectsDuplicateTile(t *testing.T) {
	cp := validCheckpoint()
	dup := cp.PlacementOrder[0]
	dup.Row, dup.Col = 9, 9
	cp.PlacementOrder = append(cp.PlacementOrder, dup)
	cp.PlacementsByCell[[2]int{9, 9}] = dup
	if err := cp.Validate(3); err == nil {
		t.Fatal("expected an error when a tile is placed more than once")
	}
}

func TestValidateRejectsNumFixedPiecesExceedingPlacementCount(t *testing.T) {
	cp := validCheckpoint()
	cp.NumFixedPieces = 99
	if err := cp.Validate(3); err == nil {
		t.Fatal("expected an error when numFixedPieces exceeds the placement count")
	}
}

func TestValidateRejectsInitialFixedPiecesSizeMismatch(t *testing.T) {
	cp := validCheckpoint()
	cp.InitialFixedPieces = nil
	if err := cp.Validate(3); err == nil {
		t.Fatal("expected an error when initialFixedPieces size disagrees with numFixedPieces")
	}
}

func TestValidateRejectsInitialFixedPiecesOrderMismatch(t *testing.T) {
	cp := validCheckpoint()
	cp.InitialFixedPieces[0] = PlacementInfo{Row: 0, Col: 0, TileID: 77, Rotation: 2}
	if err := cp.Validate(3); err == nil {
		t.Fatal("expected an error when placementOrder prefix disagrees with initialFixedPieces")
	}
}

func TestValidateRejectsTilePlacedAndUnused(t *testing.T) {
	cp := validCheckpoint()
	cp.UnusedTileIDs = append(cp.UnusedTileIDs, 1)
	if err := cp.Validate(4); err == nil {
		t.Fatal("expected an error when a tile is both placed and marked unused")
	}
}

func TestValidateRejectsIncompletePartition(t *testing.T) {
	cp := validCheckpoint()
	if err := cp.Validate(10); err == nil {
		t.Fatal("expected an error when placed+unused tiles do not cover the puzzle's total")
	}
}
