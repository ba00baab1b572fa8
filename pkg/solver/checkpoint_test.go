package solver

import (
	"bytes"
	"testing"

	"github.com/eternity/tessellate/pkg/model"
)

func sampleCheckpoint() *model.Checkpoint {
	order := []model.PlacementInfo{
		{Row: 0, Col: 0, TileID: 1, Rotation: 0},
		{Row: 0, Col: 1, TileID: 2, Rotation: 1},
	}
	byCell := map[[2]int]model.PlacementInfo{
		{0, 0}: order[0],
		{0, 1}: order[1],
	}
	return &model.Checkpoint{
		PuzzleName:           "sample",
		Rows:                 2,
		Cols:                 2,
		PlacementsByCell:     byCell,
		PlacementOrder:       order,
		UnusedTileIDs:        []model.TileID{3, 4},
		NumFixedPieces:       1,
		InitialFixedPieces:   order[:1],
		ProgressPercent:      12.5,
		ElapsedMsThisSession: 1000,
		CumulativeComputeMs:  5000,
	}
}

func TestCheckpointEncodeDecodeRoundTrip(t *testing.T) {
	cp := sampleCheckpoint()
	data := Encode(cp)

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if err := decoded.Validate(4); err != nil {
		t.Fatalf("decoded checkpoint failed validation: %v", err)
	}

	again := Encode(decoded)
	if !bytes.Equal(data, again) {
		t.Fatalf("re-encoding a decoded checkpoint should be byte-identical\nfirst:\n%s\nsecond:\n%s", data, again)
	}
}

func TestCheckpointValidateRejectsCorruption(t *testing.T) {
	cp := sampleCheckpoint()
	cp.PlacementOrder = append(cp.PlacementOrder, model.PlacementInfo{Row: 9, Col: 9, TileID: 99, Rotation: 0})

	if err := cp.Validate(4); err == nil {
		t.Fatal("expected validation error when placementOrder has an entry missing from placementsByCell")
	}
}
