package solver

import (
	"testing"

	"github.com/eternity/tessellate/pkg/model"
)

func TestHistoricalBacktrackerPopsBadPrefixAndSolves(t *testing.T) {
	tiles := map[model.TileID]model.Tile{
		1: model.NewTile(1, 0, 5, 0, 0), // the correct left-hand tile
		2: model.NewTile(2, 0, 0, 0, 5), // the correct right-hand tile, W matches tile1's E
		3: model.NewTile(3, 0, 9, 0, 0), // also corner-legal but leads nowhere: no tile has W=9
	}
	ctx := newSolverContext(tiles, 1, 2, RunConfig{Threads: 1})

	// Simulate a bad resumed state: tile 3 sits in (0,0) even though it
	// strands (0,1) with an empty domain.
	board := model.NewBoard(1, 2)
	board.Place(0, 0, model.NewPlacement(tiles[3], 0))
	used := model.NewPieceUsedSet(3)
	used.Mark(3)
	history := []model.PlacementInfo{{Row: 0, Col: 0, TileID: 3, Rotation: 0}}

	shared := NewSharedSearchState()
	engine := NewBacktrackingEngine(ctx, board, used, history, 0, shared, 0)

	hb := NewHistoricalBacktracker(engine)
	if !hb.Run() {
		t.Fatal("expected the historical backtracker to pop the bad placement and solve with tiles 1 and 2")
	}
	if used.Cardinality() != 2 {
		t.Fatalf("expected exactly 2 tiles placed (the dead-end tile popped off), got %d", used.Cardinality())
	}
	if used.Has(3) {
		t.Fatal("expected tile 3 to have been unmarked after the historical pop")
	}
	matched, max := board.CalculateScore()
	if matched != max {
		t.Fatalf("expected a perfect score after recovering, got %d/%d", matched, max)
	}
}

func TestHistoricalBacktrackerNeverPopsPastFixedPrefix(t *testing.T) {
	tiles := map[model.TileID]model.Tile{
		1: model.NewTile(1, 9, 9, 9, 9), // never fits anywhere: no side is border
	}
	ctx := newSolverContext(tiles, 1, 1, RunConfig{Threads: 1})

	board := model.NewBoard(1, 1)
	used := model.NewPieceUsedSet(1)
	shared := NewSharedSearchState()

	// No placements at all, and the fixed-piece prefix is already 0: there is
	// nothing to pop, so Run should just report failure without panicking.
	engine := NewBacktrackingEngine(ctx, board, used, nil, 0, shared, 0)
	hb := NewHistoricalBacktracker(engine)
	if hb.Run() {
		t.Fatal("expected no solution: the only tile never shows a border edge")
	}
	if len(engine.History) != 0 {
		t.Fatalf("expected history to remain empty, got %d entries", len(engine.History))
	}
}
