package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/eternity/tessellate/pkg/model"
	"github.com/eternity/tessellate/pkg/solver"
	"github.com/eternity/tessellate/pkg/tilefile"
)

// benchmarkPuzzle builds a small fully-tileable n x n puzzle for benchmarking
// the search hot paths without depending on any on-disk fixture.
func benchmarkPuzzle(n int) *model.PuzzleDefinition {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Type: square\n# Dimensions: %dx%d\n", n, n)

	colorFor := func(r, c, side int) model.Color {
		switch side {
		case 0: // north
			if r == 0 {
				return 0
			}
			return model.Color(r*100 + c)
		case 1: // east
			if c == n-1 {
				return 0
			}
			return model.Color(r*100 + c + 1 + 10000)
		case 2: // south
			if r == n-1 {
				return 0
			}
			return model.Color((r+1)*100 + c)
		default: // west
			if c == 0 {
				return 0
			}
			return model.Color(r*100 + c + 10000)
		}
	}

	id := 1
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			north := colorFor(r, c, 0)
			east := colorFor(r, c, 1)
			south := colorFor(r, c, 2)
			west := colorFor(r, c, 3)
			fmt.Fprintf(&sb, "%d %d %d %d %d\n", id, north, east, south, west)
			id++
		}
	}

	def, err := tilefile.Parse(strings.NewReader(sb.String()), "benchmark")
	if err != nil {
		panic(fmt.Sprintf("failed to build benchmark puzzle: %v", err))
	}
	return def
}

// BenchmarkFits measures the per-candidate edge-compatibility check that
// runs on every placement attempt during search.
func BenchmarkFits(b *testing.B) {
	def := benchmarkPuzzle(6)
	board := model.NewBoard(def.Rows, def.Cols)
	validator := solver.NewPlacementValidator(def.BorderColor)

	tile := def.Tiles[1]
	placement := model.NewPlacement(tile, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		validator.Fits(board, 0, 0, placement)
	}
}

// BenchmarkDomainManagerInitialize measures the up-front domain computation
// every search run pays once before the first move.
func BenchmarkDomainManagerInitialize(b *testing.B) {
	def := benchmarkPuzzle(6)
	validator := solver.NewPlacementValidator(def.BorderColor)
	used := model.NewPieceUsedSet(int(def.MaxTileID()))
	board := model.NewBoard(def.Rows, def.Cols)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dm := solver.NewDomainManager(def.Rows, def.Cols, def.Tiles, validator)
		dm.Initialize(board, used)
	}
}

// BenchmarkPropagate measures arc-consistency propagation after a single
// placement, the dominant per-node cost during backtracking search.
func BenchmarkPropagate(b *testing.B) {
	def := benchmarkPuzzle(6)
	validator := solver.NewPlacementValidator(def.BorderColor)

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		board := model.NewBoard(def.Rows, def.Cols)
		used := model.NewPieceUsedSet(int(def.MaxTileID()))
		dm := solver.NewDomainManager(def.Rows, def.Cols, def.Tiles, validator)
		dm.Initialize(board, used)
		tile := def.Tiles[1]
		board.Place(0, 0, model.NewPlacement(tile, 0))
		used.Mark(1)
		propagator := solver.NewConstraintPropagator(dm)
		stats := &solver.Statistics{}
		b.StartTimer()

		propagator.Propagate(board, stats, def.Rows, def.Cols, 1)
	}
}

// BenchmarkCheckFeasible measures the edge-parity precheck run before a
// solve starts, once per batch file.
func BenchmarkCheckFeasible(b *testing.B) {
	def := benchmarkPuzzle(8)
	unused := make(map[model.TileID]bool, len(def.Tiles))
	for id := range def.Tiles {
		unused[id] = true
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		solver.CheckFeasible(def.Tiles, unused, def.BorderColor, def.Rows, def.Cols)
	}
}
