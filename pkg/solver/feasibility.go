package solver

import (
	"fmt"

	"github.com/eternity/tessellate/pkg/model"
)

// FeasibilityReport is the outcome of the O(N) precheck run before search
// starts.
type FeasibilityReport struct {
	Feasible bool
	Reason   string
}

// CheckFeasible applies a cheap necessary condition before committing to a
// full search: every interior edge is shared by two tile sides, so the
// total count of edges bearing any non-border color across all unused
// tiles must be even, and the count of border-colored edges must be at
// least the perimeter length (one border edge per perimeter-facing side).
func CheckFeasible(tiles map[model.TileID]model.Tile, unused map[model.TileID]bool, borderColor model.Color, rows, cols int) FeasibilityReport {
	colorCounts := make(map[model.Color]int)
	for id := range unused {
		tile, ok := tiles[id]
		if !ok {
			continue
		}
		edges := tile.Edges()
		for _, e := range edges {
			colorCounts[e]++
		}
	}

	for color, count := range colorCounts {
		if color == borderColor {
			continue
		}
		if count%2 != 0 {
			return FeasibilityReport{
				Feasible: false,
				Reason:   fmt.Sprintf("color %d appears an odd number of times (%d) across unused tiles; no interior edge-pairing can balance it", color, count),
			}
		}
	}

	perimeter := requiredBorderEdges(rows, cols)
	if colorCounts[borderColor] < perimeter {
		return FeasibilityReport{
			Feasible: false,
			Reason:   fmt.Sprintf("only %d border-colored edges remain across unused tiles, fewer than the %d needed for the perimeter", colorCounts[borderColor], perimeter),
		}
	}

	return FeasibilityReport{Feasible: true}
}

// requiredBorderEdges counts how many tile-sides across the whole grid must
// show the border color: every cell contributes one per grid-facing side
// (corners contribute two).
func requiredBorderEdges(rows, cols int) int {
	count := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r == 0 {
				count++
			}
			if r == rows-1 {
				count++
			}
			if c == 0 {
				count++
			}
			if c == cols-1 {
				count++
			}
		}
	}
	return count
}
