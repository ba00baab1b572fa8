package solver

import (
	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/model"
)

// CellConstraints describes what a cell requires from whatever tile ends up
// placed there: which sides border the grid edge (and must show the border
// color) and which sides face an already-placed neighbor (and must match
// that neighbor's facing edge color).
type CellConstraints struct {
	Row, Col int

	// RequiresBorder[s] is true when side s faces outside the grid.
	RequiresBorder [4]bool

	// NeighborColor[s] is the color the neighbor on side s already shows,
	// valid only when NeighborPlaced[s] is true.
	NeighborPlaced [4]bool
	NeighborColor  [4]model.Color
}

// ConstraintsForCell derives the constraints a cell imposes given the
// board's current state. It does not mutate the board.
func ConstraintsForCell(b *model.Board, row, col int) CellConstraints {
	c := CellConstraints{Row: row, Col: col}

	if row == 0 {
		c.RequiresBorder[model.North] = true
	}
	if row == b.Rows-1 {
		c.RequiresBorder[model.South] = true
	}
	if col == 0 {
		c.RequiresBorder[model.West] = true
	}
	if col == b.Cols-1 {
		c.RequiresBorder[model.East] = true
	}

	for _, side := range common.AllSides {
		nr, nc := common.NeighborCoord(row, col, side)
		if nr < 0 || nr >= b.Rows || nc < 0 || nc >= b.Cols {
			continue
		}
		np := b.GetPlacement(nr, nc)
		if np == nil {
			continue
		}
		c.NeighborPlaced[side] = true
		c.NeighborColor[side] = np.Edges[side.Opposite()]
	}

	return c
}
