package solver

import "github.com/eternity/tessellate/pkg/model"

// SymmetryBreaker eliminates the board's 4-fold rotational symmetry: the
// smallest-id tile that's a valid corner piece is constrained to the
// canonical top-left corner, so the other three rotational images of every
// solution are never explored.
type SymmetryBreaker struct {
	cornerTileID model.TileID
	hasCorner    bool
	rows, cols   int
}

// NewSymmetryBreaker finds the smallest-id tile with a rotation that fits
// the top-left corner (border on N and W) and pins it there.
func NewSymmetryBreaker(tiles map[model.TileID]model.Tile, borderColor model.Color, rows, cols int) *SymmetryBreaker {
	sb := &SymmetryBreaker{rows: rows, cols: cols}

	var smallest model.TileID
	found := false
	for id, tile := range tiles {
		if !found || id < smallest {
			for _, rot := range tile.DistinctRotations() {
				edges := tile.EdgesRotated(rot)
				if edges[model.North] == borderColor && edges[model.West] == borderColor {
					smallest = id
					found = true
					break
				}
			}
		}
	}

	if found {
		sb.cornerTileID = smallest
		sb.hasCorner = true
	}
	return sb
}

// Allowed reports whether placing tileID at (row,col) respects the
// symmetry-breaking constraint: the designated corner tile may only ever go
// in the top-left cell, and the top-left cell may only ever hold that tile.
func (sb *SymmetryBreaker) Allowed(row, col int, tileID model.TileID) bool {
	if !sb.hasCorner {
		return true
	}
	if tileID == sb.cornerTileID {
		return row == 0 && col == 0
	}
	if row == 0 && col == 0 {
		return tileID == sb.cornerTileID
	}
	return true
}
