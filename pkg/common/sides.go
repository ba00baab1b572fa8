package common

import "github.com/eternity/tessellate/pkg/model"

// AllSides enumerates the four tile sides in a fixed order, used whenever
// code needs to iterate N/E/S/W deterministically.
var AllSides = []model.Side{model.North, model.East, model.South, model.West}

// DeltaForSide returns the (dRow, dCol) neighbor offset for a given side.
// North/South are vertical, so they move in the row axis; East/West move in
// the column axis.
func DeltaForSide(s model.Side) (dr, dc int) {
	switch s {
	case model.North:
		return -1, 0
	case model.South:
		return 1, 0
	case model.East:
		return 0, 1
	case model.West:
		return 0, -1
	default:
		return 0, 0
	}
}

// NeighborCoord returns the coordinate one step from (r,c) in the given
// direction.
func NeighborCoord(r, c int, s model.Side) (int, int) {
	dr, dc := DeltaForSide(s)
	return r + dr, c + dc
}
