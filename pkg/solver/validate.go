package solver

import "github.com/eternity/tessellate/pkg/model"

// PlacementValidator checks whether a candidate placement is legal at a
// given cell against the board's current neighbors and the puzzle's border
// color.
type PlacementValidator struct {
	BorderColor model.Color
}

// NewPlacementValidator builds a validator bound to a puzzle's border color.
func NewPlacementValidator(borderColor model.Color) *PlacementValidator {
	return &PlacementValidator{BorderColor: borderColor}
}

// Fits reports whether placing p at (row,col) on b would satisfy every
// border requirement and every already-placed neighbor's facing edge.
func (v *PlacementValidator) Fits(b *model.Board, row, col int, p model.Placement) bool {
	c := ConstraintsForCell(b, row, col)
	edges := p.Edges

	for _, side := range allSides {
		if c.RequiresBorder[side] && edges[side] != v.BorderColor {
			return false
		}
		if !c.RequiresBorder[side] && edges[side] == v.BorderColor {
			// An interior-facing edge showing the border color can never
			// match a future neighbor, which always uses non-border colors.
			return false
		}
		if c.NeighborPlaced[side] && edges[side] != c.NeighborColor[side] {
			return false
		}
	}
	return true
}

var allSides = [4]model.Side{model.North, model.East, model.South, model.West}
