package solver

import (
	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/model"
)

// CellSelector picks the next empty cell to branch on: most-constrained
// first, with gap-avoidance and border-continuity tie-breaks applied before
// the MRV count itself.
type CellSelector struct {
	dm                *DomainManager
	rows, cols        int
	prioritizeBorders bool
}

// NewCellSelector binds a selector to the engine's domain manager.
func NewCellSelector(dm *DomainManager, rows, cols int, prioritizeBorders bool) *CellSelector {
	return &CellSelector{dm: dm, rows: rows, cols: cols, prioritizeBorders: prioritizeBorders}
}

type candidate struct {
	row, col          int
	placedNeighbors   int
	hasBorderNeighbor int
	isBorder          int
	mrv               int
}

// Select returns the chosen cell, or ok=false if the board is full.
func (cs *CellSelector) Select(b *model.Board) (row, col int, ok bool) {
	var cands []candidate
	borderRemaining := cs.anyBorderCellEmpty(b)

	for r := 0; r < cs.rows; r++ {
		for c := 0; c < cs.cols; c++ {
			if !b.IsEmpty(r, c) {
				continue
			}
			if cs.wouldTrapGap(b, r, c) {
				continue
			}
			cands = append(cands, cs.score(b, r, c))
		}
	}

	if len(cands) == 0 {
		return 0, 0, false
	}

	filledFraction := cs.filledFraction(b)
	best := cands[0]
	for _, cand := range cands[1:] {
		if cs.less(cand, best, filledFraction, borderRemaining) {
			best = cand
		}
	}
	return best.row, best.col, true
}

// score computes the ranking fields for one empty cell.
func (cs *CellSelector) score(b *model.Board, r, c int) candidate {
	cand := candidate{row: r, col: c}
	onBorder := r == 0 || r == cs.rows-1 || c == 0 || c == cs.cols-1
	if onBorder {
		cand.isBorder = 1
	}

	for _, side := range common.AllSides {
		nr, nc := common.NeighborCoord(r, c, side)
		if nr < 0 || nr >= cs.rows || nc < 0 || nc >= cs.cols {
			continue
		}
		if !b.IsEmpty(nr, nc) {
			cand.placedNeighbors++
			onOuterBorder := nr == 0 || nr == cs.rows-1 || nc == 0 || nc == cs.cols-1
			if onBorder && onOuterBorder {
				cand.hasBorderNeighbor = 1
			}
		}
	}

	domain := cs.dm.Get(r, c)
	cand.mrv = domain.UniquePieceCount()
	return cand
}

// less applies the cell-selection priority order: gap-avoidance already
// filtered candidates out before scoring, so remaining rules are (in order)
// prioritizeBorders, border-neighbor continuity, zero-neighbor penalty at
// >=50% fill, neighbor density, then MRV.
func (cs *CellSelector) less(a, b candidate, filledFraction float64, borderRemaining bool) bool {
	if cs.prioritizeBorders && borderRemaining {
		if a.isBorder != b.isBorder {
			return a.isBorder > b.isBorder
		}
	}

	if a.hasBorderNeighbor != b.hasBorderNeighbor {
		return a.hasBorderNeighbor > b.hasBorderNeighbor
	}

	if filledFraction >= 0.5 {
		aZero := a.placedNeighbors == 0
		bZero := b.placedNeighbors == 0
		if aZero != bZero {
			return !aZero // penalize the zero-neighbor candidate
		}
	}

	if a.placedNeighbors != b.placedNeighbors {
		return a.placedNeighbors > b.placedNeighbors
	}

	return a.mrv < b.mrv
}

// wouldTrapGap reports whether selecting (r,c) would strand an empty cell
// between two filled cells along the same border edge.
func (cs *CellSelector) wouldTrapGap(b *model.Board, r, c int) bool {
	if r == 0 || r == cs.rows-1 {
		if c >= 2 && !b.IsEmpty(r, c-2) && b.IsEmpty(r, c-1) {
			return true
		}
		if c <= cs.cols-3 && !b.IsEmpty(r, c+2) && b.IsEmpty(r, c+1) {
			return true
		}
	}
	if c == 0 || c == cs.cols-1 {
		if r >= 2 && !b.IsEmpty(r-2, c) && b.IsEmpty(r-1, c) {
			return true
		}
		if r <= cs.rows-3 && !b.IsEmpty(r+2, c) && b.IsEmpty(r+1, c) {
			return true
		}
	}
	return false
}

func (cs *CellSelector) anyBorderCellEmpty(b *model.Board) bool {
	for r := 0; r < cs.rows; r++ {
		for c := 0; c < cs.cols; c++ {
			if r == 0 || r == cs.rows-1 || c == 0 || c == cs.cols-1 {
				if b.IsEmpty(r, c) {
					return true
				}
			}
		}
	}
	return false
}

func (cs *CellSelector) filledFraction(b *model.Board) float64 {
	total := cs.rows * cs.cols
	if total == 0 {
		return 0
	}
	return float64(b.FilledCount()) / float64(total)
}
