package solver

import (
	"sort"

	"github.com/eternity/tessellate/pkg/model"
)

// Candidate is one (tile, rotation) option for a chosen cell.
type Candidate struct {
	TileID   model.TileID
	Rotation int
}

// ValueOrderer orders a cell's candidate placements by least-constraining
// value: the option that prunes the fewest options from empty neighbors'
// domains is tried first. A per-tile difficulty score (rarity of its edge
// colors) breaks ties; the puzzle's configured tile-enumeration direction
// breaks remaining ties.
type ValueOrderer struct {
	dm        *DomainManager
	difficult map[model.TileID]int
	sortOrder model.SortOrder
}

// NewValueOrderer precomputes a difficulty score for every tile: the sum,
// across its canonical edges, of how many tiles can show that edge color on
// that side in the EdgeCompatibilityIndex. A lower score means rarer colors;
// Order tries lower scores first.
func NewValueOrderer(dm *DomainManager, tiles map[model.TileID]model.Tile, idx *EdgeCompatibilityIndex, sortOrder model.SortOrder) *ValueOrderer {
	difficulty := make(map[model.TileID]int, len(tiles))
	for id, tile := range tiles {
		score := 0
		edges := tile.Edges()
		for s := 0; s < 4; s++ {
			score += len(idx.TilesShowingColor(model.Side(s), edges[s]))
		}
		difficulty[id] = score
	}
	return &ValueOrderer{dm: dm, difficult: difficulty, sortOrder: sortOrder}
}

// Order returns the domain's (tile,rotation) pairs at (r,c) sorted from
// least-constraining to most-constraining.
func (vo *ValueOrderer) Order(b *model.Board, row, col int, domain CellDomain) []Candidate {
	cands := make([]Candidate, 0, domain.Size())
	for id, rots := range domain {
		for _, rot := range rots {
			cands = append(cands, Candidate{TileID: id, Rotation: rot})
		}
	}

	impact := make(map[Candidate]int, len(cands))
	for _, cand := range cands {
		impact[cand] = vo.constraintImpact(b, row, col, cand)
	}

	ascending := vo.sortOrder != model.Descending

	sort.SliceStable(cands, func(i, j int) bool {
		ci, cj := cands[i], cands[j]
		if impact[ci] != impact[cj] {
			return impact[ci] < impact[cj]
		}
		if vo.difficult[ci.TileID] != vo.difficult[cj.TileID] {
			return vo.difficult[ci.TileID] < vo.difficult[cj.TileID]
		}
		if ascending {
			return ci.TileID < cj.TileID
		}
		return ci.TileID > cj.TileID
	})

	return cands
}

// constraintImpact estimates how much placing cand at (row,col) would
// shrink empty neighbors' domains: the count, across empty neighbors, of
// candidate tiles in their domain that could NOT show the required facing
// color.
func (vo *ValueOrderer) constraintImpact(b *model.Board, row, col int, cand Candidate) int {
	tile := vo.dm.tiles[cand.TileID]
	edges := tile.EdgesRotated(cand.Rotation)

	impact := 0
	for _, nb := range vo.dm.EmptyNeighbors(b, row, col) {
		nr, nc := nb[0], nb[1]
		side := sideFacing(row, col, nr, nc)
		required := edges[side]
		domain := vo.dm.Get(nr, nc)
		for id, rots := range domain {
			if id == cand.TileID {
				continue
			}
			ok := false
			for _, rot := range rots {
				if vo.dm.tiles[id].EdgesRotated(rot)[side.Opposite()] == required {
					ok = true
					break
				}
			}
			if !ok {
				impact++
			}
		}
	}
	return impact
}

func sideFacing(row, col, nr, nc int) model.Side {
	switch {
	case nr == row-1:
		return model.North
	case nr == row+1:
		return model.South
	case nc == col+1:
		return model.East
	default:
		return model.West
	}
}
