package solver

import "github.com/eternity/tessellate/pkg/model"

// PropagationResult is the outcome of a propagation cascade.
type PropagationResult int

const (
	// PropagateOK means every visited domain remains non-empty.
	PropagateOK PropagationResult = iota
	// PropagateDeadEnd means some empty cell's domain was filtered to
	// nothing; the caller must undo the triggering placement.
	PropagateDeadEnd
)

// ConstraintPropagator runs the AC-3-style cascade: after a placement, every
// empty cell's domain is filtered against its occupied neighbors, and the
// placed tile is removed from every other cell's candidates.
type ConstraintPropagator struct {
	dm *DomainManager
}

// NewConstraintPropagator binds a propagator to the engine's domain
// manager.
func NewConstraintPropagator(dm *DomainManager) *ConstraintPropagator {
	return &ConstraintPropagator{dm: dm}
}

// Propagate filters domains after placing placedID at (pr,pc). It enqueues
// every empty cell, and for each popped cell removes rotations that no
// longer fit its occupied neighbors and removes the placed tile entirely
// (it's no longer available to any cell). Domain shrinkage re-enqueues the
// shrunk cell's empty neighbors. Returns PropagateDeadEnd the moment any
// domain empties.
func (cp *ConstraintPropagator) Propagate(b *model.Board, stats *Statistics, rows, cols int, placedID model.TileID) PropagationResult {
	queue := make([][2]int, 0, rows*cols)
	queued := make(map[[2]int]bool, rows*cols)

	enqueue := func(r, c int) {
		key := [2]int{r, c}
		if queued[key] {
			return
		}
		queued[key] = true
		queue = append(queue, key)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if b.IsEmpty(r, c) {
				enqueue(r, c)
			}
		}
	}

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		queued[cell] = false
		r, c := cell[0], cell[1]

		domain := cp.dm.Get(r, c)
		if domain == nil {
			continue
		}

		filtered, shrank := cp.filterAgainstNeighbors(b, r, c, domain, placedID)
		cp.dm.Set(r, c, filtered)

		if len(filtered) == 0 {
			if stats != nil {
				stats.RecordDeadEnd()
			}
			return PropagateDeadEnd
		}

		if shrank {
			for _, nb := range cp.dm.EmptyNeighbors(b, r, c) {
				enqueue(nb[0], nb[1])
			}
		}
	}

	return PropagateOK
}

// filterAgainstNeighbors rebuilds a cell's domain keeping only (tile,
// rotation) pairs whose edges still satisfy every occupied neighbor and
// border requirement.
func (cp *ConstraintPropagator) filterAgainstNeighbors(b *model.Board, r, c int, domain CellDomain, placedID model.TileID) (CellDomain, bool) {
	constraints := ConstraintsForCell(b, r, c)
	borderColor := cp.dm.validator.BorderColor

	out := make(CellDomain, len(domain))
	originalSize := domain.Size()

	for id, rots := range domain {
		if id == placedID {
			continue
		}
		tile := cp.dm.tiles[id]
		var kept []int
		for _, rot := range rots {
			edges := tile.EdgesRotated(rot)
			if edgesSatisfy(edges, constraints, borderColor) {
				kept = append(kept, rot)
			}
		}
		if len(kept) > 0 {
			out[id] = kept
		}
	}

	return out, out.Size() < originalSize
}

func edgesSatisfy(edges [4]model.Color, c CellConstraints, borderColor model.Color) bool {
	for _, side := range allSides {
		if c.RequiresBorder[side] && edges[side] != borderColor {
			return false
		}
		if !c.RequiresBorder[side] && edges[side] == borderColor {
			return false
		}
		if c.NeighborPlaced[side] && edges[side] != c.NeighborColor[side] {
			return false
		}
	}
	return true
}
