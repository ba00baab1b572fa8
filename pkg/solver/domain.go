package solver

import (
	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/model"
)

// CellDomain is the set of legal placements for one empty cell: for each
// candidate tile, the list of legal rotations. An empty map means the cell
// is a dead end.
type CellDomain map[model.TileID][]int

// Size is the sum of rotation counts across every candidate tile.
func (d CellDomain) Size() int {
	n := 0
	for _, rots := range d {
		n += len(rots)
	}
	return n
}

// UniquePieceCount is the number of distinct candidate tiles, irrespective
// of how many rotations each has.
func (d CellDomain) UniquePieceCount() int {
	return len(d)
}

// IsSingleton reports whether exactly one tile id remains viable, though it
// may still have multiple legal rotations.
func (d CellDomain) IsSingleton() bool {
	return len(d) == 1
}

// Clone returns an independent deep copy.
func (d CellDomain) Clone() CellDomain {
	out := make(CellDomain, len(d))
	for id, rots := range d {
		cp := make([]int, len(rots))
		copy(cp, rots)
		out[id] = cp
	}
	return out
}

// DomainManager owns the per-cell domains for one engine's board. Domains
// are engine-private: they're never shared across workers.
type DomainManager struct {
	rows, cols  int
	validator   *PlacementValidator
	tiles       map[model.TileID]model.Tile
	domains     [][]CellDomain
}

// NewDomainManager allocates a domain grid matching the board's dimensions.
func NewDomainManager(rows, cols int, tiles map[model.TileID]model.Tile, validator *PlacementValidator) *DomainManager {
	grid := make([][]CellDomain, rows)
	for r := range grid {
		grid[r] = make([]CellDomain, cols)
	}
	return &DomainManager{rows: rows, cols: cols, validator: validator, tiles: tiles, domains: grid}
}

// Initialize computes every empty cell's domain from scratch by enumerating
// unused tiles and their distinct rotations, retaining those that Fit.
func (dm *DomainManager) Initialize(b *model.Board, used *model.PieceUsedSet) {
	for r := 0; r < dm.rows; r++ {
		for c := 0; c < dm.cols; c++ {
			if !b.IsEmpty(r, c) {
				dm.domains[r][c] = nil
				continue
			}
			dm.domains[r][c] = dm.computeDomain(b, r, c, used)
		}
	}
}

// computeDomain builds a fresh domain for one cell without consulting any
// cache.
func (dm *DomainManager) computeDomain(b *model.Board, r, c int, used *model.PieceUsedSet) CellDomain {
	domain := make(CellDomain)
	for id, tile := range dm.tiles {
		if used.Has(id) {
			continue
		}
		var legalRots []int
		for _, rot := range tile.DistinctRotations() {
			p := model.NewPlacement(tile, rot)
			if dm.validator.Fits(b, r, c, p) {
				legalRots = append(legalRots, rot)
			}
		}
		if len(legalRots) > 0 {
			domain[id] = legalRots
		}
	}
	return domain
}

// Get returns the domain at (r,c). Nil for occupied cells.
func (dm *DomainManager) Get(r, c int) CellDomain {
	return dm.domains[r][c]
}

// Set installs a domain at (r,c), replacing whatever was there.
func (dm *DomainManager) Set(r, c int, d CellDomain) {
	dm.domains[r][c] = d
}

// Snapshot returns a deep copy of the domain at (r,c), suitable for
// restoring later via Set.
func (dm *DomainManager) Snapshot(r, c int) CellDomain {
	return dm.domains[r][c].Clone()
}

// Restore recomputes the domains of (r,c) and its up-to-4 neighbors after an
// undo. This is the DomainManager half of the engine's backtrack step; the
// propagator's own cascade runs separately on the forward path.
func (dm *DomainManager) Restore(b *model.Board, r, c int, used *model.PieceUsedSet) {
	if b.IsEmpty(r, c) {
		dm.domains[r][c] = dm.computeDomain(b, r, c, used)
	} else {
		dm.domains[r][c] = nil
	}
	for _, side := range common.AllSides {
		nr, nc := common.NeighborCoord(r, c, side)
		if nr < 0 || nr >= dm.rows || nc < 0 || nc >= dm.cols {
			continue
		}
		if b.IsEmpty(nr, nc) {
			dm.domains[nr][nc] = dm.computeDomain(b, nr, nc, used)
		}
	}
}

// EmptyNeighbors returns the coordinates of empty cells adjacent to (r,c).
func (dm *DomainManager) EmptyNeighbors(b *model.Board, r, c int) [][2]int {
	var out [][2]int
	for _, side := range common.AllSides {
		nr, nc := common.NeighborCoord(r, c, side)
		if nr < 0 || nr >= dm.rows || nc < 0 || nc >= dm.cols {
			continue
		}
		if b.IsEmpty(nr, nc) {
			out = append(out, [2]int{nr, nc})
		}
	}
	return out
}
