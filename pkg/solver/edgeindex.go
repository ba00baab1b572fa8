package solver

import "github.com/eternity/tessellate/pkg/model"

// EdgeCompatibilityIndex precomputes, for each side and edge color, which
// tiles can expose that color on that side under some rotation. Built once
// per puzzle and read by the heuristics that would otherwise rescan every
// tile's rotations on every query.
type EdgeCompatibilityIndex struct {
	// bySideColor[side][color] lists tile IDs that can show color on side
	// under at least one rotation.
	bySideColor [4]map[model.Color][]model.TileID
}

// BuildEdgeCompatibilityIndex scans every tile's distinct rotations once.
func BuildEdgeCompatibilityIndex(tiles map[model.TileID]model.Tile) *EdgeCompatibilityIndex {
	idx := &EdgeCompatibilityIndex{}
	for s := 0; s < 4; s++ {
		idx.bySideColor[s] = make(map[model.Color][]model.TileID)
	}

	for id, tile := range tiles {
		for _, r := range tile.DistinctRotations() {
			edges := tile.EdgesRotated(r)
			for s := 0; s < 4; s++ {
				color := edges[s]
				idx.bySideColor[s][color] = append(idx.bySideColor[s][color], id)
			}
		}
	}
	return idx
}

// TilesShowingColor returns the tile IDs that can expose color on side s.
func (idx *EdgeCompatibilityIndex) TilesShowingColor(s model.Side, color model.Color) []model.TileID {
	return idx.bySideColor[int(s)][color]
}
