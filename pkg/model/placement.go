package model

// Placement is a tile together with a rotation, plus its cached rotated
// edges so board consumers never have to re-derive them.
type Placement struct {
	TileID   TileID
	Rotation int
	Edges    [4]Color
}

// NewPlacement builds a Placement from a tile and rotation, caching the
// rotated edges.
func NewPlacement(t Tile, rotation int) Placement {
	return Placement{
		TileID:   t.ID,
		Rotation: normalizeRotation(rotation),
		Edges:    t.EdgesRotated(rotation),
	}
}

// PlacementInfo is a (row, col, tileId, rotation) record used in placement
// history and checkpoints.
type PlacementInfo struct {
	Row, Col int
	TileID   TileID
	Rotation int
}
