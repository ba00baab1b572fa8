package model

// SortOrder controls the enumeration order of tile IDs during value
// ordering, used for search diversification across workers.
type SortOrder string

const (
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

// PuzzleDefinition is produced by an external parser (pkg/tilefile) and
// consumed by the solver. The core never parses puzzle files itself.
type PuzzleDefinition struct {
	Name                  string
	Rows, Cols            int
	Tiles                 map[TileID]Tile
	FixedPieces           []PlacementInfo
	BorderColor           Color
	SortOrder             SortOrder
	PrioritizeBorders     bool
	Verbose               bool
	MinDepthToShowRecords int
}

// TileCount returns the number of tiles in the definition.
func (p *PuzzleDefinition) TileCount() int {
	return len(p.Tiles)
}

// MaxTileID returns the largest TileID present, used to size bitsets.
func (p *PuzzleDefinition) MaxTileID() TileID {
	var max TileID
	for id := range p.Tiles {
		if id > max {
			max = id
		}
	}
	return max
}
