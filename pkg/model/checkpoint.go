package model

import "fmt"

// Checkpoint is a serialized stable search state: every tile in
// PlacementsByCell currently fits its neighbors, so the state can be
// reloaded and searched onward. See pkg/solver/checkpoint.go for the
// text-format reader/writer; this type just carries the validated data.
type Checkpoint struct {
	PuzzleName           string
	Rows, Cols            int
	PlacementsByCell      map[[2]int]PlacementInfo
	PlacementOrder        []PlacementInfo
	UnusedTileIDs         []TileID
	NumFixedPieces        int
	InitialFixedPieces    []PlacementInfo
	ProgressPercent        float64
	ElapsedMsThisSession  int64
	CumulativeComputeMs   int64
}

// Validate checks that the checkpoint's recorded placements are internally
// consistent and partition the puzzle's tiles exactly once. A non-nil error
// means the checkpoint is corrupt and must be discarded (caller starts fresh).
func (c *Checkpoint) Validate(totalTiles int) error {
	if len(c.PlacementOrder) != len(c.PlacementsByCell) {
		return fmt.Errorf("checkpoint: placementOrder size %d != placementsByCell size %d",
			len(c.PlacementOrder), len(c.PlacementsByCell))
	}

	seenCells := make(map[[2]int]bool, len(c.PlacementOrder))
	seenTiles := make(map[TileID]bool, len(c.PlacementOrder))
	for _, p := range c.PlacementOrder {
		key := [2]int{p.Row, p.Col}
		entry, ok := c.PlacementsByCell[key]
		if !ok {
			return fmt.Errorf("checkpoint: placementOrder entry (%d,%d) missing from placementsByCell", p.Row, p.Col)
		}
		if entry != p {
			return fmt.Errorf("checkpoint: placementOrder entry (%d,%d) disagrees with placementsByCell", p.Row, p.Col)
		}
		if seenCells[key] {
			return fmt.Errorf("checkpoint: cell (%d,%d) appears more than once in placementOrder", p.Row, p.Col)
		}
		seenCells[key] = true
		if seenTiles[p.TileID] {
			return fmt.Errorf("checkpoint: tile %d placed more than once", p.TileID)
		}
		seenTiles[p.TileID] = true
	}

	if c.NumFixedPieces > len(c.PlacementOrder) {
		return fmt.Errorf("checkpoint: numFixedPieces %d exceeds placement count %d", c.NumFixedPieces, len(c.PlacementOrder))
	}
	if len(c.InitialFixedPieces) != c.NumFixedPieces {
		return fmt.Errorf("checkpoint: initialFixedPieces size %d != numFixedPieces %d", len(c.InitialFixedPieces), c.NumFixedPieces)
	}
	for i, fp := range c.InitialFixedPieces {
		if c.PlacementOrder[i] != fp {
			return fmt.Errorf("checkpoint: placementOrder[%d] does not match initialFixedPieces[%d]", i, i)
		}
	}

	used := make(map[TileID]bool, len(c.PlacementOrder)+len(c.UnusedTileIDs))
	for _, p := range c.PlacementOrder {
		if used[p.TileID] {
			return fmt.Errorf("checkpoint: tile %d duplicated across placements", p.TileID)
		}
		used[p.TileID] = true
	}
	for _, id := range c.UnusedTileIDs {
		if used[id] {
			return fmt.Errorf("checkpoint: tile %d is both placed and unused", id)
		}
		used[id] = true
	}
	if len(used) != totalTiles {
		return fmt.Errorf("checkpoint: placed+unused tiles (%d) do not partition the puzzle's %d tiles", len(used), totalTiles)
	}

	return nil
}
