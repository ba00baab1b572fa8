package solver

import "github.com/eternity/tessellate/pkg/model"

// SingletonOutcome classifies the result of a singleton scan.
type SingletonOutcome int

const (
	// SingletonNone means no unused tile has a unique legal cell.
	SingletonNone SingletonOutcome = iota
	// SingletonFound means an unused tile (the first one in scan order) has
	// exactly one legal cell; it must be placed there.
	SingletonFound
	// SingletonHardDeadEnd means some unused tile has zero legal
	// placements anywhere on the board; the caller must backtrack
	// immediately.
	SingletonHardDeadEnd
)

// SingletonResult carries the forced placement when Outcome is
// SingletonFound.
type SingletonResult struct {
	Outcome  SingletonOutcome
	TileID   model.TileID
	Row, Col int
	Rotation int
}

// SingletonDetector scans unused tiles for ones with a unique legal cell,
// so the engine can place forced moves before falling back to MRV.
type SingletonDetector struct {
	dm   *DomainManager
	rows int
	cols int
}

// NewSingletonDetector binds a detector to the engine's domain manager.
func NewSingletonDetector(dm *DomainManager, rows, cols int) *SingletonDetector {
	return &SingletonDetector{dm: dm, rows: rows, cols: cols}
}

// Detect scans every unused tile in the puzzle's tile set, in id order, and
// returns the first tile found with zero or exactly one legal cell. Tiles
// with more than one legal cell are skipped.
func (sd *SingletonDetector) Detect(used *model.PieceUsedSet, orderedIDs []model.TileID) SingletonResult {
	for _, id := range orderedIDs {
		if used.Has(id) {
			continue
		}

		type cellRot struct {
			row, col, rot int
		}
		var legal []cellRot

		for r := 0; r < sd.rows; r++ {
			for c := 0; c < sd.cols; c++ {
				domain := sd.dm.Get(r, c)
				if domain == nil {
					continue
				}
				rots, ok := domain[id]
				if !ok {
					continue
				}
				for _, rot := range rots {
					legal = append(legal, cellRot{r, c, rot})
				}
			}
		}

		if len(legal) == 0 {
			return SingletonResult{Outcome: SingletonHardDeadEnd, TileID: id}
		}

		firstRow, firstCol := legal[0].row, legal[0].col
		allSameCell := true
		for _, lc := range legal[1:] {
			if lc.row != firstRow || lc.col != firstCol {
				allSameCell = false
				break
			}
		}
		if allSameCell {
			return SingletonResult{
				Outcome:  SingletonFound,
				TileID:   id,
				Row:      firstRow,
				Col:      firstCol,
				Rotation: legal[0].rot,
			}
		}
	}

	return SingletonResult{Outcome: SingletonNone}
}
