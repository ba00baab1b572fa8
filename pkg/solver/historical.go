package solver

import "github.com/eternity/tessellate/pkg/common"

// HistoricalBacktracker resumes a stalled search by popping the most recent
// history entries and retrying, used when an engine restored from a
// checkpoint returns false but still has time left. It never undoes past
// the fixed-piece prefix.
type HistoricalBacktracker struct {
	engine *BacktrackingEngine
}

// NewHistoricalBacktracker binds a backtracker to an engine that has
// already been restored from a checkpoint.
func NewHistoricalBacktracker(e *BacktrackingEngine) *HistoricalBacktracker {
	return &HistoricalBacktracker{engine: e}
}

// Run retries the engine, and on failure pops one history entry at a time
// (down to the fixed-piece prefix) and retries again, until a placement
// alternative succeeds or history is exhausted.
func (hb *HistoricalBacktracker) Run() bool {
	e := hb.engine

	if e.Run() {
		return true
	}

	for !e.timedOut() && len(e.History) > e.numFixedPieces {
		last := e.History[len(e.History)-1]
		e.History = e.History[:len(e.History)-1]
		e.Board.Remove(last.Row, last.Col)
		e.Used.Unmark(last.TileID)
		e.dm.Restore(e.Board, last.Row, last.Col, e.Used)

		common.Verbose("worker %d: historical backtrack popped (%d,%d) tile=%d, retrying", e.threadID, last.Row, last.Col, last.TileID)

		if e.Run() {
			return true
		}
	}

	return false
}
