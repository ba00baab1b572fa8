package solver

import (
	"time"

	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/model"
)

// SolverContext bundles the immutable configuration and per-engine
// collaborators that every search strategy function needs, so strategies
// stay free functions / small structs instead of an object graph with
// cyclic engine<->manager references.
type SolverContext struct {
	Puzzle    *model.PuzzleDefinition
	Validator *PlacementValidator
	Index     *EdgeCompatibilityIndex
	Symmetry  *SymmetryBreaker
	Config    RunConfig
}

// BacktrackingEngine runs one worker's recursive search over its own
// board, domains, and history. Nothing here is shared across workers
// except through SharedSearchState.
type BacktrackingEngine struct {
	ctx *SolverContext

	Board   *model.Board
	Used    *model.PieceUsedSet
	History []model.PlacementInfo

	dm        *DomainManager
	propagate *ConstraintPropagator
	singleton *SingletonDetector
	selector  *CellSelector
	orderer   *ValueOrderer
	stats     *Statistics

	shared *SharedSearchState

	startTime       time.Time
	deadline        time.Duration
	numFixedPieces  int
	orderedTileIDs  []model.TileID
	lastThreadSave  time.Time
	lastCheckpoint  time.Time
	lastStatsLog    time.Time
	lastRecordDepth int
	threadID        int
}

// NewBacktrackingEngine builds an engine from a freshly-initialized board
// state. fixedPieces have already been applied to board/used/history by the
// caller (CheckpointStore on resume, or the puzzle loader on a fresh run).
func NewBacktrackingEngine(ctx *SolverContext, board *model.Board, used *model.PieceUsedSet, history []model.PlacementInfo, numFixedPieces int, shared *SharedSearchState, threadID int) *BacktrackingEngine {
	dm := NewDomainManager(board.Rows, board.Cols, ctx.Puzzle.Tiles, ctx.Validator)
	dm.Initialize(board, used)

	strategy := ctx.Config.Strategy
	if strategy == "" {
		strategy = strategyForSortOrder(ctx.Puzzle.SortOrder)
	}
	orderer, err := GetOrderer(strategy, dm, ctx.Puzzle.Tiles, ctx.Index)
	if err != nil {
		orderer = NewValueOrderer(dm, ctx.Puzzle.Tiles, ctx.Index, ctx.Puzzle.SortOrder)
	}

	ordered := make([]model.TileID, 0, len(ctx.Puzzle.Tiles))
	for id := range ctx.Puzzle.Tiles {
		ordered = append(ordered, id)
	}
	sortTileIDs(ordered, ctx.Puzzle.SortOrder)

	now := time.Now()
	return &BacktrackingEngine{
		ctx:             ctx,
		Board:           board,
		Used:            used,
		History:         history,
		dm:              dm,
		propagate:       NewConstraintPropagator(dm),
		singleton:       NewSingletonDetector(dm, board.Rows, board.Cols),
		selector:        NewCellSelector(dm, board.Rows, board.Cols, ctx.Puzzle.PrioritizeBorders),
		orderer:         orderer,
		stats:           &Statistics{},
		shared:          shared,
		startTime:       now,
		deadline:        ctx.Config.MaxExecutionTime,
		numFixedPieces:  numFixedPieces,
		orderedTileIDs:  ordered,
		lastThreadSave:  now,
		lastCheckpoint:  now,
		lastStatsLog:    now,
		lastRecordDepth: len(history) - numFixedPieces,
		threadID:        threadID,
	}
}

// strategyForSortOrder picks the registry strategy matching a puzzle's own
// declared tile-id tiebreak direction, used when the run config leaves
// Strategy unset.
func strategyForSortOrder(order model.SortOrder) string {
	if order == model.Descending {
		return StrategyMRVDescending
	}
	return StrategyMRVLCV
}

func sortTileIDs(ids []model.TileID, order model.SortOrder) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0; j-- {
			less := ids[j] < ids[j-1]
			if order == model.Descending {
				less = ids[j] > ids[j-1]
			}
			if !less {
				break
			}
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}

// Stats exposes the engine's counters to callers (CLI summaries, the run
// ledger).
func (e *BacktrackingEngine) Stats() *Statistics { return e.stats }

// Depth returns the current search depth: placements made beyond the
// fixed-piece prefix.
func (e *BacktrackingEngine) Depth() int {
	return e.Used.Cardinality() - e.numFixedPieces
}

// Run drives the recursive search from the engine's current state. It
// returns true the moment a full solution is found (and sharedState is
// updated), false on exhaustion, hard dead-end, or timeout.
func (e *BacktrackingEngine) Run() bool {
	return e.search()
}

func (e *BacktrackingEngine) search() bool {
	e.stats.RecordRecursiveCall()

	if e.shared != nil && e.shared.SolutionFound() {
		return false
	}

	depth := e.Depth()
	if depth > e.lastRecordDepth {
		e.lastRecordDepth = depth
		if e.shared != nil {
			matched, _ := e.Board.CalculateScore()
			e.shared.ReportRecord(depth, matched, e.threadID, e.Board, e.Used)
		}
	}

	e.runPeriodicMaintenance()

	row, col, ok := e.selector.Select(e.Board)
	if !ok {
		// No empty cell left: solved.
		if e.shared != nil {
			matched, _ := e.Board.CalculateScore()
			e.shared.SetSolutionFound(e.threadID, matched, e.Board, e.Used)
		}
		return true
	}

	if !e.ctx.Config.DisableSingletons {
		result := e.singleton.Detect(e.Used, e.orderedTileIDs)
		switch result.Outcome {
		case SingletonHardDeadEnd:
			return false
		case SingletonFound:
			e.stats.RecordSingletonFound()
			if e.tryPlace(result.Row, result.Col, result.TileID, result.Rotation, true) {
				return true
			}
			if e.timedOut() {
				return false
			}
			// Singleton placement failed to lead anywhere; fall through to
			// ordinary MRV branching on the selected cell instead of
			// forcing the (now proven bad) singleton again.
		}
	}

	domain := e.dm.Get(row, col)
	for _, cand := range e.orderer.Order(e.Board, row, col, domain) {
		if e.shared != nil && e.shared.SolutionFound() {
			return false
		}
		if e.tryPlace(row, col, cand.TileID, cand.Rotation, false) {
			return true
		}
		if e.timedOut() {
			return false
		}
	}

	return false
}

// tryPlace validates, places, propagates, recurses, and undoes on failure -
// the shared shape of both the singleton-forced branch and the ordinary
// MRV branch.
func (e *BacktrackingEngine) tryPlace(row, col int, tileID model.TileID, rotation int, isSingleton bool) bool {
	tile := e.ctx.Puzzle.Tiles[tileID]
	placement := model.NewPlacement(tile, rotation)

	e.stats.RecordFitCheck()
	if !e.ctx.Validator.Fits(e.Board, row, col, placement) {
		return false
	}
	if !e.ctx.Symmetry.Allowed(row, col, tileID) {
		return false
	}

	e.Board.Place(row, col, placement)
	e.Used.Mark(tileID)
	e.History = append(e.History, model.PlacementInfo{Row: row, Col: col, TileID: tileID, Rotation: rotation})
	e.stats.RecordPlacement()
	if isSingleton {
		e.stats.RecordSingletonPlaced()
	}

	result := e.propagate.Propagate(e.Board, e.stats, e.Board.Rows, e.Board.Cols, tileID)
	if result == PropagateDeadEnd {
		e.undo(row, col)
		e.stats.RecordBacktrack()
		return false
	}

	if e.timedOut() {
		// Soft timeout: leave this successful placement in place so the
		// checkpoint captures a valid, stable configuration. Do not
		// descend further.
		return false
	}

	if e.search() {
		return true
	}

	e.undo(row, col)
	e.stats.RecordBacktrack()
	return false
}

// undo reverses tryPlace's mutations: clears the cell, frees the tile,
// pops history, and recomputes every cell's domain from the board via
// DomainManager.Initialize.
func (e *BacktrackingEngine) undo(row, col int) {
	placement := e.Board.GetPlacement(row, col)
	if placement == nil {
		return
	}
	tileID := placement.TileID
	e.Board.Remove(row, col)
	e.Used.Unmark(tileID)
	if len(e.History) > 0 {
		e.History = e.History[:len(e.History)-1]
	}
	e.dm.Initialize(e.Board, e.Used)
}

// timedOut reports whether the engine has exceeded its configured deadline,
// or, when a deadline is set, whether a solution has already been found.
// Checked only between placements (after a placement's propagation, or
// after a failed candidate has been undone), never mid-propagation or
// mid-backtrack, so the board is always internally consistent whenever this
// returns true.
func (e *BacktrackingEngine) timedOut() bool {
	if e.deadline <= 0 {
		return false
	}
	if e.shared != nil && e.shared.SolutionFound() {
		return true
	}
	return time.Since(e.startTime) > e.deadline
}

// runPeriodicMaintenance performs the engine's wall-clock-triggered
// housekeeping: thread-state saves, auto-checkpoints, and stats logging.
// None of this is per-recursion-node; it's cheap time-comparisons gating
// rare, heavier work.
func (e *BacktrackingEngine) runPeriodicMaintenance() {
	now := time.Now()
	cfg := e.ctx.Config

	if cfg.ThreadSaveEach > 0 && now.Sub(e.lastThreadSave) >= cfg.ThreadSaveEach {
		e.lastThreadSave = now
		common.Verbose("worker %d: thread-state save tick at depth %d", e.threadID, e.Depth())
	}
	if cfg.AutoCheckpointEach > 0 && now.Sub(e.lastCheckpoint) >= cfg.AutoCheckpointEach {
		e.lastCheckpoint = now
		if e.shared != nil {
			e.shared.RequestCheckpoint(e.threadID)
		}
	}
	if cfg.StatsLogEach > 0 && now.Sub(e.lastStatsLog) >= cfg.StatsLogEach {
		e.lastStatsLog = now
		common.Verbose("worker %d: depth=%d placements=%d backtracks=%d deadEnds=%d",
			e.threadID, e.Depth(), e.stats.Placements, e.stats.Backtracks, e.stats.DeadEndsDetected)
	}
}
