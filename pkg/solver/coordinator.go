package solver

import (
	"sync"
	"time"

	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/model"
)

// cornerSeed describes one worker's diversification pre-placement: a
// distinct corner tile placed with the rotation that aligns its two border
// edges before the worker's own search begins.
type cornerSeed struct {
	row, col int
}

// WorkerResult is one worker's outcome, collected by the coordinator after
// all workers finish or one signals a solution.
type WorkerResult struct {
	ThreadID int
	Solved   bool
	Engine   *BacktrackingEngine
}

// ParallelCoordinator runs a fixed-size pool of engines against independent
// board clones, diversifying corner placements across the first four
// workers and racing them against a shared solution flag.
type ParallelCoordinator struct {
	ctx    *SolverContext
	shared *SharedSearchState
}

// NewParallelCoordinator builds a coordinator bound to a solver context and
// a freshly constructed shared state.
func NewParallelCoordinator(ctx *SolverContext) *ParallelCoordinator {
	return &ParallelCoordinator{ctx: ctx, shared: NewSharedSearchState()}
}

// Shared exposes the coordinator's shared state, e.g. for a progress
// monitor to poll.
func (pc *ParallelCoordinator) Shared() *SharedSearchState { return pc.shared }

// Run spawns Config.Threads workers, each on its own cloned board, and
// blocks until one solves or all exhaust/timeout: a buffered semaphore plus
// a WaitGroup, with results streamed back on a channel.
func (pc *ParallelCoordinator) Run(board *model.Board, used *model.PieceUsedSet, history []model.PlacementInfo, numFixedPieces int) []WorkerResult {
	threads := pc.ctx.Config.Threads
	if threads <= 0 {
		threads = 1
	}

	sem := make(chan struct{}, threads)
	var wg sync.WaitGroup
	results := make(chan WorkerResult, threads)

	stopMonitor := make(chan struct{})
	go pc.progressMonitor(stopMonitor)

	for i := 0; i < threads; i++ {
		threadID := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			workerBoard := board.Clone()
			workerUsed := used.Clone()
			workerHistory := append([]model.PlacementInfo(nil), history...)

			if pc.ctx.Config.Diversify && threadID < 4 {
				pc.applyCornerSeed(workerBoard, workerUsed, &workerHistory, threadID)
			}

			engine := NewBacktrackingEngine(pc.ctx, workerBoard, workerUsed, workerHistory, numFixedPieces, pc.shared, threadID)
			solved := engine.Run()
			results <- WorkerResult{ThreadID: threadID, Solved: solved, Engine: engine}
		}()
	}

	wg.Wait()
	close(results)
	close(stopMonitor)

	out := make([]WorkerResult, 0, threads)
	for r := range results {
		out = append(out, r)
	}
	return out
}

// applyCornerSeed pre-places a distinct corner tile for workers 0-3 (top-
// left, top-right, bottom-left, bottom-right), using whichever unused tile
// has a rotation aligning its two border edges to that corner. A worker
// that finds no such tile (all corner-capable tiles already fixed) runs
// undiversified.
func (pc *ParallelCoordinator) applyCornerSeed(board *model.Board, used *model.PieceUsedSet, history *[]model.PlacementInfo, threadID int) {
	seeds := []cornerSeed{
		{0, 0},
		{0, board.Cols - 1},
		{board.Rows - 1, 0},
		{board.Rows - 1, board.Cols - 1},
	}
	seed := seeds[threadID]
	if !board.IsEmpty(seed.row, seed.col) {
		return
	}

	validator := pc.ctx.Validator
	needN := seed.row == 0
	needS := seed.row == board.Rows-1
	needW := seed.col == 0
	needE := seed.col == board.Cols-1

	for id, tile := range pc.ctx.Puzzle.Tiles {
		if used.Has(id) {
			continue
		}
		for _, rot := range tile.DistinctRotations() {
			edges := tile.EdgesRotated(rot)
			if needN && edges[model.North] != validator.BorderColor {
				continue
			}
			if needS && edges[model.South] != validator.BorderColor {
				continue
			}
			if needW && edges[model.West] != validator.BorderColor {
				continue
			}
			if needE && edges[model.East] != validator.BorderColor {
				continue
			}
			placement := model.NewPlacement(tile, rot)
			if !validator.Fits(board, seed.row, seed.col, placement) {
				continue
			}
			board.Place(seed.row, seed.col, placement)
			used.Mark(id)
			*history = append(*history, model.PlacementInfo{Row: seed.row, Col: seed.col, TileID: id, Rotation: rot})
			common.Verbose("worker %d: diversification seed placed tile %d at (%d,%d)", threadID, id, seed.row, seed.col)
			return
		}
	}
}

// progressMonitor logs the shared state's running bests on an interval.
// Stops when stop is closed.
func (pc *ParallelCoordinator) progressMonitor(stop <-chan struct{}) {
	interval := 30 * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			common.Info("progress: globalMaxDepth=%d globalBestScore=%d", pc.shared.GlobalMaxDepth(), pc.shared.GlobalBestScore())
		case threadID := <-pc.shared.CheckpointRequests():
			common.Verbose("worker %d requested a checkpoint tick", threadID)
		}
	}
}
