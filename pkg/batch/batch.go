// Package batch solves every puzzle file in a directory sequentially, one
// worker pool per file, collecting a Result per file and falling back across
// ordering strategies when the default one leaves a file unsolved within its
// time budget.
package batch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/eternity/tessellate/pkg/model"
	"github.com/eternity/tessellate/pkg/solver"
	"github.com/eternity/tessellate/pkg/tilefile"
	"github.com/eternity/tessellate/pkg/ui"
)

// StrategyFallbackChain is tried, in order, for each puzzle file until one
// strategy solves it or the chain is exhausted.
var StrategyFallbackChain = []string{
	solver.StrategyMRVLCV,
	solver.StrategyMRVAscending,
	solver.StrategyMRVDescending,
}

// Result is one puzzle file's outcome within a batch run.
type Result struct {
	File       string
	PuzzleName string
	Solved     bool
	Strategy   string
	Depth      int
	Score      int
	MaxScore   int
	Elapsed    time.Duration
	Error      string
}

// Run solves every *.txt puzzle file under dir, applying perFileTimeout to
// each strategy attempt and threads workers per file. It returns one Result
// per file, in the order files were discovered.
func Run(dir string, threads int, perFileTimeout time.Duration) ([]Result, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("batch: failed to glob %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("batch: no puzzle files found under %s", dir)
	}

	results := make([]Result, 0, len(files))
	for _, f := range files {
		results = append(results, runFile(f, threads, perFileTimeout))
	}
	return results, nil
}

func runFile(path string, threads int, perFileTimeout time.Duration) Result {
	base := filepath.Base(path)
	def, err := tilefile.ParseFile(path)
	if err != nil {
		return Result{File: base, Error: err.Error()}
	}

	unused := make(map[model.TileID]bool, len(def.Tiles))
	for id := range def.Tiles {
		unused[id] = true
	}
	for _, fp := range def.FixedPieces {
		delete(unused, fp.TileID)
	}
	if fr := solver.CheckFeasible(def.Tiles, unused, def.BorderColor, def.Rows, def.Cols); !fr.Feasible {
		return Result{File: base, PuzzleName: def.Name, Error: fmt.Sprintf("infeasible: %s", fr.Reason)}
	}

	spin := ui.NewSpinner(fmt.Sprintf("solving %s", base))
	spin.Start()
	defer spin.Stop()

	for _, strategy := range StrategyFallbackChain {
		spin.LogInfo("batch: solving %s with strategy %s", base, strategy)
		spin.UpdateMessage("solving %s (%s)", base, strategy)
		result := attempt(def, threads, perFileTimeout, strategy)
		result.File = base
		result.PuzzleName = def.Name
		result.Strategy = strategy
		if result.Solved {
			return result
		}
		if result.Error != "" {
			return result
		}
	}

	final := Result{File: base, PuzzleName: def.Name, Strategy: StrategyFallbackChain[len(StrategyFallbackChain)-1]}
	return final
}

func attempt(def *model.PuzzleDefinition, threads int, perFileTimeout time.Duration, strategy string) Result {
	validator := solver.NewPlacementValidator(def.BorderColor)
	index := solver.BuildEdgeCompatibilityIndex(def.Tiles)
	symmetry := solver.NewSymmetryBreaker(def.Tiles, def.BorderColor, def.Rows, def.Cols)

	cfg := solver.ApplyDefaults(solver.RunConfig{
		PuzzleName:       def.Name,
		Threads:          threads,
		MaxExecutionTime: perFileTimeout,
		Diversify:        threads > 1,
		Strategy:         strategy,
	})

	ctx := &solver.SolverContext{Puzzle: def, Validator: validator, Index: index, Symmetry: symmetry, Config: cfg}

	board := model.NewBoard(def.Rows, def.Cols)
	used := model.NewPieceUsedSet(int(def.MaxTileID()))
	history := make([]model.PlacementInfo, 0, len(def.FixedPieces))

	for _, fp := range def.FixedPieces {
		tile, ok := def.Tiles[fp.TileID]
		if !ok {
			return Result{Error: fmt.Sprintf("fixed piece references unknown tile %d", fp.TileID)}
		}
		placement := model.NewPlacement(tile, fp.Rotation)
		board.Place(fp.Row, fp.Col, placement)
		used.Mark(fp.TileID)
		history = append(history, fp)
	}

	start := time.Now()
	coordinator := solver.NewParallelCoordinator(ctx)
	workerResults := coordinator.Run(board, used, history, len(def.FixedPieces))
	elapsed := time.Since(start)

	best := bestWorker(workerResults)
	if best == nil {
		return Result{Elapsed: elapsed}
	}

	matched, max := best.Engine.Board.CalculateScore()
	return Result{
		Solved:   best.Solved,
		Depth:    best.Engine.Depth(),
		Score:    matched,
		MaxScore: max,
		Elapsed:  elapsed,
	}
}

func bestWorker(results []solver.WorkerResult) *solver.WorkerResult {
	var best *solver.WorkerResult
	for i := range results {
		r := &results[i]
		if r.Solved {
			return r
		}
		if best == nil || r.Engine.Depth() > best.Engine.Depth() {
			best = r
		}
	}
	return best
}
