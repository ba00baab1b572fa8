// Package solve provides the command-line interface for the core solve run:
// parse a puzzle file and its properties config into a PuzzleDefinition,
// build a RunConfig from flags, run the coordinator, write the final
// checkpoint, and print a summary.
package solve

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/eternity/tessellate/pkg/common"
	runhistory "github.com/eternity/tessellate/pkg/history"
	"github.com/eternity/tessellate/pkg/model"
	"github.com/eternity/tessellate/pkg/puzzlecfg"
	"github.com/eternity/tessellate/pkg/render"
	"github.com/eternity/tessellate/pkg/solver"
	"github.com/eternity/tessellate/pkg/tilefile"
)

var (
	puzzleFlag      string
	threadsFlag     int
	timeoutFlag     int
	minDepthFlag    int
	parallelFlag    bool
	noSingletonFlag bool
	strategyFlag    string
	configFlag      string
)

// SolveCmd runs a full search against a puzzle file.
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle file",
	Long: `Parse a puzzle definition file and attempt to solve it, writing a
checkpoint when the search ends.

Examples:
  tessellate solve --puzzle eternity2_p01
  tessellate solve --puzzle eternity2_p01 --threads 4 --parallel
  tessellate solve --puzzle eternity2_p01 --timeout 1800 --no-singletons`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := puzzleFlag
		if name == "" && len(args) > 0 {
			name = args[0]
		}
		if name == "" {
			return fmt.Errorf("a puzzle name is required (--puzzle or positional argument)")
		}

		puzzlesDir, err := common.PuzzlesDir()
		if err != nil {
			return fmt.Errorf("failed to resolve puzzles directory: %w", err)
		}
		path := filepath.Join(puzzlesDir, name+".txt")
		def, err := tilefile.ParseFile(path)
		if err != nil {
			return fmt.Errorf("failed to parse puzzle file: %w", err)
		}

		numFixed := len(def.FixedPieces)
		if cfgPath := configFlag; cfgPath != "" {
			cfg, err := puzzlecfg.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load puzzle config: %w", err)
			}
			if n := cfg.FixedPieces(name); n < numFixed {
				numFixed = n
			}
		}
		appliedFixed := def.FixedPieces[:numFixed]

		validator := solver.NewPlacementValidator(def.BorderColor)
		index := solver.BuildEdgeCompatibilityIndex(def.Tiles)
		symmetry := solver.NewSymmetryBreaker(def.Tiles, def.BorderColor, def.Rows, def.Cols)

		runCfg := solver.ApplyDefaults(solver.RunConfig{
			PuzzleName:        name,
			Threads:           threadsFlag,
			MaxExecutionTime:  time.Duration(timeoutFlag) * time.Second,
			MinDepthToShow:    minDepthFlag,
			Parallel:          parallelFlag,
			DisableSingletons: noSingletonFlag,
			Diversify:         parallelFlag,
			Strategy:          strategyFlag,
			Verbose:           common.VerboseEnabled,
		})

		ctx := &solver.SolverContext{Puzzle: def, Validator: validator, Index: index, Symmetry: symmetry, Config: runCfg}

		board := model.NewBoard(def.Rows, def.Cols)
		used := model.NewPieceUsedSet(int(def.MaxTileID()))
		placementHistory := make([]model.PlacementInfo, 0, len(appliedFixed))
		for _, fp := range appliedFixed {
			tile, ok := def.Tiles[fp.TileID]
			if !ok {
				return fmt.Errorf("fixed piece references unknown tile %d", fp.TileID)
			}
			board.Place(fp.Row, fp.Col, model.NewPlacement(tile, fp.Rotation))
			used.Mark(fp.TileID)
			placementHistory = append(placementHistory, fp)
		}

		unused := make(map[model.TileID]bool, len(def.Tiles))
		for id := range def.Tiles {
			if !used.Has(id) {
				unused[id] = true
			}
		}
		if fr := solver.CheckFeasible(def.Tiles, unused, def.BorderColor, def.Rows, def.Cols); !fr.Feasible {
			return fmt.Errorf("puzzle rejected by feasibility precheck: %s", fr.Reason)
		}

		common.Info("solving %s (%dx%d, %d tiles, %d fixed)", name, def.Rows, def.Cols, len(def.Tiles), len(appliedFixed))
		start := time.Now()

		coordinator := solver.NewParallelCoordinator(ctx)
		results := coordinator.Run(board, used, placementHistory, len(appliedFixed))
		elapsed := time.Since(start)

		var best *solver.WorkerResult
		for i := range results {
			r := &results[i]
			if r.Solved {
				best = r
				break
			}
			if best == nil || r.Engine.Depth() > best.Engine.Depth() {
				best = r
			}
		}
		if best == nil {
			return fmt.Errorf("no worker produced a result")
		}

		matched, max := best.Engine.Board.CalculateScore()
		render.Board(cmd.OutOrStdout(), best.Engine.Board)
		common.Info("finished in %s: solved=%v depth=%d score=%d/%d", elapsed, best.Solved, best.Engine.Depth(), matched, max)

		cp := checkpointFromEngine(name, best.Engine, def, appliedFixed)
		checkpointDir, err := common.CheckpointDir()
		if err != nil {
			return fmt.Errorf("failed to resolve checkpoint directory: %w", err)
		}
		store := solver.NewCheckpointStore(checkpointDir)
		if err := store.Save(cp); err != nil {
			common.Warning("failed to save final checkpoint: %v", err)
		}

		if historyPath, err := common.HistoryFile(); err == nil {
			if ledger, err := runhistory.Open(historyPath); err == nil {
				defer ledger.Close()
				rec := runhistory.Record{
					PuzzleName: name,
					Solved:     best.Solved,
					Depth:      best.Engine.Depth(),
					Score:      matched,
					MaxScore:   max,
					Elapsed:    elapsed,
				}
				if err := ledger.Record(rec); err != nil {
					common.Warning("failed to record run history: %v", err)
				}
			} else {
				common.Warning("failed to open history ledger: %v", err)
			}
		} else {
			common.Warning("failed to resolve history ledger path: %v", err)
		}

		return nil
	},
}

func checkpointFromEngine(puzzleName string, e *solver.BacktrackingEngine, def *model.PuzzleDefinition, initialFixed []model.PlacementInfo) *model.Checkpoint {
	placementsByCell := make(map[[2]int]model.PlacementInfo, len(e.History))
	for _, p := range e.History {
		placementsByCell[[2]int{p.Row, p.Col}] = p
	}

	var unused []model.TileID
	for id := range def.Tiles {
		if !e.Used.Has(id) {
			unused = append(unused, id)
		}
	}

	return &model.Checkpoint{
		PuzzleName:         puzzleName,
		Rows:               e.Board.Rows,
		Cols:               e.Board.Cols,
		PlacementsByCell:   placementsByCell,
		PlacementOrder:     append([]model.PlacementInfo(nil), e.History...),
		UnusedTileIDs:      unused,
		NumFixedPieces:     len(initialFixed),
		InitialFixedPieces: append([]model.PlacementInfo(nil), initialFixed...),
	}
}

// GetCommand returns the solve command for registration with root.
func GetCommand() *cobra.Command {
	SolveCmd.Flags().StringVar(&puzzleFlag, "puzzle", "", "puzzle name (looks up <puzzles-dir>/<name>.txt)")
	SolveCmd.Flags().IntVarP(&threadsFlag, "threads", "t", 1, "number of worker threads")
	SolveCmd.Flags().IntVar(&timeoutFlag, "timeout", 1800, "search time budget in seconds")
	SolveCmd.Flags().IntVar(&minDepthFlag, "min-depth", 0, "minimum depth before progress records are reported")
	SolveCmd.Flags().BoolVar(&parallelFlag, "parallel", false, "diversify worker starts with corner seeding")
	SolveCmd.Flags().BoolVar(&noSingletonFlag, "no-singletons", false, "disable the singleton-detection phase")
	SolveCmd.Flags().StringVar(&strategyFlag, "strategy", "", "value-ordering strategy (default: derived from the puzzle's sort order)")
	SolveCmd.Flags().StringVar(&configFlag, "config", "", "puzzle-definitions properties file controlling fixed-piece counts")
	return SolveCmd
}
