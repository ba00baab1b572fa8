// Package resume provides the command-line interface for continuing a solve
// run from its last saved checkpoint.
package resume

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/model"
	"github.com/eternity/tessellate/pkg/render"
	"github.com/eternity/tessellate/pkg/solver"
	"github.com/eternity/tessellate/pkg/tilefile"
)

var (
	puzzleFlag   string
	threadsFlag  int
	timeoutFlag  int
	strategyFlag string
)

// ResumeCmd loads an existing checkpoint and continues searching from it,
// using the HistoricalBacktracker to pop and retry if the restored state
// itself turns out to be stuck.
var ResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a puzzle from its saved checkpoint",
	Long: `Load a puzzle's saved checkpoint and continue searching from it. If the
restored state is itself a dead end, pops placements one at a time (down to
the fixed-piece prefix) and retries via the historical backtracker.

Examples:
  tessellate resume --puzzle eternity2_p01
  tessellate resume --puzzle eternity2_p01 --timeout 900`,
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
		def, err := tilefile.ParseFile(filepath.Join(puzzlesDir, name+".txt"))
		if err != nil {
			return fmt.Errorf("failed to parse puzzle file: %w", err)
		}

		checkpointDir, err := common.CheckpointDir()
		if err != nil {
			return fmt.Errorf("failed to resolve checkpoint directory: %w", err)
		}
		store := solver.NewCheckpointStore(checkpointDir)
		cp, err := store.Load(name, len(def.Tiles))
		if err != nil {
			return fmt.Errorf("failed to load checkpoint: %w", err)
		}

		board := model.NewBoard(cp.Rows, cp.Cols)
		used := model.NewPieceUsedSet(int(def.MaxTileID()))
		for _, p := range cp.PlacementOrder {
			tile, ok := def.Tiles[p.TileID]
			if !ok {
				return fmt.Errorf("checkpoint references unknown tile %d", p.TileID)
			}
			board.Place(p.Row, p.Col, model.NewPlacement(tile, p.Rotation))
			used.Mark(p.TileID)
		}

		validator := solver.NewPlacementValidator(def.BorderColor)
		index := solver.BuildEdgeCompatibilityIndex(def.Tiles)
		symmetry := solver.NewSymmetryBreaker(def.Tiles, def.BorderColor, def.Rows, def.Cols)
		runCfg := solver.ApplyDefaults(solver.RunConfig{
			PuzzleName:       name,
			Threads:          threadsFlag,
			MaxExecutionTime: time.Duration(timeoutFlag) * time.Second,
			Strategy:         strategyFlag,
			Verbose:          common.VerboseEnabled,
		})
		ctx := &solver.SolverContext{Puzzle: def, Validator: validator, Index: index, Symmetry: symmetry, Config: runCfg}

		shared := solver.NewSharedSearchState()
		engine := solver.NewBacktrackingEngine(ctx, board, used, append([]model.PlacementInfo(nil), cp.PlacementOrder...), cp.NumFixedPieces, shared, 0)

		common.Info("resuming %s from depth %d", name, engine.Depth())
		start := time.Now()
		solved := solver.NewHistoricalBacktracker(engine).Run()
		elapsed := time.Since(start)

		matched, max := engine.Board.CalculateScore()
		render.Board(cmd.OutOrStdout(), engine.Board)
		common.Info("finished in %s: solved=%v depth=%d score=%d/%d", elapsed, solved, engine.Depth(), matched, max)

		var unused []model.TileID
		for id := range def.Tiles {
			if !engine.Used.Has(id) {
				unused = append(unused, id)
			}
		}
		out := &model.Checkpoint{
			PuzzleName:         name,
			Rows:               engine.Board.Rows,
			Cols:               engine.Board.Cols,
			PlacementsByCell:   placementsByCell(engine.History),
			PlacementOrder:     append([]model.PlacementInfo(nil), engine.History...),
			UnusedTileIDs:      unused,
			NumFixedPieces:     cp.NumFixedPieces,
			InitialFixedPieces: append([]model.PlacementInfo(nil), cp.InitialFixedPieces...),
		}
		if err := store.Save(out); err != nil {
			common.Warning("failed to save checkpoint: %v", err)
		}

		return nil
	},
}

func placementsByCell(history []model.PlacementInfo) map[[2]int]model.PlacementInfo {
	m := make(map[[2]int]model.PlacementInfo, len(history))
	for _, p := range history {
		m[[2]int{p.Row, p.Col}] = p
	}
	return m
}

// GetCommand returns the resume command for registration with root.
func GetCommand() *cobra.Command {
	ResumeCmd.Flags().StringVar(&puzzleFlag, "puzzle", "", "puzzle name whose checkpoint to resume")
	ResumeCmd.Flags().IntVarP(&threadsFlag, "threads", "t", 1, "worker thread count recorded in the run config (resume runs a single engine)")
	ResumeCmd.Flags().IntVar(&timeoutFlag, "timeout", 1800, "search time budget in seconds")
	ResumeCmd.Flags().StringVar(&strategyFlag, "strategy", "", "value-ordering strategy override")
	return ResumeCmd
}
