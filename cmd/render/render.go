package render

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/model"
	"github.com/eternity/tessellate/pkg/render"
	"github.com/eternity/tessellate/pkg/solver"
	"github.com/eternity/tessellate/pkg/tilefile"
)

var (
	fileFlag      string
	useCheckpoint bool
	noColor       bool
)

// RenderCmd renders a puzzle file's fixed pieces, or its in-progress
// checkpoint, to the terminal as an ASCII/ANSI grid.
var RenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a puzzle or checkpoint to the terminal",
	Long: `Render a puzzle file's fixed pieces, or its in-progress checkpoint, as an
ASCII/ANSI grid. --checkpoint looks up the puzzle's checkpoint file by the
name derived from --file and overlays it on top of the fixed pieces.

Examples:
  tessellate render --file puzzles/eternity2_p01.txt
  tessellate render --file puzzles/eternity2_p01.txt --checkpoint
  tessellate render --file puzzles/eternity2_p01.txt --no-color
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		render.DisableColorIfNeeded(!noColor)

		if fileFlag == "" {
			return fmt.Errorf("please provide --file")
		}
		def, err := tilefile.ParseFile(fileFlag)
		if err != nil {
			return fmt.Errorf("failed to parse puzzle file: %w", err)
		}

		board := model.NewBoard(def.Rows, def.Cols)
		for _, fp := range def.FixedPieces {
			tile, ok := def.Tiles[fp.TileID]
			if !ok {
				return fmt.Errorf("fixed piece references unknown tile %d", fp.TileID)
			}
			board.Place(fp.Row, fp.Col, model.NewPlacement(tile, fp.Rotation))
		}

		if useCheckpoint {
			checkpointDir, err := common.CheckpointDir()
			if err != nil {
				return fmt.Errorf("failed to resolve checkpoint directory: %w", err)
			}
			store := solver.NewCheckpointStore(checkpointDir)
			cp, err := store.Load(def.Name, len(def.Tiles))
			if err != nil {
				return fmt.Errorf("failed to load checkpoint for %s: %w", def.Name, err)
			}
			for cell, p := range cp.PlacementsByCell {
				tile, ok := def.Tiles[p.TileID]
				if !ok {
					return fmt.Errorf("checkpoint references unknown tile %d", p.TileID)
				}
				if !board.IsEmpty(cell[0], cell[1]) {
					board.Remove(cell[0], cell[1])
				}
				board.Place(cell[0], cell[1], model.NewPlacement(tile, p.Rotation))
			}
		}

		render.Board(cmd.OutOrStdout(), board)
		fmt.Fprintln(cmd.OutOrStdout(), render.Summary(board))
		return nil
	},
}

// GetCommand returns the render command for registration with root.
func GetCommand() *cobra.Command {
	RenderCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "puzzle definition file to render")
	RenderCmd.Flags().BoolVar(&useCheckpoint, "checkpoint", false, "overlay the puzzle's saved checkpoint (an error if none exists)")
	RenderCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI color output")
	return RenderCmd
}
