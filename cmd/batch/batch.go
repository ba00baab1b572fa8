// Package batch provides the command-line interface for solving every
// puzzle file in a directory in one run.
package batch

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	batchsvc "github.com/eternity/tessellate/pkg/batch"
	"github.com/eternity/tessellate/pkg/common"
)

var (
	dirFlag     string
	threadsFlag int
	timeoutFlag time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Solve every puzzle file in a directory",
	Long: `Solve every puzzle definition file in a directory, one worker pool per
file, falling back across ordering strategies (mrv-lcv, mrv-ascending,
mrv-descending) when the default strategy leaves a file unsolved within
its time budget.

Examples:
  tessellate batch --dir puzzles
  tessellate batch --dir puzzles --threads 4 --timeout 10m`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := dirFlag
		if dir == "" {
			d, err := common.PuzzlesDir()
			if err != nil {
				return fmt.Errorf("failed to resolve puzzles directory: %w", err)
			}
			dir = d
		}

		results, err := batchsvc.Run(dir, threadsFlag, timeoutFlag)
		if err != nil {
			return fmt.Errorf("batch run failed: %w", err)
		}

		solved, failed := 0, 0
		for _, r := range results {
			switch {
			case r.Error != "":
				failed++
				common.Error("%s: %s", r.File, r.Error)
			case r.Solved:
				solved++
				common.Info("%s: solved (%s, %d/%d, %s)", r.File, r.Strategy, r.Score, r.MaxScore, r.Elapsed)
			default:
				common.Warning("%s: not solved within budget (%s, depth %d, %s)", r.File, r.Strategy, r.Depth, r.Elapsed)
			}
		}

		common.Info("batch complete: %d solved, %d failed, %d total", solved, failed, len(results))
		if failed > 0 {
			return fmt.Errorf("%d of %d puzzle files failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&dirFlag, "dir", "", "directory of puzzle files (default: resolved puzzles directory)")
	batchCmd.Flags().IntVarP(&threadsFlag, "threads", "t", 1, "worker threads per puzzle file")
	batchCmd.Flags().DurationVar(&timeoutFlag, "timeout", 30*time.Minute, "per-strategy-attempt time budget for each file")
}

// GetCommand returns the batch command for registration with root.
func GetCommand() *cobra.Command {
	return batchCmd
}
