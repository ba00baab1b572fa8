// Package stats provides the command-line interface for reporting
// cross-session best-known results from the run ledger.
package stats

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/history"
)

var puzzleFlag string

// StatsCmd reports historical best depth/score per puzzle from the run
// ledger, independent of any on-disk checkpoint.
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report historical best results from the run ledger",
	Long: `Report the best depth/score ever recorded for puzzles, read from the
run ledger rather than re-parsing checkpoint files.

Examples:
  tessellate stats
  tessellate stats --puzzle eternity2_p01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := common.HistoryFile()
		if err != nil {
			return fmt.Errorf("failed to resolve history ledger: %w", err)
		}
		ledger, err := history.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open history ledger: %w", err)
		}
		defer ledger.Close()

		out := cmd.OutOrStdout()
		if puzzleFlag != "" {
			rec, ok, err := ledger.Best(puzzleFlag)
			if err != nil {
				return fmt.Errorf("failed to read ledger: %w", err)
			}
			if !ok {
				fmt.Fprintf(out, "%s: no recorded runs\n", puzzleFlag)
				return nil
			}
			printRecord(out, rec)
			return nil
		}

		records, err := ledger.All()
		if err != nil {
			return fmt.Errorf("failed to read ledger: %w", err)
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "no recorded runs")
			return nil
		}
		for _, rec := range records {
			printRecord(out, rec)
		}
		return nil
	},
}

func printRecord(out io.Writer, rec history.Record) {
	fmt.Fprintf(out, "%-20s solved=%-5v depth=%-4d score=%d/%d elapsed=%s\n",
		rec.PuzzleName, rec.Solved, rec.Depth, rec.Score, rec.MaxScore, rec.Elapsed)
}

// GetCommand returns the stats command for registration with root.
func GetCommand() *cobra.Command {
	StatsCmd.Flags().StringVar(&puzzleFlag, "puzzle", "", "report only this puzzle's best result")
	return StatsCmd
}
