package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eternity/tessellate/cmd/batch"
	"github.com/eternity/tessellate/cmd/checkpoint"
	"github.com/eternity/tessellate/cmd/clean"
	"github.com/eternity/tessellate/cmd/render"
	"github.com/eternity/tessellate/cmd/resume"
	"github.com/eternity/tessellate/cmd/solve"
	"github.com/eternity/tessellate/cmd/stats"
	"github.com/eternity/tessellate/cmd/validate"
	"github.com/eternity/tessellate/cmd/watch"
	"github.com/eternity/tessellate/pkg/common"
)

var (
	// Global flags
	verbose    bool
	workers    string
	workingDir string

	// Parsed workers value
	WorkersCount int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tessellate",
	Short: "An edge-matching square-tile puzzle solver",
	Long: `Tessellate is a CLI tool for solving edge-matching square-tile puzzles
in the Eternity-II family.

It provides commands for:
  - Solving a puzzle from scratch or resuming from a checkpoint
  - Batch-solving every puzzle file in a directory
  - Validating puzzle files for structural and feasibility issues
  - Rendering boards and checkpoints as ASCII/ANSI grids
  - Inspecting, listing, and cleaning saved checkpoints
  - Watching a live dashboard of search progress
  - Reporting historical best results across sessions`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		count, err := parseWorkers(workers)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		WorkersCount = count
		common.Verbose("Workers: %d (from flag: %s)", WorkersCount, workers)

		if workingDir != "" {
			common.Verbose("Changing working directory to: %s", workingDir)
			if err := os.Chdir(workingDir); err != nil {
				return fmt.Errorf("failed to change working directory: %w", err)
			}
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workers, "workers", "j", "half", "worker count (integer, 'half', or 'full'); parsed and logged only, subcommands take --threads")
	rootCmd.PersistentFlags().StringVarP(&workingDir, "working-dir", "w", "", "working directory for puzzle/checkpoint paths (default: current directory)")

	// Register subcommands
	rootCmd.AddCommand(solve.GetCommand())
	rootCmd.AddCommand(resume.GetCommand())
	rootCmd.AddCommand(batch.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
	rootCmd.AddCommand(render.GetCommand())
	rootCmd.AddCommand(checkpoint.GetCommand())
	rootCmd.AddCommand(clean.GetCommand())
	rootCmd.AddCommand(stats.GetCommand())
	rootCmd.AddCommand(watch.GetCommand())
}

// parseWorkers parses the workers flag value
// Accepts: "full" -> NumCPU(), "half" -> NumCPU()/2, or integer string -> that value
func parseWorkers(value string) (int, error) {
	value = strings.TrimSpace(strings.ToLower(value))

	switch value {
	case "full":
		return runtime.NumCPU(), nil
	case "half":
		count := runtime.NumCPU() / 2
		if count < 1 {
			count = 1
		}
		return count, nil
	default:
		count, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("must be 'full', 'half', or a positive integer (got: %s)", value)
		}
		if count < 1 {
			return 0, fmt.Errorf("must be at least 1 (got: %d)", count)
		}
		return count, nil
	}
}
