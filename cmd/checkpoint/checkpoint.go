// Package checkpoint provides the command-line interface for inspecting and
// managing on-disk checkpoints.
package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/solver"
)

// CheckpointCmd is the parent command; its subcommands do the actual work.
var CheckpointCmd = &cobra.Command{
	Use:   "checkpoint",
	Short: "List, inspect, or remove on-disk checkpoints",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every saved checkpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := common.CheckpointDir()
		if err != nil {
			return fmt.Errorf("failed to resolve checkpoint directory: %w", err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("failed to read checkpoint directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".checkpoint") {
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(e.Name(), ".checkpoint"))
		}
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <puzzle-name>",
	Short: "Print a checkpoint's header fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := common.CheckpointFilePath(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve checkpoint path: %w", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read checkpoint: %w", err)
		}
		cp, err := solver.Decode(data)
		if err != nil {
			return fmt.Errorf("failed to decode checkpoint: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "puzzleName: %s\n", cp.PuzzleName)
		fmt.Fprintf(out, "dimensions: %dx%d\n", cp.Rows, cp.Cols)
		fmt.Fprintf(out, "placements: %d\n", len(cp.PlacementOrder))
		fmt.Fprintf(out, "unusedTiles: %d\n", len(cp.UnusedTileIDs))
		fmt.Fprintf(out, "numFixedPieces: %d\n", cp.NumFixedPieces)
		fmt.Fprintf(out, "progressPercent: %.2f\n", cp.ProgressPercent)
		fmt.Fprintf(out, "elapsedMsThisSession: %d\n", cp.ElapsedMsThisSession)
		fmt.Fprintf(out, "cumulativeComputeMs: %d\n", cp.CumulativeComputeMs)
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean [puzzle-name]",
	Short: "Remove one or all saved checkpoints",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := common.CheckpointDir()
		if err != nil {
			return fmt.Errorf("failed to resolve checkpoint directory: %w", err)
		}
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("failed to read checkpoint directory: %w", err)
		}
		removed := 0
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if prefix != "" && !strings.HasPrefix(e.Name(), prefix) {
				continue
			}
			if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
				return fmt.Errorf("failed to remove %s: %w", e.Name(), err)
			}
			removed++
		}
		common.Info("removed %d checkpoint file(s)", removed)
		return nil
	},
}

// GetCommand returns the checkpoint command tree for registration with root.
func GetCommand() *cobra.Command {
	CheckpointCmd.AddCommand(listCmd, inspectCmd, cleanCmd)
	return CheckpointCmd
}
