package clean

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eternity/tessellate/pkg/common"
)

var puzzleName string

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove checkpoint files",
	Long: `Remove checkpoint files from the checkpoint directory.

Without --puzzle, removes every file directly in the checkpoint directory.
With --puzzle, removes only the files whose names start with that puzzle
name. Subdirectories, including the timestamped backup directories, are
left untouched.

This is a destructive operation. Use with caution.

Examples:
  tessellate clean
  tessellate clean --puzzle eternity2_p01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := common.CheckpointDir()
		if err != nil {
			return fmt.Errorf("failed to resolve checkpoint directory: %w", err)
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
			if puzzleName != "" && !strings.HasPrefix(e.Name(), puzzleName) {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove %s: %w", path, err)
			}
			common.Verbose("removed %s", path)
			removed++
		}

		common.Info("removed %d checkpoint file(s) from %s", removed, dir)
		return nil
	},
}

// GetCommand returns the clean command for registration with root
func GetCommand() *cobra.Command {
	cleanCmd.Flags().StringVar(&puzzleName, "puzzle", "", "only remove this puzzle's checkpoint files")
	return cleanCmd
}
