package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/validator"
)

var (
	dirFlag   string
	statsFlag string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val", "v"},
	Short:   "Validate puzzle definition files",
	Long: `Validate every puzzle definition file in a directory.

Performs:
  - Grammar parsing (dimensions, tile lines, fixed pieces)
  - The edge-parity feasibility precheck used before a solve starts

Results are written to a JSON stats file for analysis.

Examples:
  tessellate validate
  tessellate validate --dir puzzles --verbose
  tessellate validate --stats validation_stats.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := dirFlag
		if dir == "" {
			d, err := common.PuzzlesDir()
			if err != nil {
				return fmt.Errorf("failed to resolve puzzles directory: %w", err)
			}
			dir = d
		}

		common.Info("validating puzzle files in %s", dir)
		if err := validator.Validate(dir, statsFlag); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		common.Info("all puzzle files validated successfully")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&dirFlag, "dir", "", "directory of puzzle files (default: resolved puzzles directory)")
	validateCmd.Flags().StringVar(&statsFlag, "stats", "validation_stats.json", "path to write per-file validation results")
}

// GetCommand returns the validate command for registration with root
func GetCommand() *cobra.Command {
	return validateCmd
}
