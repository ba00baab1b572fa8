package common

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Singleton for resolved working-tree paths
var (
	resolvedWorkingDir    string
	resolvedPuzzlesDir    string
	resolvedCheckpointDir string
	resolvedHistoryFile   string
	pathsOnce             sync.Once
	pathsError            error
)

// RepoMarkerFiles are files that indicate the root of a tessellate working
// tree. go.mod is the only reliable marker since puzzle/checkpoint
// directories are created lazily on first run.
var RepoMarkerFiles = []string{"go.mod"}

// WorkingDirOverride, when non-empty, short-circuits repo-root discovery and
// is used verbatim as the working directory. The CLI never sets it:
// --working-dir changes the process working directory instead.
var WorkingDirOverride string

// initPaths resolves working-tree paths once at startup. It looks for the
// repo root by checking the current working directory and up to 5 parent
// directories. Returns error if the repo root cannot be found.
func initPaths() {
	pathsOnce.Do(func() {
		root := WorkingDirOverride
		if root == "" {
			var err error
			root, err = findRepoRoot()
			if err != nil {
				pathsError = err
				return
			}
		}

		resolvedWorkingDir = root
		resolvedPuzzlesDir = filepath.Join(root, "puzzles")
		resolvedCheckpointDir = filepath.Join(root, "checkpoints")
		resolvedHistoryFile = filepath.Join(root, ".tessellate", "history.db")

		Verbose("Resolved working directory: %s", resolvedWorkingDir)
		Verbose("Puzzles directory: %s", resolvedPuzzlesDir)
		Verbose("Checkpoint directory: %s", resolvedCheckpointDir)
	})
}

// findRepoRoot searches for the repository root by looking for marker files
// starting from the current directory and walking up the directory tree.
func findRepoRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for i := 0; i < 6; i++ {
		if isRepoRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find tessellate working tree (looked for %v starting from %s)", RepoMarkerFiles, cwd)
}

// isRepoRoot checks if a directory contains repo marker files.
func isRepoRoot(dir string) bool {
	for _, marker := range RepoMarkerFiles {
		markerPath := filepath.Join(dir, marker)
		if _, err := os.Stat(markerPath); err == nil {
			return true
		}
	}
	return false
}

// WorkingDir returns the absolute path to the resolved working directory.
func WorkingDir() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	return resolvedWorkingDir, nil
}

// PuzzlesDir returns the absolute path to the puzzle-definitions directory,
// creating it if it doesn't already exist.
func PuzzlesDir() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	if err := os.MkdirAll(resolvedPuzzlesDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create puzzles directory: %w", err)
	}
	return resolvedPuzzlesDir, nil
}

// CheckpointDir returns the absolute path to the checkpoint directory,
// creating it if it doesn't already exist.
func CheckpointDir() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	if err := os.MkdirAll(resolvedCheckpointDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create checkpoint directory: %w", err)
	}
	return resolvedCheckpointDir, nil
}

// HistoryFile returns the absolute path to the run-ledger database file,
// creating its parent directory if necessary.
func HistoryFile() (string, error) {
	initPaths()
	if pathsError != nil {
		return "", pathsError
	}
	if err := os.MkdirAll(filepath.Dir(resolvedHistoryFile), 0755); err != nil {
		return "", fmt.Errorf("failed to create history directory: %w", err)
	}
	return resolvedHistoryFile, nil
}

// CheckpointFilePath returns the absolute path to a named puzzle's
// checkpoint file.
func CheckpointFilePath(puzzleName string) (string, error) {
	dir, err := CheckpointDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("%s.checkpoint", puzzleName)), nil
}

// MustCheckpointDir returns the checkpoint directory path or panics if not
// found. Use sparingly - prefer CheckpointDir() with proper error handling.
func MustCheckpointDir() string {
	dir, err := CheckpointDir()
	if err != nil {
		panic(fmt.Sprintf("failed to resolve checkpoint directory: %v", err))
	}
	return dir
}

// ResetPaths resets the cached paths (useful for testing).
func ResetPaths() {
	resolvedWorkingDir = ""
	resolvedPuzzlesDir = ""
	resolvedCheckpointDir = ""
	resolvedHistoryFile = ""
	WorkingDirOverride = ""
	pathsOnce = sync.Once{}
	pathsError = nil
}
