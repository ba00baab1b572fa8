package common

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BackupCheckpoint copies a puzzle's checkpoint file into a timestamped
// backup directory before it gets overwritten, so a crash mid-write never
// loses the last-known-good state.
func BackupCheckpoint(checkpointPath, backupBaseDir string) (string, error) {
	if _, err := os.Stat(checkpointPath); os.IsNotExist(err) {
		// Nothing to back up yet - expected on a puzzle's first run.
		return "", nil
	}

	timestamp := time.Now().Format("20060102_150405")
	backupDir := filepath.Join(backupBaseDir, fmt.Sprintf("backup_%s", timestamp))
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := os.ReadFile(checkpointPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", checkpointPath, err)
	}

	dstFile := filepath.Join(backupDir, filepath.Base(checkpointPath))
	if err := os.WriteFile(dstFile, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", dstFile, err)
	}

	Verbose("Backed up checkpoint: %s -> %s", checkpointPath, dstFile)
	return backupDir, nil
}

// AtomicWriteFile writes data to path by writing to a temp file in the same
// directory and renaming over the destination, so a crash mid-write never
// leaves a truncated checkpoint behind.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}
