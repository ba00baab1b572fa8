package validator

import (
	"os"
	"path/filepath"
	"testing"
)

const feasiblePuzzle = `# Dimensions: 1x2
1 0 5 0 0
2 0 0 0 5
`

const infeasiblePuzzle = `# Dimensions: 1x2
1 0 1 0 0
2 0 0 0 2
`

const brokenPuzzle = `not a valid puzzle file at all
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}

func TestValidateSucceedsWhenAllFilesFeasible(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.txt", feasiblePuzzle)

	if err := Validate(dir, ""); err != nil {
		t.Fatalf("expected validation to succeed, got %v", err)
	}
}

func TestValidateFailsOnInfeasiblePuzzle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", infeasiblePuzzle)

	if err := Validate(dir, ""); err == nil {
		t.Fatal("expected validation to fail on an infeasible puzzle")
	}
}

func TestValidateFailsOnParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.txt", brokenPuzzle)

	if err := Validate(dir, ""); err == nil {
		t.Fatal("expected validation to fail on a malformed puzzle file")
	}
}

func TestValidateWritesStatsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.txt", feasiblePuzzle)
	statsPath := filepath.Join(dir, "stats.json")

	if err := Validate(dir, statsPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(statsPath); err != nil {
		t.Fatalf("expected stats file to be written: %v", err)
	}
}

func TestValidateErrorsWhenNoFilesFound(t *testing.T) {
	dir := t.TempDir()
	if err := Validate(dir, ""); err == nil {
		t.Fatal("expected an error when the directory has no puzzle files")
	}
}
