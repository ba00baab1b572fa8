package batch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// solvablePuzzle is a 1x2 board with a unique solution: tile 1's east edge
// (5) matches tile 2's west edge (5), and both border-facing sides carry 0.
const solvablePuzzle = `# Dimensions: 1x2
1 0 5 0 0
2 0 0 0 5
`

const infeasiblePuzzle = `# Dimensions: 1x2
1 0 1 0 0
2 0 0 0 2
`

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}

func TestRunSolvesEachFileAndReportsResult(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "easy.txt", solvablePuzzle)

	results, err := Run(dir, 1, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if !r.Solved {
		t.Fatalf("expected the solvable puzzle to be solved, got %+v", r)
	}
	if r.Score != r.MaxScore {
		t.Fatalf("expected a perfect score, got %d/%d", r.Score, r.MaxScore)
	}
}

func TestRunReportsInfeasiblePuzzleWithoutSearching(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "bad.txt", infeasiblePuzzle)

	results, err := Run(dir, 1, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == "" {
		t.Fatal("expected an infeasibility error to be reported")
	}
	if results[0].Solved {
		t.Fatal("an infeasible puzzle must never be reported as solved")
	}
}

func TestRunErrorsWhenDirectoryHasNoPuzzleFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := Run(dir, 1, time.Second); err == nil {
		t.Fatal("expected an error for an empty directory")
	}
}
