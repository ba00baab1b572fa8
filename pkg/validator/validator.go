// Package validator checks puzzle definition files for structural
// correctness and necessary-condition solvability before a solve run is
// attempted against them.
package validator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/eternity/tessellate/pkg/common"
	"github.com/eternity/tessellate/pkg/model"
	"github.com/eternity/tessellate/pkg/solver"
	"github.com/eternity/tessellate/pkg/tilefile"
)

// FileReport is one puzzle file's validation outcome.
type FileReport struct {
	File      string `json:"file"`
	PuzzleID  string `json:"puzzleId"`
	TileCount int    `json:"tileCount"`
	Feasible  bool   `json:"feasible"`
	Reason    string `json:"reason,omitempty"`
	Error     string `json:"error,omitempty"`
	TimeMs    int64  `json:"timeMs"`
}

// Validate parses and structurally checks every puzzle file matching
// dir/*.txt, running the feasibility precheck concurrently (bounded by
// runtime.NumCPU). When statsPath is non-empty, results are written to it as
// JSON regardless of outcome. Validate returns a non-nil error if any file fails to parse or
// fails the feasibility precheck; the error names how many files failed.
func Validate(dir, statsPath string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return fmt.Errorf("validator: failed to glob %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("validator: no puzzle files found under %s", dir)
	}

	concurrency := runtime.NumCPU()
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	reportsCh := make(chan FileReport, len(files))

	for _, f := range files {
		f := f
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			reportsCh <- validateOne(f)
		}()
	}

	wg.Wait()
	close(reportsCh)

	var reports []FileReport
	failed := 0
	for r := range reportsCh {
		reports = append(reports, r)
		if r.Error != "" || !r.Feasible {
			failed++
		}
		common.Info("%s", describeReport(r))
	}

	if statsPath != "" {
		if err := writeReports(statsPath, reports); err != nil {
			common.Warning("failed to write validation stats: %v", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d puzzle files failed validation", failed, len(files))
	}
	return nil
}

func validateOne(path string) FileReport {
	start := time.Now()
	report := FileReport{File: filepath.Base(path)}

	def, err := tilefile.ParseFile(path)
	if err != nil {
		report.Error = err.Error()
		report.TimeMs = time.Since(start).Milliseconds()
		return report
	}
	report.PuzzleID = def.Name
	report.TileCount = len(def.Tiles)

	unused := make(map[model.TileID]bool, len(def.Tiles))
	for id := range def.Tiles {
		unused[id] = true
	}
	for _, fp := range def.FixedPieces {
		delete(unused, fp.TileID)
	}

	fr := solver.CheckFeasible(def.Tiles, unused, model.Border, def.Rows, def.Cols)
	report.Feasible = fr.Feasible
	report.Reason = fr.Reason
	report.TimeMs = time.Since(start).Milliseconds()
	return report
}

func describeReport(r FileReport) string {
	if r.Error != "" {
		return fmt.Sprintf("%s: parse error: %s", r.File, r.Error)
	}
	if !r.Feasible {
		return fmt.Sprintf("%s: infeasible: %s", r.File, r.Reason)
	}
	return fmt.Sprintf("%s: ok (%d tiles, %dms)", r.File, r.TileCount, r.TimeMs)
}

func writeReports(path string, reports []FileReport) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
