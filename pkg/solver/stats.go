package solver

import "sync/atomic"

// Statistics holds per-engine counters. Each engine owns one instance; they
// are never shared across workers, so plain int64 fields with atomic
// helpers are enough (atomics matter only for the values surfaced through
// SharedSearchState).
type Statistics struct {
	RecursiveCalls   int64
	Placements       int64
	Backtracks       int64
	FitChecks        int64
	SingletonsFound  int64
	SingletonsPlaced int64
	DeadEndsDetected int64

	// PreviousTimeOffsetMs holds cumulative compute time from earlier
	// sessions. Nothing in the tree sets it, so it stays zero.
	PreviousTimeOffsetMs int64

	depthOptions [5]depthProgress
}

type depthProgress struct {
	total   int
	current int
}

// RecordRecursiveCall increments the recursive-call counter.
func (s *Statistics) RecordRecursiveCall() { atomic.AddInt64(&s.RecursiveCalls, 1) }

// RecordPlacement increments the placement counter.
func (s *Statistics) RecordPlacement() { atomic.AddInt64(&s.Placements, 1) }

// RecordBacktrack increments the backtrack counter.
func (s *Statistics) RecordBacktrack() { atomic.AddInt64(&s.Backtracks, 1) }

// RecordFitCheck increments the fit-check counter.
func (s *Statistics) RecordFitCheck() { atomic.AddInt64(&s.FitChecks, 1) }

// RecordSingletonFound increments the singletons-found counter.
func (s *Statistics) RecordSingletonFound() { atomic.AddInt64(&s.SingletonsFound, 1) }

// RecordSingletonPlaced increments the singletons-placed counter.
func (s *Statistics) RecordSingletonPlaced() { atomic.AddInt64(&s.SingletonsPlaced, 1) }

// RecordDeadEnd increments the dead-ends-detected counter.
func (s *Statistics) RecordDeadEnd() { atomic.AddInt64(&s.DeadEndsDetected, 1) }

// SetDepthOptions records, for a shallow depth (0..4), how many candidate
// options existed and which index was chosen - the raw material for the
// progress estimate.
func (s *Statistics) SetDepthOptions(depth, total, current int) {
	if depth < 0 || depth >= len(s.depthOptions) {
		return
	}
	s.depthOptions[depth] = depthProgress{total: total, current: current}
}

// ClearDepthOptions resets a depth's tracked option counts. The engine does
// not call it (nor SetDepthOptions); it is for callers that track progress.
func (s *Statistics) ClearDepthOptions(depth int) {
	if depth < 0 || depth >= len(s.depthOptions) {
		return
	}
	s.depthOptions[depth] = depthProgress{}
}

// ProgressPercent estimates completion from the tracked shallow-depth
// option counts: progress = sum_i (current_i/total_i) * prod_{j<i}
// (1/total_j), clamped to [0,100].
func (s *Statistics) ProgressPercent() float64 {
	progress := 0.0
	weight := 1.0
	for i := range s.depthOptions {
		dp := s.depthOptions[i]
		if dp.total <= 0 {
			break
		}
		progress += weight * (float64(dp.current) / float64(dp.total))
		weight /= float64(dp.total)
	}
	percent := progress * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
