package solver

import "time"

// RunConfig is produced by the CLI layer (cmd/) and consumed by the engine
// and coordinator; the core never parses flags itself.
type RunConfig struct {
	PuzzleName         string
	Threads            int
	MaxExecutionTime   time.Duration
	MinDepthToShow     int
	Parallel           bool
	DisableSingletons  bool
	Diversify          bool
	AutoCheckpointEach time.Duration
	ThreadSaveEach     time.Duration
	StatsLogEach       time.Duration
	Verbose            bool
	// Strategy names a registered value-ordering heuristic (see registry.go).
	// Empty selects one based on the puzzle's own SortOrder.
	Strategy string
}

// Defaults holds the tuning table used when a RunConfig leaves a field at
// its zero value. One table applies to every puzzle size.
type Defaults struct {
	MaxExecutionTime   time.Duration
	ThreadSaveEach     time.Duration
	AutoCheckpointEach time.Duration
	StatsLogEach       time.Duration
	MinDepthToShow     int
}

// DefaultTuning holds the periodic-maintenance intervals: thread-state
// saves every ~5 minutes, auto-checkpoints every ~60 seconds, stats logging
// every ~10 seconds.
var DefaultTuning = Defaults{
	MaxExecutionTime:   30 * time.Minute,
	ThreadSaveEach:     5 * time.Minute,
	AutoCheckpointEach: 60 * time.Second,
	StatsLogEach:       10 * time.Second,
	MinDepthToShow:     0,
}

// ApplyDefaults fills zero-valued fields of rc from DefaultTuning.
func ApplyDefaults(rc RunConfig) RunConfig {
	if rc.MaxExecutionTime <= 0 {
		rc.MaxExecutionTime = DefaultTuning.MaxExecutionTime
	}
	if rc.ThreadSaveEach <= 0 {
		rc.ThreadSaveEach = DefaultTuning.ThreadSaveEach
	}
	if rc.AutoCheckpointEach <= 0 {
		rc.AutoCheckpointEach = DefaultTuning.AutoCheckpointEach
	}
	if rc.StatsLogEach <= 0 {
		rc.StatsLogEach = DefaultTuning.StatsLogEach
	}
	if rc.Threads <= 0 {
		rc.Threads = 1
	}
	return rc
}
