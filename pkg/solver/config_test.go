package solver

import (
	"testing"
	"time"
)

func TestApplyDefaultsFillsZeroValues(t *testing.T) {
	rc := ApplyDefaults(RunConfig{})

	if rc.MaxExecutionTime != DefaultTuning.MaxExecutionTime {
		t.Fatalf("expected default MaxExecutionTime, got %v", rc.MaxExecutionTime)
	}
	if rc.ThreadSaveEach != DefaultTuning.ThreadSaveEach {
		t.Fatalf("expected default ThreadSaveEach, got %v", rc.ThreadSaveEach)
	}
	if rc.AutoCheckpointEach != DefaultTuning.AutoCheckpointEach {
		t.Fatalf("expected default AutoCheckpointEach, got %v", rc.AutoCheckpointEach)
	}
	if rc.StatsLogEach != DefaultTuning.StatsLogEach {
		t.Fatalf("expected default StatsLogEach, got %v", rc.StatsLogEach)
	}
	if rc.Threads != 1 {
		t.Fatalf("expected default Threads=1, got %d", rc.Threads)
	}
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	rc := ApplyDefaults(RunConfig{
		MaxExecutionTime:   2 * time.Hour,
		ThreadSaveEach:     1 * time.Minute,
		AutoCheckpointEach: 5 * time.Second,
		StatsLogEach:       1 * time.Second,
		Threads:            8,
	})

	if rc.MaxExecutionTime != 2*time.Hour {
		t.Fatalf("expected explicit MaxExecutionTime preserved, got %v", rc.MaxExecutionTime)
	}
	if rc.Threads != 8 {
		t.Fatalf("expected explicit Threads preserved, got %d", rc.Threads)
	}
}
