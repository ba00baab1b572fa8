package solver

import (
	"sync"
	"sync/atomic"

	"github.com/eternity/tessellate/pkg/model"
)

// SharedSearchState coordinates multiple worker engines searching the same
// puzzle. Atomic fields carry the cross-worker counters; a single mutex
// guards the best-board/best-pieces snapshot, held only while copying
// board cells.
type SharedSearchState struct {
	solutionFound      int32
	globalMaxDepth     int64
	globalBestScore    int64
	globalBestThreadID int64

	mu               sync.Mutex
	globalBestBoard  *model.Board
	globalBestPieces *model.PieceUsedSet

	checkpointRequests chan int
}

// NewSharedSearchState builds an empty shared state for a parallel run.
func NewSharedSearchState() *SharedSearchState {
	return &SharedSearchState{
		checkpointRequests: make(chan int, 64),
	}
}

// SolutionFound reports whether any worker has completed a full solve.
func (s *SharedSearchState) SolutionFound() bool {
	return atomic.LoadInt32(&s.solutionFound) != 0
}

// SetSolutionFound marks the solution as found and snapshots the winning
// board under the mutex. Only the first caller to flip the flag wins the
// snapshot; later callers are no-ops.
func (s *SharedSearchState) SetSolutionFound(threadID int, score int, board *model.Board, pieces *model.PieceUsedSet) {
	if !atomic.CompareAndSwapInt32(&s.solutionFound, 0, 1) {
		return
	}
	atomic.StoreInt64(&s.globalBestThreadID, int64(threadID))
	atomic.StoreInt64(&s.globalBestScore, int64(score))

	s.mu.Lock()
	s.globalBestBoard = board.Clone()
	s.globalBestPieces = pieces.Clone()
	s.mu.Unlock()
}

// ReportRecord atomically compares depth/score against the running bests
// and, on a strict improvement, snapshots the board under the mutex.
// Returns true if this call set a new record.
func (s *SharedSearchState) ReportRecord(depth, score, threadID int, board *model.Board, pieces *model.PieceUsedSet) bool {
	isRecord := false

	for {
		cur := atomic.LoadInt64(&s.globalMaxDepth)
		if int64(depth) <= cur {
			break
		}
		if atomic.CompareAndSwapInt64(&s.globalMaxDepth, cur, int64(depth)) {
			isRecord = true
			break
		}
	}

	for {
		cur := atomic.LoadInt64(&s.globalBestScore)
		if int64(score) <= cur {
			break
		}
		if atomic.CompareAndSwapInt64(&s.globalBestScore, cur, int64(score)) {
			isRecord = true
			break
		}
	}

	if isRecord {
		atomic.StoreInt64(&s.globalBestThreadID, int64(threadID))
		s.mu.Lock()
		s.globalBestBoard = board.Clone()
		s.globalBestPieces = pieces.Clone()
		s.mu.Unlock()
	}
	return isRecord
}

// GlobalMaxDepth returns the largest depth any worker has reached.
func (s *SharedSearchState) GlobalMaxDepth() int {
	return int(atomic.LoadInt64(&s.globalMaxDepth))
}

// GlobalBestScore returns the largest score any worker has reported.
func (s *SharedSearchState) GlobalBestScore() int {
	return int(atomic.LoadInt64(&s.globalBestScore))
}

// GlobalBestThreadID returns the worker id that set the current best.
func (s *SharedSearchState) GlobalBestThreadID() int {
	return int(atomic.LoadInt64(&s.globalBestThreadID))
}

// BestSnapshot returns a copy of the current best board/pieces, or nil if
// none has been recorded yet.
func (s *SharedSearchState) BestSnapshot() (*model.Board, *model.PieceUsedSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.globalBestBoard == nil {
		return nil, nil
	}
	return s.globalBestBoard.Clone(), s.globalBestPieces.Clone()
}

// RequestCheckpoint queues a worker's checkpoint request for the
// coordinator's monitor, which logs it; nothing is persisted in response.
// Non-blocking: a full queue just drops the request since the next periodic
// tick will ask again.
func (s *SharedSearchState) RequestCheckpoint(threadID int) {
	select {
	case s.checkpointRequests <- threadID:
	default:
	}
}

// CheckpointRequests exposes the request channel for the coordinator's
// monitor goroutine to drain.
func (s *SharedSearchState) CheckpointRequests() <-chan int {
	return s.checkpointRequests
}
