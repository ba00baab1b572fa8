// Package history persists a small cross-session run ledger in an embedded
// badger database, independent of the per-run text checkpoint: it tracks the
// best depth and score ever reached for a given puzzle name so "tessellate
// stats" can report historical bests without re-parsing every checkpoint
// file on disk.
package history

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Record is one completed or timed-out run's outcome for a puzzle.
type Record struct {
	PuzzleName string        `json:"puzzleName"`
	Solved     bool          `json:"solved"`
	Depth      int           `json:"depth"`
	Score      int           `json:"score"`
	MaxScore   int           `json:"maxScore"`
	Elapsed    time.Duration `json:"elapsed"`
	Timestamp  time.Time     `json:"timestamp"`
}

// Ledger wraps a badger database storing one key per puzzle name, holding
// that puzzle's best Record observed so far.
type Ledger struct {
	db *badger.DB
}

// Open opens (creating if necessary) a ledger rooted at dir.
func Open(dir string) (*Ledger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("history: failed to open ledger at %s: %w", dir, err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the underlying database handle.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func key(puzzleName string) []byte {
	return []byte("puzzle/" + puzzleName)
}

// Record stores rec as the new best for its puzzle if it beats (or there is
// no) previously stored record. A run is "better" if it solved and the prior
// best didn't, or if both share solved status and rec reaches a higher
// score, tie-broken by greater depth.
func (l *Ledger) Record(rec Record) error {
	return l.db.Update(func(txn *badger.Txn) error {
		existing, err := loadRecord(txn, rec.PuzzleName)
		if err != nil && err != badger.ErrKeyNotFound {
			return err
		}
		if err == nil && !isBetter(rec, existing) {
			return nil
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("history: failed to marshal record: %w", err)
		}
		return txn.Set(key(rec.PuzzleName), data)
	})
}

func isBetter(candidate, existing Record) bool {
	if candidate.Solved != existing.Solved {
		return candidate.Solved
	}
	if candidate.Score != existing.Score {
		return candidate.Score > existing.Score
	}
	return candidate.Depth > existing.Depth
}

func loadRecord(txn *badger.Txn, puzzleName string) (Record, error) {
	item, err := txn.Get(key(puzzleName))
	if err != nil {
		return Record{}, err
	}
	var rec Record
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	return rec, err
}

// Best returns the stored best record for puzzleName, or ok=false if none
// has ever been recorded.
func (l *Ledger) Best(puzzleName string) (rec Record, ok bool, err error) {
	err = l.db.View(func(txn *badger.Txn) error {
		r, e := loadRecord(txn, puzzleName)
		if e == badger.ErrKeyNotFound {
			return nil
		}
		if e != nil {
			return e
		}
		rec, ok = r, true
		return nil
	})
	return rec, ok, err
}

// All returns every stored record, sorted by puzzle name, for the "stats"
// command's full listing.
func (l *Ledger) All() ([]Record, error) {
	var records []Record
	err := l.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte("puzzle/")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].PuzzleName < records[j].PuzzleName })
	return records, nil
}
