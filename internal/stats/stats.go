// Package stats keeps per-session run results in memory. Nothing is
// persisted; the history lives as long as the process (or server) does.
package stats

import (
	"sort"
	"sync"
	"time"
)

// Run records one finished round.
type Run struct {
	Player   string // Session username for remote play, empty locally
	Score    int
	Duration time.Duration
	When     time.Time
}

// Store is a thread-safe in-memory run history. The SSH server shares one
// store across all sessions, so access is guarded by a mutex even though
// local play is single-goroutine.
type Store struct {
	mu   sync.Mutex
	runs []Run
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Record appends a finished run.
func (s *Store) Record(r Run) {
	if r.When.IsZero() {
		r.When = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, r)
}

// Best returns the highest-scoring run of the session.
func (s *Store) Best() (Run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.runs) == 0 {
		return Run{}, false
	}
	best := s.runs[0]
	for _, r := range s.runs[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best, true
}

// Top returns up to n runs sorted by score descending, ties broken by
// recency.
func (s *Store) Top(n int) []Run {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Run, len(s.runs))
	copy(out, s.runs)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].When.After(out[j].When)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Count returns the number of recorded runs.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}
