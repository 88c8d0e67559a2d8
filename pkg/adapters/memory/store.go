// Package memory provides an in-memory ports.HistoryStore, used by the REPL
// and as the default for the HTTP server when no Redis URL is configured.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/stoich/pkg/ports"
)

// DefaultCap bounds the history when no explicit cap is given.
const DefaultCap = 50

// Store implements ports.HistoryStore in memory. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries []ports.HistoryEntry // oldest first
	cap     int
}

// NewStore creates a bounded in-memory history. A cap <= 0 uses DefaultCap.
func NewStore(cap int) *Store {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Store{cap: cap}
}

// Append records one entry, evicting the oldest beyond the cap.
func (s *Store) Append(ctx context.Context, entry ports.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.cap {
		s.entries = s.entries[len(s.entries)-s.cap:]
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]ports.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return nil, ports.ErrHistoryEmpty
	}
	if limit <= 0 || limit > len(s.entries) {
		limit = len(s.entries)
	}
	out := make([]ports.HistoryEntry, 0, limit)
	for i := len(s.entries) - 1; i >= len(s.entries)-limit; i-- {
		out = append(out, s.entries[i])
	}
	return out, nil
}

// Clear removes all entries.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}
