package ports

import (
	"context"
	"errors"
	"time"
)

// ErrHistoryEmpty is returned when no entries have been recorded yet.
var ErrHistoryEmpty = errors.New("history is empty")

// HistoryEntry is one recorded balancing outcome.
type HistoryEntry struct {
	Input    string    `json:"input"`
	Balanced string    `json:"balanced"`
	At       time.Time `json:"at"`
}

// HistoryStore persists recently balanced equations. Implementations must be
// safe for concurrent use. Recording is advisory: the balancing pipeline
// never reads history.
type HistoryStore interface {
	// Append records one entry, evicting the oldest beyond the store's cap.
	Append(ctx context.Context, entry HistoryEntry) error

	// Recent returns up to limit entries, newest first.
	// Returns ErrHistoryEmpty when nothing has been recorded.
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error
}
