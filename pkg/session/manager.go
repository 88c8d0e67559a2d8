// Package session holds the host-side state around the pure balancing core:
// the last successful result (read by the "show work" command) and an
// optional history of balanced equations behind a ports.HistoryStore.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/stoich/internal/logging"
	"github.com/aretw0/stoich/pkg/balance"
	"github.com/aretw0/stoich/pkg/ports"
)

// Manager orchestrates the last-result slot and history recording. Safe for
// concurrent use; the slot is overwritten on every successful balance.
type Manager struct {
	mu   sync.RWMutex
	last *balance.Result

	store  ports.HistoryStore // optional
	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithHistory enables history recording in the given store.
func WithHistory(store ports.HistoryStore) Option {
	return func(m *Manager) { m.store = store }
}

// WithLogger configures a logger for deferred errors (history writes are
// best-effort and never fail the balancing request).
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager creates a session manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Record stores res as the last result and appends it to the history.
func (m *Manager) Record(ctx context.Context, input string, res *balance.Result) {
	m.mu.Lock()
	m.last = res
	m.mu.Unlock()

	if m.store == nil {
		return
	}
	entry := ports.HistoryEntry{Input: input, Balanced: res.String(), At: time.Now()}
	if err := m.store.Append(ctx, entry); err != nil {
		m.logger.Warn("history append failed", "error", err)
	}
}

// Last returns the most recent successful result, or nil.
func (m *Manager) Last() *balance.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

// Reset clears the last-result slot.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = nil
}

// Recent returns up to limit history entries, newest first. Returns
// ports.ErrHistoryEmpty when no store is configured or nothing was recorded.
func (m *Manager) Recent(ctx context.Context, limit int) ([]ports.HistoryEntry, error) {
	if m.store == nil {
		return nil, ports.ErrHistoryEmpty
	}
	return m.store.Recent(ctx, limit)
}
