// Package redis provides a Redis-backed ports.HistoryStore for the HTTP
// server, so recently balanced equations survive restarts and are shared
// across replicas.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/stoich/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

const defaultKey = "stoich:history"

// Store implements ports.HistoryStore on a Redis list (LPUSH/LTRIM).
type Store struct {
	client *backend.Client
	key    string
	cap    int64
	ttl    time.Duration
}

// Option configures the Store.
type Option func(*Store)

// WithKey overrides the Redis key holding the history list.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithCap bounds the list length (default 50).
func WithCap(cap int64) Option {
	return func(s *Store) { s.cap = cap }
}

// WithTTL sets an expiry refreshed on every append. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// New connects to the given Redis URL and wraps the client.
func New(url string, opts ...Option) (*Store, error) {
	redisOpts, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(redisOpts), opts...), nil
}

// NewFromClient wraps an existing client (used by tests with miniredis).
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{client: client, key: defaultKey, cap: 50}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append records one entry, trimming the list to the cap.
func (s *Store) Append(ctx context.Context, entry ports.HistoryEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, s.key, payload)
	pipe.LTrim(ctx, s.key, 0, s.cap-1)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis append: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]ports.HistoryEntry, error) {
	if limit <= 0 || int64(limit) > s.cap {
		limit = int(s.cap)
	}
	raw, err := s.client.LRange(ctx, s.key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis range: %w", err)
	}
	if len(raw) == 0 {
		return nil, ports.ErrHistoryEmpty
	}

	out := make([]ports.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry ports.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("corrupt history entry: %w", err)
		}
		out = append(out, entry)
	}
	return out, nil
}

// Clear removes the history list.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
