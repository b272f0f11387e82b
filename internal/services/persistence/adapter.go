// Package persistence saves and restores the board through a
// string-keyed store.
package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/services/storage"
)

// DefaultKey is the storage key the board lives under
const DefaultKey = "kanban-data"

// Adapter loads and saves the board under a single key
type Adapter struct {
	store    storage.Store
	key      string
	fallback domain.Board
	logger   *slog.Logger
}

// Option configures an Adapter
type Option func(*Adapter)

// WithKey overrides the storage key
func WithKey(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithFallback sets the board Load returns when nothing usable is stored
func WithFallback(b domain.Board) Option {
	return func(a *Adapter) {
		a.fallback = b
	}
}

// WithLogger sets the logger used for load and save diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Adapter over store
func New(store storage.Store, opts ...Option) *Adapter {
	a := &Adapter{
		store:    store,
		key:      DefaultKey,
		fallback: domain.DefaultBoard(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the storage key
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the stored board. It never fails: a missing, unreadable
// or invalid snapshot yields the fallback board.
func (a *Adapter) Load(ctx context.Context) domain.Board {
	data, err := a.store.Get(ctx, a.key)
	if errors.Is(err, storage.ErrNotFound) {
		a.logger.Debug("no stored board, starting fresh", "key", a.key)
		return a.fallback
	}
	if err != nil {
		a.logger.Warn("failed to read stored board", "key", a.key, "error", err)
		return a.fallback
	}

	b, err := Decode(data)
	if err != nil {
		a.logger.Warn("discarding stored board", "key", a.key, "error", err)
		return a.fallback
	}

	a.logger.Debug("board loaded", "key", a.key, "tasks", b.Len())
	return b
}

// Save writes the board, replacing whatever was stored
func (a *Adapter) Save(ctx context.Context, b domain.Board) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err := a.store.Set(ctx, a.key, data); err != nil {
		return err
	}
	a.logger.Debug("board saved", "key", a.key, "tasks", b.Len())
	return nil
}
