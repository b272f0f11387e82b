package persistence

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/riordanpawley/papan/internal/domain"
	"github.com/riordanpawley/papan/internal/services/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	getErr error
	setErr error
}

func (f *failingStore) Get(context.Context, string) (string, error) { return "", f.getErr }
func (f *failingStore) Set(context.Context, string, string) error   { return f.setErr }
func (f *failingStore) Close() error                                 { return nil }

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestAdapter_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	a := New(store)

	b := sampleBoard(t)
	require.NoError(t, a.Save(ctx, b))

	raw, err := store.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Contains(t, raw, `"inProgress"`)

	assert.True(t, a.Load(ctx).Equal(b))
}

func TestAdapter_LoadEmptyStore(t *testing.T) {
	logger, buf := captureLogger()
	a := New(storage.NewMemoryStore(), WithLogger(logger))

	b := a.Load(context.Background())
	assert.True(t, b.Equal(domain.DefaultBoard()))
	assert.NotContains(t, buf.String(), "level=WARN")
}

func TestAdapter_LoadCorruptFallsBack(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, DefaultKey, "{garbage"))

	logger, buf := captureLogger()
	fallback := domain.EmptyBoard(domain.ColumnNames{Todo: "Backlog"})
	a := New(store, WithLogger(logger), WithFallback(fallback))

	b := a.Load(ctx)
	assert.True(t, b.Equal(fallback))
	assert.Contains(t, buf.String(), "discarding stored board")
}

func TestAdapter_LoadStoreErrorFallsBack(t *testing.T) {
	logger, buf := captureLogger()
	a := New(&failingStore{getErr: errors.New("disk on fire")}, WithLogger(logger))

	b := a.Load(context.Background())
	assert.True(t, b.Equal(domain.DefaultBoard()))
	assert.Contains(t, buf.String(), "disk on fire")
}

func TestAdapter_SaveError(t *testing.T) {
	boom := errors.New("read-only")
	a := New(&failingStore{setErr: boom})

	err := a.Save(context.Background(), domain.DefaultBoard())
	assert.ErrorIs(t, err, boom)
}

func TestAdapter_CustomKey(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	a := New(store, WithKey("board-2"))
	assert.Equal(t, "board-2", a.Key())

	require.NoError(t, a.Save(ctx, sampleBoard(t)))

	_, err := store.Get(ctx, DefaultKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.Get(ctx, "board-2")
	assert.NoError(t, err)
}
