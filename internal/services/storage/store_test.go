package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBackends(t *testing.T) map[Kind]Store {
	t.Helper()
	dir := t.TempDir()

	stores := make(map[Kind]Store)
	for _, kind := range []Kind{KindMemory, KindFile, KindSQLite} {
		s, err := Open(kind, filepath.Join(dir, string(kind), "papan.db"))
		require.NoError(t, err, "open %s", kind)
		t.Cleanup(func() { s.Close() })
		stores[kind] = s
	}
	return stores
}

func TestStore_Contract(t *testing.T) {
	ctx := context.Background()

	for kind, s := range openBackends(t) {
		t.Run(string(kind), func(t *testing.T) {
			_, err := s.Get(ctx, "kanban-data")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set(ctx, "kanban-data", `{"todo":{}}`))
			got, err := s.Get(ctx, "kanban-data")
			require.NoError(t, err)
			assert.Equal(t, `{"todo":{}}`, got)

			// Last writer wins
			require.NoError(t, s.Set(ctx, "kanban-data", "second"))
			got, err = s.Get(ctx, "kanban-data")
			require.NoError(t, err)
			assert.Equal(t, "second", got)

			// Keys are independent
			require.NoError(t, s.Set(ctx, "other", "x"))
			got, err = s.Get(ctx, "kanban-data")
			require.NoError(t, err)
			assert.Equal(t, "second", got)

			require.NoError(t, s.Set(ctx, "empty", ""))
			got, err = s.Get(ctx, "empty")
			require.NoError(t, err)
			assert.Equal(t, "", got)
		})
	}
}

func TestStore_ClosedRejects(t *testing.T) {
	ctx := context.Background()

	for kind, s := range openBackends(t) {
		t.Run(string(kind), func(t *testing.T) {
			require.NoError(t, s.Close())

			err := s.Set(ctx, "k", "v")
			assert.ErrorIs(t, err, ErrClosed)
			_, err = s.Get(ctx, "k")
			assert.ErrorIs(t, err, ErrClosed)

			var storeErr *StoreError
			assert.True(t, errors.As(err, &storeErr))
		})
	}
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for kind, s := range openBackends(t) {
		t.Run(string(kind), func(t *testing.T) {
			assert.Error(t, s.Set(ctx, "k", "v"))
		})
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "board.json")

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "kanban-data", "payload"))
	require.NoError(t, first.Close())

	second, err := NewFileStore(path)
	require.NoError(t, err)
	got, err := second.Get(ctx, "kanban-data")
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_CorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Get(ctx, "kanban-data")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	// A save replaces the unreadable file
	require.NoError(t, s.Set(ctx, "kanban-data", "fresh"))
	got, err := s.Get(ctx, "kanban-data")
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}

func TestSQLiteStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "papan.db")

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, first.Set(ctx, "kanban-data", fmt.Sprintf("v%d", i)))
	}
	require.NoError(t, first.Close())
	require.NoError(t, first.Close(), "close is idempotent")

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "kanban-data")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open("redis", "x")
	assert.Error(t, err)

	_, err = Open(KindFile, "")
	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "open", storeErr.Op)
	assert.Equal(t, "file store open: path is required", storeErr.Error())

	_, err = Open(KindSQLite, "")
	assert.Error(t, err)
}
