package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SQLiteStore keeps values in a single-table SQLite database
type SQLiteStore struct {
	mu     sync.Mutex
	pool   *sqlitex.Pool
	path   string
	closed bool
}

// OpenSQLite opens or creates the database at path and ensures the kv
// table exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, &StoreError{Op: "open", Backend: "sqlite", Err: errors.New("path is required")}
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, &StoreError{Op: "open", Backend: "sqlite", Err: fmt.Errorf("create directory: %w", err)}
		}
	}

	pool, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize:    1,
		PrepareConn: prepareKV,
	})
	if err != nil {
		return nil, &StoreError{Op: "open", Backend: "sqlite", Err: err}
	}

	return &SQLiteStore{pool: pool, path: path}, nil
}

func prepareKV(conn *sqlite.Conn) error {
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	} {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if err := sqlitex.ExecuteScript(conn, kvSchema, nil); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Path returns the database path
func (s *SQLiteStore) Path() string {
	return s.path
}

// Get returns the value under key
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	conn, err := s.take(ctx, "get", key)
	if err != nil {
		return "", err
	}
	defer s.pool.Put(conn)

	var (
		value string
		found bool
	)
	err = sqlitex.Execute(conn, "SELECT value FROM kv WHERE key = ?", &sqlitex.ExecOptions{
		Args: []any{key},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			value = stmt.ColumnText(0)
			found = true
			return nil
		},
	})
	if err != nil {
		return "", &StoreError{Op: "get", Backend: "sqlite", Key: key, Err: err}
	}
	if !found {
		return "", ErrNotFound
	}
	return value, nil
}

// Set upserts value under key
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	conn, err := s.take(ctx, "set", key)
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		&sqlitex.ExecOptions{Args: []any{key, value}},
	)
	if err != nil {
		return &StoreError{Op: "set", Backend: "sqlite", Key: key, Err: err}
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.pool.Close(); err != nil {
		return &StoreError{Op: "close", Backend: "sqlite", Err: err}
	}
	return nil
}

func (s *SQLiteStore) take(ctx context.Context, op, key string) (*sqlite.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, &StoreError{Op: op, Backend: "sqlite", Key: key, Err: ErrClosed}
	}

	conn, err := s.pool.Take(ctx)
	if err != nil {
		return nil, &StoreError{Op: op, Backend: "sqlite", Key: key, Err: err}
	}
	return conn, nil
}
