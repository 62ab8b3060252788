package prefs

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/resetconfig/internal/db"
)

const (
	appName    = "resetconfig"
	dbFileName = "prefs.db"
)

// SQLite is a Store persisted in a SQLite database. All entries are loaded
// at open; writes are buffered until Flush commits them in one transaction.
// Close discards unflushed writes.
type SQLite struct {
	conn   *sql.DB
	path   string
	mu     sync.Mutex
	values map[string]Value
	dirty  map[string]bool // path -> true if written, false if deleted
}

// DefaultPath returns the XDG data location of the preference database.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Open opens (creating if needed) the preference database at path.
// An empty path uses DefaultPath.
func Open(path string) (*SQLite, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		conn.Close()
		return nil, err
	}

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	values, err := loadAll(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &SQLite{
		conn:   conn,
		path:   path,
		values: values,
		dirty:  make(map[string]bool),
	}, nil
}

// Path returns the database file path.
func (s *SQLite) Path() string {
	return s.path
}

// Close closes the database. Unflushed writes are lost.
func (s *SQLite) Close() error {
	s.mu.Lock()
	s.dirty = make(map[string]bool)
	s.mu.Unlock()
	return s.conn.Close()
}

func (s *SQLite) Write(path string, v Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[path] = v
	s.dirty[path] = true
}

func (s *SQLite) Read(path string) (Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[path]
	return v, ok
}

func (s *SQLite) HasEntry(path string) bool {
	_, ok := s.Read(path)
	return ok
}

func (s *SQLite) DeleteEntry(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[path]
	if ok {
		delete(s.values, path)
		s.dirty[path] = false
	}
	return ok
}

func (s *SQLite) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedEntries(s.values)
}

// Pending returns the number of paths changed since the last Flush.
func (s *SQLite) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dirty)
}

// Flush commits buffered changes in a single transaction. On failure the
// changes stay pending and the next Flush retries them.
func (s *SQLite) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.dirty) == 0 {
		return nil
	}

	paths := make([]string, 0, len(s.dirty))
	for p := range s.dirty {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	now := time.Now().Unix()
	var upserts, deletes [][]any
	for _, p := range paths {
		if !s.dirty[p] {
			deletes = append(deletes, []any{p})
			continue
		}
		v := s.values[p]
		upserts = append(upserts, []any{p, int(v.Kind()), v.Text(), now})
	}

	ctx := context.Background()
	err := db.WithTx(ctx, s.conn, func(tx *sql.Tx) error {
		if err := db.ExecEach(ctx, tx, `DELETE FROM prefs WHERE path = ?`, deletes); err != nil {
			return err
		}
		return db.ExecEach(ctx, tx, `
			INSERT INTO prefs (path, kind, value, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
				kind = excluded.kind,
				value = excluded.value,
				updated_at = excluded.updated_at
		`, upserts)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}

	s.dirty = make(map[string]bool)
	return nil
}

func loadAll(conn *sql.DB) (map[string]Value, error) {
	rows, err := conn.Query(`SELECT path, kind, value FROM prefs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]Value)
	for rows.Next() {
		var path, text string
		var kind int
		if err := rows.Scan(&path, &kind, &text); err != nil {
			return nil, err
		}
		v, err := Parse(Kind(kind), text)
		if err != nil {
			return nil, fmt.Errorf("preference %s: %w", path, err)
		}
		values[path] = v
	}
	return values, rows.Err()
}

// Verify SQLite implements Store at compile time.
var _ Store = (*SQLite)(nil)
