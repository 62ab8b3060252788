package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

const insertEntry = `INSERT INTO entries (path, value) VALUES (?, ?)`

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	// One connection keeps the in-memory database shared across calls.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if _, err := conn.Exec(`CREATE TABLE entries (path TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return conn
}

func countEntries(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx(t *testing.T) {
	testErr := errors.New("test error")

	tests := []struct {
		name      string
		fn        func(tx *sql.Tx) error
		wantErr   bool
		wantIs    error
		wantCount int
	}{
		{
			name: "commit",
			fn: func(tx *sql.Tx) error {
				_, err := tx.Exec(insertEntry, "/GUI/Theme", "light")
				return err
			},
			wantCount: 1,
		},
		{
			name: "callback error rolls back",
			fn: func(tx *sql.Tx) error {
				if _, err := tx.Exec(insertEntry, "/GUI/Theme", "dark"); err != nil {
					return err
				}
				return testErr
			},
			wantErr: true,
			wantIs:  testErr,
		},
		{
			name: "constraint error rolls back earlier rows",
			fn: func(tx *sql.Tx) error {
				return ExecEach(context.Background(), tx, insertEntry, [][]any{
					{"/a", "1"},
					{"/a", "2"}, // primary key violation
				})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := setupTestDB(t)

			err := WithTx(context.Background(), conn, tt.fn)

			if (err != nil) != tt.wantErr {
				t.Fatalf("WithTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Fatalf("WithTx() error = %v, want %v", err, tt.wantIs)
			}
			if got := countEntries(t, conn); got != tt.wantCount {
				t.Errorf("count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestWithTx_CancelledContext(t *testing.T) {
	conn := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, conn, func(*sql.Tx) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("WithTx() with cancelled context should fail")
	}
	if called {
		t.Error("callback should not run without a transaction")
	}
}

func TestExecEach(t *testing.T) {
	conn := setupTestDB(t)
	if _, err := conn.Exec(insertEntry, "/NewKeys/Undo", "Ctrl+U"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		ctx := context.Background()
		if err := ExecEach(ctx, tx, `DELETE FROM entries WHERE path = ?`, [][]any{{"/NewKeys/Undo"}}); err != nil {
			return err
		}
		return ExecEach(ctx, tx, insertEntry, [][]any{{"/NewKeys/Stop", "X"}, {"/NewKeys/Play", "Space"}})
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if got := countEntries(t, conn); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
	var value string
	if err := conn.QueryRow(`SELECT value FROM entries WHERE path = '/NewKeys/Stop'`).Scan(&value); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if value != "X" {
		t.Errorf("value = %q, want X", value)
	}
}

func TestExecEach_NoRows(t *testing.T) {
	conn := setupTestDB(t)

	err := WithTx(context.Background(), conn, func(tx *sql.Tx) error {
		// An invalid query is never prepared when there is nothing to run.
		return ExecEach(context.Background(), tx, `NOT SQL`, nil)
	})
	if err != nil {
		t.Errorf("ExecEach() with no rows = %v, want nil", err)
	}
}
