/*
Package sqlite records calculation runs made through the HTTP API.

PURPOSE:
  The wage engine itself is a pure function and keeps nothing. The server
  still wants a reviewable trail of what was calculated during a session,
  so every run is appended here and served back by the history endpoint.

PERSISTENCE SCOPE:
  The default DSN is ":memory:", so history lives and dies with the server
  process; the calculator deliberately carries no state across sessions.
  Pointing the DSN at a file turns on durable history without code changes.

KEY TABLE:
  calculation_runs: Append-only log. Input and Result are stored as JSON
  documents next to a few denormalized columns (dates, totals, message) so
  history listings don't need to unmarshal every row.

CONCURRENCY:
  sync.RWMutex around the connection; SQLite runs in WAL mode so readers
  don't block the single writer.

USAGE:
  store, err := sqlite.New(":memory:")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - api/handlers.go: Appends a run after each calculation
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite-backed run history.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Run is one recorded calculation.
type Run struct {
	ID        int64
	CreatedAt time.Time
	StartDate string
	EndDate   string

	// InputJSON and ResultJSON are the request and result documents exactly
	// as the API serialized them.
	InputJSON  string
	ResultJSON string

	BasePay      string
	AllowancePay string
	Total        string
	Message      string
}

// New opens (and if needed creates) the store at the given DSN. Use
// ":memory:" for a session-scoped history.
func New(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A ":memory:" DSN gives every pooled connection its own database, so
	// the pool is pinned to a single connection. The mutex serializes
	// access regardless.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculation_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		input_json TEXT NOT NULL,
		result_json TEXT NOT NULL,
		base_pay TEXT NOT NULL,
		allowance_pay TEXT NOT NULL,
		total TEXT NOT NULL,
		message TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at
		ON calculation_runs(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// AppendRun records one calculation. Input and result may be any
// JSON-serializable documents; the caller passes its own DTOs.
func (s *Store) AppendRun(ctx context.Context, run Run, input, result any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inputJSON, err := json.Marshal(input)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal input: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal result: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO calculation_runs
		(created_at, start_date, end_date, input_json, result_json, base_pay, allowance_pay, total, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		time.Now().UTC().Format(time.RFC3339),
		run.StartDate,
		run.EndDate,
		string(inputJSON),
		string(resultJSON),
		run.BasePay,
		run.AllowancePay,
		run.Total,
		run.Message,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to append run: %w", err)
	}

	return res.LastInsertId()
}

// ListRuns returns the most recent runs, newest first. A non-positive limit
// defaults to 50.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, start_date, end_date, input_json, result_json,
		       base_pay, allowance_pay, total, message
		FROM calculation_runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.ID, &createdAt, &r.StartDate, &r.EndDate,
			&r.InputJSON, &r.ResultJSON, &r.BasePay, &r.AllowancePay, &r.Total, &r.Message); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// CountRuns returns the number of recorded runs.
func (s *Store) CountRuns(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM calculation_runs`).Scan(&n)
	return n, err
}
