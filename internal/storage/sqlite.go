// Package storage provides SQLite-based persistence for pet run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one visit to the game scene that ended in game over.
type Run struct {
	ID         int64
	PetName    string
	Survived   time.Duration
	ItemsUsed  int
	Rotations  int
	Cause      string // depleted stats, e.g. "health" or "health,fun"
	Difficulty string
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pet_name TEXT NOT NULL,
			survived_ms INTEGER NOT NULL,
			items_used INTEGER NOT NULL DEFAULT 0,
			rotations INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL DEFAULT 'normal',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_survived ON runs(survived_ms DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Difficulty == "" {
		r.Difficulty = "normal"
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (pet_name, survived_ms, items_used, rotations, cause, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.PetName, r.Survived.Milliseconds(), r.ItemsUsed, r.Rotations, r.Cause, r.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, pet_name, survived_ms, items_used, rotations, cause, difficulty, created_at`

// TopRuns retrieves the N longest runs, longest first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY survived_ms DESC, id ASC LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the N most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// BestRun returns the longest run, or nil if there are none.
func (s *Store) BestRun() (*Run, error) {
	runs, err := s.TopRuns(1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			survivedMS int64
			createdAt  any
		)
		if err := rows.Scan(&r.ID, &r.PetName, &survivedMS, &r.ItemsUsed, &r.Rotations, &r.Cause, &r.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Survived = time.Duration(survivedMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Summary contains aggregated run statistics.
type Summary struct {
	Runs        int
	Best        time.Duration
	Average     time.Duration
	ItemsUsed   int64
	Rotations   int64
	LastPlayed  time.Time
	CauseCounts map[string]int
}

// Summary aggregates all recorded runs.
func (s *Store) Summary() (*Summary, error) {
	sum := &Summary{CauseCounts: make(map[string]int)}

	var best int64
	var avg float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(survived_ms), 0), COALESCE(AVG(survived_ms), 0),
		        COALESCE(SUM(items_used), 0), COALESCE(SUM(rotations), 0)
		 FROM runs`,
	).Scan(&sum.Runs, &best, &avg, &sum.ItemsUsed, &sum.Rotations)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run summary: %w", err)
	}
	sum.Best = time.Duration(best) * time.Millisecond
	sum.Average = time.Duration(avg * float64(time.Millisecond))

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		sum.LastPlayed = parseTime(lastPlayed)
	}

	rows, err := s.db.Query(`SELECT cause, COUNT(*) FROM runs GROUP BY cause`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count causes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cause string
		var n int
		if err := rows.Scan(&cause, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan cause row: %w", err)
		}
		sum.CauseCounts[cause] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sum, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
