// Package sqlite implements store.Store on a SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/duygulab/duygu/pkg/duygu/eval"
	"github.com/duygulab/duygu/pkg/duygu/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS samples (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT UNIQUE NOT NULL,
	label TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	samples INTEGER NOT NULL,
	accuracy REAL NOT NULL,
	precision REAL NOT NULL,
	recall REAL NOT NULL,
	f1 REAL NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveSamples upserts labeled samples, keyed by sentence text.
func (s *sqliteStore) SaveSamples(ctx context.Context, samples []eval.Sample) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO samples (text, label) VALUES (?, ?)
		ON CONFLICT(text) DO UPDATE SET label = excluded.label`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, sample := range samples {
		if _, err := stmt.ExecContext(ctx, sample.Text, sample.Label); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListSamples returns all stored samples in insertion order.
func (s *sqliteStore) ListSamples(ctx context.Context) ([]eval.Sample, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT text, label FROM samples ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []eval.Sample
	for rows.Next() {
		var sample eval.Sample
		if err := rows.Scan(&sample.Text, &sample.Label); err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

// SaveRun records an evaluation run.
func (s *sqliteStore) SaveRun(ctx context.Context, run store.Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, samples, accuracy, precision, recall, f1)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CreatedAt.UTC().Format(time.RFC3339), run.Samples,
		run.Accuracy, run.Precision, run.Recall, run.F1)
	return err
}

// ListRuns returns the most recent runs, newest first. ULIDs sort by time,
// so ordering by id is ordering by creation.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, samples, accuracy, precision, recall, f1
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var run store.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &createdAt, &run.Samples,
			&run.Accuracy, &run.Precision, &run.Recall, &run.F1); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			run.CreatedAt = t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
