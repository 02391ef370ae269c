// Package history provides the draw history store: an append-only record of
// past lottery draws backed by SQLite. The store supplies raw data only; all
// statistics are computed downstream by the analysis package, which never
// mutates stored draws.
//
// Reads return draws newest-first (index 0 = most recent), matching the
// ordering convention of the analysis engine. Rotation drops the oldest rows
// once a configured cap is exceeded so the database cannot grow unbounded.
package history

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lotto-oracle/lotto-oracle/internal/models"
)

// Store is a SQLite-backed draw history store. It is safe for concurrent use
// by way of database/sql's connection pooling.
type Store struct {
	db        *sql.DB
	maxNumber int
}

const schema = `
CREATE TABLE IF NOT EXISTS draws (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	draw_date TEXT NOT NULL,
	n1        INTEGER NOT NULL,
	n2        INTEGER NOT NULL,
	n3        INTEGER NOT NULL,
	n4        INTEGER NOT NULL,
	n5        INTEGER NOT NULL,
	n6        INTEGER NOT NULL,
	bonus     INTEGER NOT NULL
);
`

// Open opens (or creates) the draw database at path. ":memory:" is supported
// for tests. maxNumber is the domain upper bound used to validate draws on
// insert.
func Open(path string, maxNumber int) (*Store, error) {
	if maxNumber < models.MainNumbers {
		return nil, fmt.Errorf("max number %d is too small for %d main numbers", maxNumber, models.MainNumbers)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, maxNumber: maxNumber}, nil
}

// Add validates and appends one draw. Draws are expected oldest-to-newest in
// insertion order; the auto-increment row ID is the chronological position.
func (s *Store) Add(d models.Draw) error {
	if err := d.Validate(s.maxNumber); err != nil {
		return fmt.Errorf("invalid draw: %w", err)
	}

	_, err := s.db.Exec(
		`INSERT INTO draws (draw_date, n1, n2, n3, n4, n5, n6, bonus) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.Date, d.Numbers[0], d.Numbers[1], d.Numbers[2], d.Numbers[3], d.Numbers[4], d.Numbers[5], d.Bonus,
	)
	if err != nil {
		return fmt.Errorf("failed to insert draw: %w", err)
	}
	return nil
}

// All returns every stored draw, newest-first.
func (s *Store) All() ([]models.Draw, error) {
	return s.query(`SELECT id, draw_date, n1, n2, n3, n4, n5, n6, bonus FROM draws ORDER BY id DESC`)
}

// Recent returns at most limit draws, newest-first.
func (s *Store) Recent(limit int) ([]models.Draw, error) {
	if limit <= 0 {
		return []models.Draw{}, nil
	}
	return s.query(`SELECT id, draw_date, n1, n2, n3, n4, n5, n6, bonus FROM draws ORDER BY id DESC LIMIT ?`, limit)
}

func (s *Store) query(q string, args ...any) ([]models.Draw, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query draws: %w", err)
	}
	defer rows.Close()

	draws := []models.Draw{}
	for rows.Next() {
		var d models.Draw
		var rowID int64
		if err := rows.Scan(&rowID, &d.Date, &d.Numbers[0], &d.Numbers[1], &d.Numbers[2], &d.Numbers[3], &d.Numbers[4], &d.Numbers[5], &d.Bonus); err != nil {
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}
		d.ID = fmt.Sprintf("%d", rowID)
		draws = append(draws, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draws: %w", err)
	}
	return draws, nil
}

// Count returns the number of stored draws.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM draws`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count draws: %w", err)
	}
	return n, nil
}

// Rotate removes the oldest draws so that at most max remain.
func (s *Store) Rotate(max int) error {
	if max < 1 {
		return fmt.Errorf("rotation cap must be at least 1")
	}
	_, err := s.db.Exec(
		`DELETE FROM draws WHERE id NOT IN (SELECT id FROM draws ORDER BY id DESC LIMIT ?)`, max,
	)
	if err != nil {
		return fmt.Errorf("failed to rotate draws: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
