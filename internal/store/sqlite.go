// Package store persists collected transaction records to a local SQLite
// database.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"cardmail/internal/models"
)

// Store wraps the SQLite history database
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Reset drops and recreates the history table so each run replaces the
// previous collection.
func (s *Store) Reset(table string) error {
	if _, err := s.db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %q`, table)); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}

	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %q (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			usage_location TEXT,
			price REAL,
			credit_name TEXT,
			dt TEXT
		)`, table)
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// InsertRecords writes the collected records in one transaction. Absent
// fields are stored as NULL; timestamps are serialized as RFC 3339 text.
func (s *Store) InsertRecords(table string, records []models.TransactionRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf(
		`INSERT INTO %q (usage_location, price, credit_name, dt) VALUES (?, ?, ?, ?)`, table))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		var dt *string
		if r.Timestamp != nil {
			v := r.Timestamp.Format(time.RFC3339)
			dt = &v
		}
		if _, err := stmt.Exec(r.MerchantLocation, r.Amount, r.IssuerName, dt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Count returns the number of stored records
func (s *Store) Count(table string) (int, error) {
	var n int
	if err := s.db.QueryRow(fmt.Sprintf(`SELECT COUNT(1) FROM %q`, table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return n, nil
}
