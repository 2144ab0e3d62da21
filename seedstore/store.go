// ════════════════════════════════════════════════════════════════════════════════════════════════
// Seed Inventory Store
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Generic Container Library
// Component: SQLite-Backed Demo Seed Data
//
// Description:
//   Durable key/value seed rows for the demo layer. The demo writes an inventory
//   here, then streams it back into a fresh chainmap to exercise the map against
//   data that survived a storage round trip. The map itself is never persisted.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package seedstore

import (
	"database/sql"

	"main/chainmap"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const schema = `CREATE TABLE IF NOT EXISTS seeds (
	name TEXT PRIMARY KEY,
	quantity INTEGER NOT NULL
)`

// Store wraps one SQLite database holding seed rows. Not safe for concurrent
// use by multiple goroutines without external serialization.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn (":memory:" works) and ensures
// the seeds table exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open seed database")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create seeds table")
	}
	return &Store{db: db}, nil
}

// Put upserts one seed row.
func (s *Store) Put(name string, quantity int) error {
	_, err := s.db.Exec(
		"INSERT INTO seeds (name, quantity) VALUES (?, ?) "+
			"ON CONFLICT(name) DO UPDATE SET quantity = excluded.quantity",
		name, quantity,
	)
	return errors.Wrapf(err, "put seed %q", name)
}

// Count returns the number of seed rows.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM seeds").Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count seeds")
	}
	return n, nil
}

// Load streams every seed row through visit. A visit error stops the scan
// and propagates.
func (s *Store) Load(visit func(name string, quantity int) error) error {
	rows, err := s.db.Query("SELECT name, quantity FROM seeds")
	if err != nil {
		return errors.Wrap(err, "query seeds")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name     string
			quantity int
		)
		if err := rows.Scan(&name, &quantity); err != nil {
			return errors.Wrap(err, "scan seed row")
		}
		if err := visit(name, quantity); err != nil {
			return err
		}
	}
	return errors.Wrap(rows.Err(), "iterate seeds")
}

// LoadInto inserts every seed row into m and returns the number loaded.
func (s *Store) LoadInto(m *chainmap.Map[string, int]) (int, error) {
	loaded := 0
	err := s.Load(func(name string, quantity int) error {
		if err := m.Insert(name, quantity); err != nil {
			return errors.Wrapf(err, "insert seed %q", name)
		}
		loaded++
		return nil
	})
	return loaded, err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "close seed database")
}
