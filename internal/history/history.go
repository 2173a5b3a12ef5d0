// Package history journals applied renames so they can be inspected and
// undone later.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one journaled rename.
type Entry struct {
	ID      int64
	When    time.Time
	Dir     string
	OldName string
	NewName string
	Undone  bool
}

// DB wraps the sqlite history journal.
type DB struct {
	db *sql.DB
}

// Open opens or creates the journal at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &DB{db: db}, nil
}

// createSchema creates the journal schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS renames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ts TEXT NOT NULL,
			dir TEXT NOT NULL,
			old_name TEXT NOT NULL,
			new_name TEXT NOT NULL,
			undone INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_renames_undone ON renames(undone);
	`
	_, err := db.Exec(schema)
	return err
}

// Close closes the journal.
func (d *DB) Close() error {
	return d.db.Close()
}

// Record journals one applied rename.
func (d *DB) Record(dir, oldName, newName string) error {
	_, err := d.db.Exec(
		`INSERT INTO renames (ts, dir, old_name, new_name) VALUES (?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), dir, oldName, newName,
	)
	if err != nil {
		return fmt.Errorf("recording rename: %w", err)
	}
	return nil
}

// Recent returns the n most recent entries, newest first.
func (d *DB) Recent(n int) ([]Entry, error) {
	rows, err := d.db.Query(
		`SELECT id, ts, dir, old_name, new_name, undone
		 FROM renames ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LastApplied returns the most recent entry not yet undone, or nil when
// the journal has nothing left to undo.
func (d *DB) LastApplied() (*Entry, error) {
	rows, err := d.db.Query(
		`SELECT id, ts, dir, old_name, new_name, undone
		 FROM renames WHERE undone = 0 ORDER BY id DESC LIMIT 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	e, err := scanEntry(rows)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// MarkUndone flags an entry as reverted.
func (d *DB) MarkUndone(id int64) error {
	_, err := d.db.Exec(`UPDATE renames SET undone = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking entry %d undone: %w", id, err)
	}
	return nil
}

func scanEntry(rows *sql.Rows) (Entry, error) {
	var e Entry
	var ts string
	var undone int
	if err := rows.Scan(&e.ID, &ts, &e.Dir, &e.OldName, &e.NewName, &undone); err != nil {
		return Entry{}, fmt.Errorf("scanning history entry: %w", err)
	}
	e.When, _ = time.Parse(time.RFC3339, ts)
	e.Undone = undone != 0
	return e, nil
}
