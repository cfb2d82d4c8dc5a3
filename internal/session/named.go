package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"tedit/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	name       TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// DB keeps named sessions in SQLite.
type DB struct {
	db *sql.DB
}

// OpenDB opens (creating if needed) the session database at path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}
	logger.Info("session database %s ready", path)
	return &DB{db: db}, nil
}

// Save stores rec under name, replacing any previous session.
func (d *DB) Save(name string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	_, err = d.db.Exec(
		`INSERT INTO sessions (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		name, string(data), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session %q: %w", name, err)
	}
	logger.Info("saved named session %q (%d documents)", name, len(rec.Documents))
	return nil
}

// Load returns the session saved under name, or ErrSessionNotFound.
func (d *DB) Load(name string) (Record, error) {
	var rec Record
	var data string
	err := d.db.QueryRow(`SELECT data FROM sessions WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, ErrSessionNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("failed to load session %q: %w", name, err)
	}
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return rec, fmt.Errorf("failed to parse session %q: %w", name, err)
	}
	return rec, nil
}

// List returns the saved session names, most recently updated first.
func (d *DB) List() ([]string, error) {
	rows, err := d.db.Query(`SELECT name FROM sessions ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes a named session. Deleting a missing one is not an error.
func (d *DB) Delete(name string) error {
	if _, err := d.db.Exec(`DELETE FROM sessions WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete session %q: %w", name, err)
	}
	return nil
}

func (d *DB) Close() error { return d.db.Close() }
