package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite database connection.
type DB struct {
	conn *sql.DB
	path string
}

// OpenDB opens (or creates) the jumptree SQLite database in the given
// data directory.
func OpenDB(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "jumptree.db")

	conn, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	db := &DB{conn: conn, path: dbPath}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Conn returns the underlying sql.DB for direct queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// migrate creates the schema if it doesn't exist. Only pinned symbols
// are persisted; navigation trees stay in memory for the session.
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pins (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		workspace  TEXT    NOT NULL,
		symbol     TEXT    NOT NULL,
		created_at DATETIME NOT NULL DEFAULT (datetime('now')),
		UNIQUE(workspace, symbol)
	);

	CREATE INDEX IF NOT EXISTS idx_pins_workspace ON pins(workspace);
	`

	_, err := db.conn.Exec(schema)
	return err
}
