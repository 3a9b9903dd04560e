package storage

import (
	"database/sql"
	"time"
)

// Pin is a symbol the user marked as frequently visited in a workspace.
type Pin struct {
	ID        int64
	Workspace string
	Symbol    string
	CreatedAt time.Time
}

// PinStore manages pinned symbols persisted in SQLite.
type PinStore struct {
	db *sql.DB
}

// NewPinStore creates a pin store using the given database.
func NewPinStore(db *DB) *PinStore {
	return &PinStore{db: db.Conn()}
}

// Add pins a symbol in a workspace. Returns false if already pinned.
func (ps *PinStore) Add(workspace, symbol string) bool {
	res, err := ps.db.Exec(
		`INSERT OR IGNORE INTO pins (workspace, symbol) VALUES (?, ?)`,
		workspace, symbol,
	)
	if err != nil {
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// Remove unpins a symbol. Returns false if it wasn't pinned.
func (ps *PinStore) Remove(workspace, symbol string) bool {
	res, err := ps.db.Exec(
		`DELETE FROM pins WHERE workspace = ? AND symbol = ?`,
		workspace, symbol,
	)
	if err != nil {
		return false
	}
	n, _ := res.RowsAffected()
	return n > 0
}

// Has reports whether a symbol is pinned in a workspace.
func (ps *PinStore) Has(workspace, symbol string) bool {
	var count int
	err := ps.db.QueryRow(
		`SELECT COUNT(*) FROM pins WHERE workspace = ? AND symbol = ?`,
		workspace, symbol,
	).Scan(&count)
	return err == nil && count > 0
}

// List returns a workspace's pinned symbols, newest first.
func (ps *PinStore) List(workspace string) []Pin {
	rows, err := ps.db.Query(
		`SELECT id, workspace, symbol, created_at FROM pins
		 WHERE workspace = ?
		 ORDER BY created_at DESC, id DESC`,
		workspace,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var pins []Pin
	for rows.Next() {
		var p Pin
		var createdAt string
		if err := rows.Scan(&p.ID, &p.Workspace, &p.Symbol, &createdAt); err != nil {
			continue
		}
		p.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
		pins = append(pins, p)
	}
	return pins
}

// Symbols returns just the pinned symbol names for a workspace.
func (ps *PinStore) Symbols(workspace string) []string {
	pins := ps.List(workspace)
	names := make([]string, 0, len(pins))
	for _, p := range pins {
		names = append(names, p.Symbol)
	}
	return names
}
