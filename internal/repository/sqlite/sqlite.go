// Package sqlite implements the repository interfaces on an embedded SQLite
// database.
//
// The store is used as a document collection, not a relational schema: each
// row is one document, the server assigns the canonical id, and a folder's
// membership set is kept as a JSON-encoded column. modernc.org/sqlite is a
// pure Go driver, so no CGo toolchain is needed and ":memory:" databases
// keep the tests self-contained.
package sqlite

import (
	"database/sql"
	"fmt"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and provides the repository methods.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the database at dbPath and runs migrations.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// SQLite allows exactly one writer; a single connection avoids
	// SQLITE_BUSY under concurrent requests.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: connecting to database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// migrate creates the tables if they don't exist. The implicit rowid
// preserves insertion order, which List relies on.
func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snippets (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		language    TEXT NOT NULL DEFAULT '',
		code        TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS folders (
		id          TEXT PRIMARY KEY,
		local_id    TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		snippet_ids TEXT NOT NULL DEFAULT '[]'
	);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}
