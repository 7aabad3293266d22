// Package store holds the process-lifetime dataset behind the dashboard.
// It keeps the one-file-per-entity sqlite layout but opens an in-memory
// database: nothing survives the process, the schema and seed data are
// rebuilt on every start.
package store

import (
	"database/sql"
	_ "embed"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Store wraps the in-memory database connection
type Store struct {
	*sql.DB
}

// Open creates the in-memory database and initializes the schema
func Open() (*Store, error) {
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// An in-memory database vanishes when its last connection closes;
	// pin a single connection for the process lifetime.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}
