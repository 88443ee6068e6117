package db

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv_store (
	key   VARCHAR PRIMARY KEY,
	value VARCHAR NOT NULL
)`

// Open initializes a DuckDB connection backed by the given file and
// bootstraps the key-value schema. An empty path opens an in-memory
// database, which is what the tests use.
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DuckDB: %w", err)
	}

	// DuckDB works best with a single connection
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if _, err := conn.Exec(createKVTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}

	return conn, nil
}
