package sqlite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database, used by tests.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS elder (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR(100) NOT NULL,
	age INTEGER NOT NULL,
	guardian_name VARCHAR(100) NOT NULL,
	guardian_phone VARCHAR(15) NOT NULL,
	postal_code VARCHAR(9) NOT NULL,
	street VARCHAR(100) NOT NULL DEFAULT '',
	number VARCHAR(10) NOT NULL DEFAULT '',
	neighborhood VARCHAR(100) NOT NULL DEFAULT '',
	city VARCHAR(100) NOT NULL DEFAULT '',
	state VARCHAR(2) NOT NULL DEFAULT ''
);
`

type DB struct {
	*sqlx.DB
	path string
}

// New opens the database at dbPath, creating the file and its parent
// directory on first use, and makes sure the schema exists.
func New(dbPath string) (*DB, error) {
	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite", dataSourceName(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Every connection to :memory: gets its own database
	if dbPath == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{DB: db, path: dbPath}, nil
}

// dataSourceName applies WAL mode and a busy timeout to every pooled connection
func dataSourceName(dbPath string) string {
	if dbPath == MemoryPath {
		return dbPath
	}
	return "file:" + dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

// Path returns the location the database was opened from
func (db *DB) Path() string {
	return db.path
}

func (db *DB) Close() error {
	return db.DB.Close()
}
