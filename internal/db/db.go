// Package db owns the SQLite connection and the raw SQL for the notes table.
// Callers above it (the notes service) work with scanned rows and never build
// SQL themselves.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MaxOpenConns is the maximum number of open connections.
	// SQLite is single-writer, so high connection counts are counterproductive.
	MaxOpenConns = 10

	// MaxIdleConns is the maximum number of idle connections.
	MaxIdleConns = 2
)

// NotesDB wraps the sql.DB connection for the notes database.
type NotesDB struct {
	db *sql.DB
}

// NewNotesDBFromSQL wraps an existing sql.DB as NotesDB.
// The caller is responsible for having applied the schema.
func NewNotesDBFromSQL(sqlDB *sql.DB) *NotesDB {
	return &NotesDB{db: sqlDB}
}

// DB returns the underlying sql.DB for direct access when needed.
func (n *NotesDB) DB() *sql.DB {
	return n.db
}

// Open opens the notes database at path, creating the file and parent
// directory if needed, and applies the schema.
//
// path is a plain filesystem path, ":memory:", or a file: DSN. File-based
// databases get WAL journaling and a busy timeout via DSN parameters.
func Open(path string) (*NotesDB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	if dir := parentDir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := appendSQLiteParams(path, sqliteCommonParams())

	sqlDB, err := sql.Open(SQLiteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes database: %w", err)
	}

	sqlDB.SetMaxOpenConns(MaxOpenConns)
	sqlDB.SetMaxIdleConns(MaxIdleConns)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping notes database: %w", err)
	}

	if _, err := sqlDB.Exec(NotesDBSchema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize notes schema: %w", err)
	}

	return NewNotesDBFromSQL(sqlDB), nil
}

// Close closes the NotesDB connection.
func (n *NotesDB) Close() error {
	if n.db != nil {
		return n.db.Close()
	}
	return nil
}

// parentDir returns the directory that must exist before the database file
// can be created, or "" when no directory needs creating (in-memory targets,
// file: DSNs, and paths in the working directory).
func parentDir(path string) string {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return ""
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}

func sqliteCommonParams() string {
	// Production-safe defaults: WAL + NORMAL provides good throughput while preserving safety.
	return "_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000&_foreign_keys=on"
}

func appendSQLiteParams(dsn, params string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&" + params
	}
	return dsn + "?" + params
}
