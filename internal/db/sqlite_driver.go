package db

import (
	"database/sql"

	sqlite3 "github.com/mutecomm/go-sqlcipher/v4"
)

const (
	// SQLiteDriverName is the project-specific SQLite driver registration.
	// Registering our own name keeps us independent of the "sqlite3" name the
	// library claims in its init, which other drivers also compete for.
	SQLiteDriverName = "sqlite3_notes_api"
)

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{})
}
