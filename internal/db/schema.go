package db

// SQL schema for the notes database. A single file holds one table; the
// schema is applied idempotently on startup, so a fresh deployment needs no
// separate migration step.

// NotesDBSchema contains all the SQL statements for the notes database.
const NotesDBSchema = `
-- Notes table: primary note storage.
-- AUTOINCREMENT guarantees ids are never reused after deletion.
CREATE TABLE IF NOT EXISTS notes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_title ON notes(title);
`
