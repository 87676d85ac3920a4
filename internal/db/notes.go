package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// NoteRow is a raw row from the notes table. Timestamps are unix seconds.
type NoteRow struct {
	ID        int64
	Title     string
	Content   string
	CreatedAt int64
	UpdatedAt int64
}

const noteColumns = "id, title, content, created_at, updated_at"

// likeEscaper escapes LIKE wildcards so a search query matches literally.
// The queries below use ESCAPE '\' to match.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern converts a raw search string into a substring LIKE pattern.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// InsertNote inserts a new note and returns the stored row.
// now is the creation time in unix seconds; it is written to both timestamps.
func (n *NotesDB) InsertNote(ctx context.Context, title, content string, now int64) (NoteRow, error) {
	res, err := n.db.ExecContext(ctx,
		`INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		title, content, now, now,
	)
	if err != nil {
		return NoteRow{}, fmt.Errorf("failed to insert note: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return NoteRow{}, fmt.Errorf("failed to read inserted note id: %w", err)
	}
	return NoteRow{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetNote returns the note with the given id.
// Returns sql.ErrNoRows when the note does not exist.
func (n *NotesDB) GetNote(ctx context.Context, id int64) (NoteRow, error) {
	var row NoteRow
	err := n.db.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, id,
	).Scan(&row.ID, &row.Title, &row.Content, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return NoteRow{}, err
		}
		return NoteRow{}, fmt.Errorf("failed to get note %d: %w", id, err)
	}
	return row, nil
}

// ListNotes returns a page of notes ordered by ascending id.
// A non-empty search restricts rows to those whose title or content contains
// the search string literally (LIKE wildcards in the input are escaped).
// SQLite LIKE is case-insensitive for ASCII, so matching ignores case.
func (n *NotesDB) ListNotes(ctx context.Context, search string, limit, offset int64) ([]NoteRow, error) {
	query := `SELECT ` + noteColumns + ` FROM notes ORDER BY id LIMIT ? OFFSET ?`
	args := []any{limit, offset}
	if search != "" {
		pattern := likePattern(search)
		query = `SELECT ` + noteColumns + ` FROM notes
			WHERE title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\'
			ORDER BY id LIMIT ? OFFSET ?`
		args = []any{pattern, pattern, limit, offset}
	}

	rows, err := n.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var results []NoteRow
	for rows.Next() {
		var row NoteRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Content, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}
	return results, nil
}

// CountNotes returns the total number of notes matching search
// (all notes when search is empty), ignoring pagination.
func (n *NotesDB) CountNotes(ctx context.Context, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM notes`
	args := []any{}
	if search != "" {
		pattern := likePattern(search)
		query = `SELECT COUNT(*) FROM notes
			WHERE title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\'`
		args = []any{pattern, pattern}
	}

	var count int64
	if err := n.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return count, nil
}

// UpdateNote overwrites title, content and updated_at for the note with the
// given id. Returns false when no such note exists.
func (n *NotesDB) UpdateNote(ctx context.Context, id int64, title, content string, now int64) (bool, error) {
	res, err := n.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, now, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update note %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update result for note %d: %w", id, err)
	}
	return affected > 0, nil
}

// DeleteNote removes the note with the given id.
// Returns false when no such note exists.
func (n *NotesDB) DeleteNote(ctx context.Context, id int64) (bool, error) {
	res, err := n.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete note %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result for note %d: %w", id, err)
	}
	return affected > 0, nil
}
