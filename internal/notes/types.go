package notes

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kavia-common/simple-notes-api/internal/errs"
)

const (
	// MaxTitleLength is the maximum title length in characters.
	MaxTitleLength = 255

	// DefaultPageSize is the page size used when the caller does not ask for one.
	DefaultPageSize = 10

	// MaxPageSize is the largest page a single list request may ask for.
	MaxPageSize = 100
)

// Note represents a stored note.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteListResult represents one page of notes plus paging metadata.
// Total counts every note matching the search, not just this page.
type NoteListResult struct {
	Items    []Note `json:"items"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// CreateNoteParams contains parameters for creating a note.
type CreateNoteParams struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate rejects params that must not reach storage.
func (p CreateNoteParams) Validate() error {
	return validateTitle(p.Title)
}

// UpdateNoteParams contains parameters for replacing a note.
// Both fields are written as given; a full replace has no optional parts.
type UpdateNoteParams struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate rejects params that must not reach storage.
func (p UpdateNoteParams) Validate() error {
	return validateTitle(p.Title)
}

// PatchNoteParams contains parameters for a partial update.
// Nil fields keep their stored values.
type PatchNoteParams struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Validate rejects empty patches and invalid provided fields.
func (p PatchNoteParams) Validate() error {
	if p.Title == nil && p.Content == nil {
		return errs.New(errs.InvalidArgument, "at least one of title or content must be provided")
	}
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	return nil
}

// ListNotesParams selects a page of notes.
type ListNotesParams struct {
	Page     int
	PageSize int
	Search   string
}

// Validate rejects out-of-range paging values rather than clamping them,
// so a caller asking for an impossible page hears about it.
func (p ListNotesParams) Validate() error {
	if p.Page < 1 {
		return errs.New(errs.InvalidArgument, "page must be at least 1")
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		return errs.New(errs.InvalidArgument, "page_size must be between 1 and 100")
	}
	return nil
}

// validateTitle enforces the title rules shared by create, update and patch:
// non-blank after trimming, at most MaxTitleLength characters. The stored
// title keeps its original whitespace.
func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.New(errs.InvalidArgument, "title must not be empty or whitespace-only")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errs.New(errs.InvalidArgument, "title must be at most 255 characters")
	}
	return nil
}
