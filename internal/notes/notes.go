// Package notes implements note CRUD and search on top of the db layer.
// All input validation lives here so every transport shares one rule set.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/kavia-common/simple-notes-api/internal/db"
	"github.com/kavia-common/simple-notes-api/internal/errs"
)

// Service handles note CRUD operations using the db layer.
type Service struct {
	store *db.NotesDB
}

// NewService creates a new notes service.
func NewService(store *db.NotesDB) *Service {
	return &Service{store: store}
}

// Create stores a new note and returns it with its assigned id.
func (s *Service) Create(ctx context.Context, params CreateNoteParams) (*Note, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	row, err := s.store.InsertNote(ctx, params.Title, params.Content, time.Now().UTC().Unix())
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to create note", err)
	}
	return noteFromRow(row), nil
}

// Get retrieves a note by id.
func (s *Service) Get(ctx context.Context, id int64) (*Note, error) {
	row, err := s.store.GetNote(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.New(errs.NotFound, "note not found")
	}
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to read note", err)
	}
	return noteFromRow(row), nil
}

// List returns one page of notes ordered by ascending id, with the total
// count of notes matching params.Search.
func (s *Service) List(ctx context.Context, params ListNotesParams) (*NoteListResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	pageIndex := int64(params.Page - 1)
	pageSize := int64(params.PageSize)
	// Clamp instead of letting the multiplication wrap negative; SQLite
	// reads a negative OFFSET as 0 and would serve page one's rows again.
	offset := int64(math.MaxInt64)
	if pageIndex <= math.MaxInt64/pageSize {
		offset = pageIndex * pageSize
	}
	rows, err := s.store.ListNotes(ctx, params.Search, pageSize, offset)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to list notes", err)
	}
	total, err := s.store.CountNotes(ctx, params.Search)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to count notes", err)
	}

	// Items is non-nil even for an empty page so it serializes as [].
	items := make([]Note, 0, len(rows))
	for _, row := range rows {
		items = append(items, *noteFromRow(row))
	}
	return &NoteListResult{
		Items:    items,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

// Update replaces the note's title and content.
func (s *Service) Update(ctx context.Context, id int64, params UpdateNoteParams) (*Note, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetNote(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.New(errs.NotFound, "note not found")
	}
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to read note", err)
	}

	return s.applyUpdate(ctx, existing, params.Title, params.Content)
}

// Patch updates only the provided fields, keeping the rest.
func (s *Service) Patch(ctx context.Context, id int64, params PatchNoteParams) (*Note, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetNote(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.New(errs.NotFound, "note not found")
	}
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to read note", err)
	}

	newTitle := existing.Title
	newContent := existing.Content
	if params.Title != nil {
		newTitle = *params.Title
	}
	if params.Content != nil {
		newContent = *params.Content
	}
	return s.applyUpdate(ctx, existing, newTitle, newContent)
}

func (s *Service) applyUpdate(ctx context.Context, existing db.NoteRow, title, content string) (*Note, error) {
	nowUnix := time.Now().UTC().Unix()
	// updated_at never moves backwards, even if the wall clock does.
	if nowUnix < existing.UpdatedAt {
		nowUnix = existing.UpdatedAt
	}

	ok, err := s.store.UpdateNote(ctx, existing.ID, title, content, nowUnix)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to update note", err)
	}
	if !ok {
		// Deleted between the read above and this write.
		return nil, errs.New(errs.NotFound, "note not found")
	}

	updated := existing
	updated.Title = title
	updated.Content = content
	updated.UpdatedAt = nowUnix
	return noteFromRow(updated), nil
}

// Delete removes a note by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.store.DeleteNote(ctx, id)
	if err != nil {
		return errs.Wrap(errs.Internal, "failed to delete note", err)
	}
	if !ok {
		return errs.New(errs.NotFound, "note not found")
	}
	return nil
}

func noteFromRow(row db.NoteRow) *Note {
	return &Note{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content,
		CreatedAt: time.Unix(row.CreatedAt, 0).UTC(),
		UpdatedAt: time.Unix(row.UpdatedAt, 0).UTC(),
	}
}
