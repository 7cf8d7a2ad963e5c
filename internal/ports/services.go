package ports

import (
	"context"

	"github.com/dkarlsen/notes-service/internal/domain/note"
)

// NoteService defines the service port for note operations. Implemented by
// the application layer; called by inbound adapters (handlers).
type NoteService interface {
	// ListNotes returns all notes belonging to the given owner, newest first.
	ListNotes(ctx context.Context, owner string) ([]note.Note, error)

	// GetNote returns a single note by ID.
	// Returns domain.ErrNotFound if the note does not exist.
	GetNote(ctx context.Context, id string) (*note.Note, error)

	// CreateNote validates the fields, assigns an ID, and stores a new note
	// for the given owner. Returns domain.ErrValidation (as a
	// *domain.ValidationResult) if the fields fail validation.
	CreateNote(ctx context.Context, owner, title, content string) (*note.Note, error)

	// UpdateNote validates the fields and applies the edit in a single
	// repository call. Returns domain.ErrValidation if the fields fail
	// validation — the update is never attempted in that case — and
	// domain.ErrNotFound if the note does not exist.
	UpdateNote(ctx context.Context, id, title, content string) (*note.Note, error)

	// DeleteNote removes a note by ID.
	// Returns domain.ErrNotFound if the note does not exist.
	DeleteNote(ctx context.Context, id string) error
}
