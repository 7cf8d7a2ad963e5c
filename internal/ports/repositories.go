package ports

import (
	"context"

	"github.com/dkarlsen/notes-service/internal/domain/note"
)

// NoteRepository defines the persistence port for notes. Implemented by the
// storage adapter; called by the application layer. Implementations map a
// missing row to domain.ErrNotFound so callers never see storage-level
// sentinel values.
type NoteRepository interface {
	// FindByID returns the note with the given ID.
	// Returns domain.ErrNotFound if no note matches.
	FindByID(ctx context.Context, id string) (*note.Note, error)

	// ListByOwner returns all notes belonging to the owner, newest first.
	ListByOwner(ctx context.Context, owner string) ([]note.Note, error)

	// Create stores a new note. The caller assigns ID and timestamps.
	Create(ctx context.Context, n *note.Note) error

	// Update overwrites title and content of an existing note and returns
	// the stored entity with its refreshed UpdatedAt.
	// Returns domain.ErrNotFound if the note does not exist.
	Update(ctx context.Context, id, title, content string) (*note.Note, error)

	// Delete removes a note by ID.
	// Returns domain.ErrNotFound if the note does not exist.
	Delete(ctx context.Context, id string) error
}
