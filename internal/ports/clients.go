package ports

import (
	"context"

	"github.com/dkarlsen/notes-service/internal/domain/note"
)

// EventNotifier defines the client port for publishing note change events
// to an external consumer. Implemented by the webhook adapter; called by
// the application layer after a successful write. Delivery is best-effort:
// the application logs failures and never surfaces them to the HTTP caller.
type EventNotifier interface {
	// NoteUpdated publishes a note.updated event for the given note.
	NoteUpdated(ctx context.Context, n *note.Note) error
}
