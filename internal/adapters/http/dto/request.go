package dto

import (
	"github.com/dkarlsen/notes-service/internal/domain/note"
)

// CreateNoteRequest represents the JSON body for creating a new note.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate applies the note field rules (required, length limits).
// Returns a *domain.ValidationResult if any check fails.
func (r *CreateNoteRequest) Validate() error {
	return note.ValidateFields(r.Title, r.Content)
}
