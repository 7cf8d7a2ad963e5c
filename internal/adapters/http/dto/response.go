// Package dto provides HTTP request/response data transfer objects, the
// validation-result error body, and RFC 9457 Problem Details responses for
// the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/dkarlsen/notes-service/internal/domain/note"
)

// NoteResponse represents a single note in HTTP responses. ContentHTML is
// populated only on the single-note view, where the markdown content is
// rendered server-side.
type NoteResponse struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentHTML string `json:"content_html,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// NoteListResponse represents a list of notes in HTTP responses.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
	Count int            `json:"count"`
}

// EditNoteProjection is the read projection served to the edit form: only
// the two editable fields, nothing else from the stored record.
type EditNoteProjection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EditNoteResponse wraps the edit projection under a "note" key.
type EditNoteResponse struct {
	Note EditNoteProjection `json:"note"`
}

// ToNoteResponse converts a domain note to an HTTP response DTO. contentHTML
// may be empty when no rendered form is included.
func ToNoteResponse(n *note.Note, contentHTML string) NoteResponse {
	return NoteResponse{
		ID:          n.ID,
		Owner:       n.Owner,
		Title:       n.Title,
		Content:     n.Content,
		ContentHTML: contentHTML,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.Format(time.RFC3339),
	}
}

// ToNoteListResponse converts a slice of domain notes to an HTTP list
// response DTO.
func ToNoteListResponse(notes []note.Note) NoteListResponse {
	items := make([]NoteResponse, len(notes))
	for i := range notes {
		items[i] = ToNoteResponse(&notes[i], "")
	}
	return NoteListResponse{
		Notes: items,
		Count: len(items),
	}
}

// ToEditNoteResponse projects a domain note down to its editable fields.
func ToEditNoteResponse(n *note.Note) EditNoteResponse {
	return EditNoteResponse{
		Note: EditNoteProjection{
			Title:   n.Title,
			Content: n.Content,
		},
	}
}
