// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dkarlsen/notes-service/internal/adapters/http/dto"
	"github.com/dkarlsen/notes-service/internal/domain"
	"github.com/dkarlsen/notes-service/internal/platform/markdown"
	"github.com/dkarlsen/notes-service/internal/ports"
)

// NoteHandler handles HTTP requests for note CRUD and the edit form
// protocol (read projection + form submission).
type NoteHandler struct {
	svc ports.NoteService
}

// NewNoteHandler creates a new NoteHandler with the given service port.
func NewNoteHandler(svc ports.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

// ListNotes handles GET /users/{username}/notes.
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	username, err := routeParam(r, "username")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	notes, err := h.svc.ListNotes(r.Context(), username)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToNoteListResponse(notes))
}

// CreateNote handles POST /users/{username}/notes.
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	username, err := routeParam(r, "username")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateNoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateNote(r.Context(), username, req.Title, req.Content)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToNoteResponse(created, ""))
}

// GetNote handles GET /users/{username}/notes/{noteID}. The response
// includes the markdown content rendered to HTML.
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := routeParam(r, "noteID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	n, err := h.svc.GetNote(r.Context(), noteID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	html, err := markdown.Render(n.Content)
	if err != nil {
		slog.WarnContext(r.Context(), "failed to render note content",
			slog.String("note_id", n.ID),
			slog.Any("error", err),
		)
	}

	writeJSON(w, http.StatusOK, dto.ToNoteResponse(n, html))
}

// EditNote handles GET /users/{username}/notes/{noteID}/edit. It serves the
// read projection the edit form is populated from: title and content only,
// never the rest of the stored record. No side effects.
func (h *NoteHandler) EditNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := routeParam(r, "noteID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	n, err := h.svc.GetNote(r.Context(), noteID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEditNoteResponse(n))
}

// UpdateNote handles POST /users/{username}/notes/{noteID}/edit, the form
// submission of the edit page. Fields arrive form-encoded; an absent field
// is a contract violation (400, fixed message), while empty or over-long
// values are user errors answered with the validation result body. A valid
// submission is persisted and answered with a 303 redirect to the note's
// canonical view path.
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	username, err := routeParam(r, "username")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	noteID, err := routeParam(r, "noteID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		dto.WriteErrorResponse(w, r, &domain.MalformedRequestError{
			Message: "invalid form data",
		})
		return
	}

	title, err := formField(r, "title")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	content, err := formField(r, "content")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if _, err := h.svc.UpdateNote(r.Context(), noteID, title, content); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	location := fmt.Sprintf("/users/%s/notes/%s", username, noteID)
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// DeleteNote handles DELETE /users/{username}/notes/{noteID}.
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	noteID, err := routeParam(r, "noteID")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), noteID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
