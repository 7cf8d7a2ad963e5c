// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkarlsen/notes-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
//
// Note routes live at the root (not under an /api prefix) because the edit
// action's redirect target, /users/{username}/notes/{noteID}, is part of the
// client contract.
func NewRouter(
	noteHandler *handlers.NoteHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/users/{username}/notes", func(r chi.Router) {
		r.Get("/", noteHandler.ListNotes)
		r.Post("/", noteHandler.CreateNote)
		r.Get("/{noteID}", noteHandler.GetNote)
		r.Delete("/{noteID}", noteHandler.DeleteNote)

		// Edit form protocol: read projection + form submission.
		r.Get("/{noteID}/edit", noteHandler.EditNote)
		r.Post("/{noteID}/edit", noteHandler.UpdateNote)
	})

	return r
}
