package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dkarlsen/notes-service/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response. Used for
// every failure except user-input validation, which has its own wire shape
// (the validation result itself).
type ErrorResponse struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}
}

// WriteErrorResponse writes the HTTP representation of a domain error.
//
// A *domain.ValidationResult is written verbatim as a 400 JSON body —
// clients re-render the form from its formErrors/fieldErrors lists, so the
// structure must not be wrapped. Every other error becomes an RFC 9457
// problem+json response with a status derived from the error chain.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var vres *domain.ValidationResult
	if errors.As(err, &vres) {
		writeBody(w, r, "application/json", http.StatusBadRequest, vres)
		return
	}

	resp := NewErrorResponse(r, err)
	writeBody(w, r, "application/problem+json", resp.Status, resp)
}

func writeBody(w http.ResponseWriter, r *http.Request, contentType string, status int, body any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", err),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrMalformed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
