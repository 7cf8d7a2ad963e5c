package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkarlsen/notes-service/internal/adapters/http/dto"
	"github.com/dkarlsen/notes-service/internal/domain"
)

// routeParam extracts a required string path parameter. An empty value is a
// routing contract violation, not user input, so it maps to a malformed
// request rather than a field error.
func routeParam(r *http.Request, param string) (string, error) {
	v := chi.URLParam(r, param)
	if v == "" {
		return "", &domain.MalformedRequestError{
			Message: fmt.Sprintf("missing route parameter %q", param),
		}
	}
	return v, nil
}

// formField extracts a required form field from an already-parsed form.
// Absence of the key (as opposed to an empty value) breaks the submission
// contract and maps to a malformed request.
func formField(r *http.Request, field string) (string, error) {
	vals, ok := r.PostForm[field]
	if !ok || len(vals) == 0 {
		return "", &domain.MalformedRequestError{
			Message: fmt.Sprintf("missing form field %q", field),
		}
	}
	return vals[0], nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxBodyBytes is the maximum allowed size for a request body (1 MB).
const maxBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxBodyBytes to prevent resource exhaustion. On failure, it
// writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.MalformedRequestError{
			Message: "invalid JSON body",
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns
// false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
