package dto_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkarlsen/notes-service/internal/adapters/http/dto"
	"github.com/dkarlsen/notes-service/internal/domain"
	"github.com/dkarlsen/notes-service/internal/domain/note"
)

func TestWriteErrorResponse_ValidationResultVerbatim(t *testing.T) {
	t.Parallel()

	err := note.ValidateFields("", "")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/ada/notes/n1/edit", nil)
	dto.WriteErrorResponse(rec, req, err)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body struct {
		FormErrors  []string            `json:"formErrors"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := body.FieldErrors["title"]; len(got) != 1 || got[0] != "This is required" {
		t.Errorf("title errors = %v", got)
	}
	// The body is the validation result itself, not a problem+json wrapper.
	var raw map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode raw: %v", err)
	}
	if _, hasStatus := raw["status"]; hasStatus {
		t.Error("validation body must not be wrapped in a problem response")
	}
}

func TestWriteErrorResponse_NotFound(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/ada/notes/ghost/edit", nil)
	dto.WriteErrorResponse(rec, req, note.NotFound("ghost"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	resp := decodeError(t, rec)
	if resp.Detail != `No note with the id "ghost" exists.` {
		t.Errorf("Detail = %q", resp.Detail)
	}
	if resp.Title != "Not Found" {
		t.Errorf("Title = %q", resp.Title)
	}
	if resp.Status != http.StatusNotFound {
		t.Errorf("Status = %d", resp.Status)
	}
}

func TestWriteErrorResponse_Malformed(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/ada/notes/n1/edit", nil)
	dto.WriteErrorResponse(rec, req, &domain.MalformedRequestError{Message: `missing form field "title"`})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if resp := decodeError(t, rec); resp.Detail != `missing form field "title"` {
		t.Errorf("Detail = %q", resp.Detail)
	}
}

func TestWriteErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unavailable", domain.ErrUnavailable, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"not found sentinel", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			dto.WriteErrorResponse(rec, req, tt.err)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp
}
