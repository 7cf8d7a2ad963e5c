package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dkarlsen/notes-service/internal/domain/note"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validNote() *note.Note {
	return &note.Note{
		ID:        "note-1",
		Owner:     "ada",
		Title:     "Shopping list",
		Content:   "Milk, eggs, bread",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// fakeNoteService is a hand-rolled ports.NoteService for handler tests.
type fakeNoteService struct {
	listResult   []note.Note
	listErr      error
	getResult    *note.Note
	getErr       error
	createResult *note.Note
	createErr    error
	updateResult *note.Note
	updateErr    error
	deleteErr    error

	updateCalls []updateCall
}

type updateCall struct {
	id, title, content string
}

func (f *fakeNoteService) ListNotes(_ context.Context, _ string) ([]note.Note, error) {
	return f.listResult, f.listErr
}

func (f *fakeNoteService) GetNote(_ context.Context, _ string) (*note.Note, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeNoteService) CreateNote(_ context.Context, _, _, _ string) (*note.Note, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createResult, nil
}

func (f *fakeNoteService) UpdateNote(_ context.Context, id, title, content string) (*note.Note, error) {
	f.updateCalls = append(f.updateCalls, updateCall{id: id, title: title, content: content})
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeNoteService) DeleteNote(_ context.Context, _ string) error {
	return f.deleteErr
}
