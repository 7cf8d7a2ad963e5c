package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dkarlsen/notes-service/internal/app"
	"github.com/dkarlsen/notes-service/internal/domain"
	"github.com/dkarlsen/notes-service/internal/domain/note"
)

var testTime = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// fakeRepo is a hand-rolled ports.NoteRepository recording calls.
type fakeRepo struct {
	findResult   *note.Note
	findErr      error
	listResult   []note.Note
	listErr      error
	createErr    error
	updateResult *note.Note
	updateErr    error
	deleteErr    error

	createCalls []note.Note
	updateCalls []updateCall
	deleteCalls []string
}

type updateCall struct {
	id, title, content string
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*note.Note, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findResult, nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, _ string) ([]note.Note, error) {
	return f.listResult, f.listErr
}

func (f *fakeRepo) Create(_ context.Context, n *note.Note) error {
	f.createCalls = append(f.createCalls, *n)
	return f.createErr
}

func (f *fakeRepo) Update(_ context.Context, id, title, content string) (*note.Note, error) {
	f.updateCalls = append(f.updateCalls, updateCall{id: id, title: title, content: content})
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

// fakeNotifier records published events and optionally fails.
type fakeNotifier struct {
	err    error
	events []*note.Note
}

func (f *fakeNotifier) NoteUpdated(_ context.Context, n *note.Note) error {
	f.events = append(f.events, n)
	return f.err
}

func storedNote() *note.Note {
	return &note.Note{
		ID:        "note-1",
		Owner:     "ada",
		Title:     "Plans",
		Content:   "world domination",
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

// --- UpdateNote ---

func TestUpdateNote_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{updateResult: storedNote()}
	notifier := &fakeNotifier{}
	svc := app.NewNoteService(repo, notifier, nil)

	updated, err := svc.UpdateNote(context.Background(), "note-1", "Plans", "new content")
	if err != nil {
		t.Fatalf("UpdateNote() error = %v", err)
	}
	if updated.ID != "note-1" {
		t.Errorf("ID = %q, want note-1", updated.ID)
	}

	if len(repo.updateCalls) != 1 {
		t.Fatalf("Update called %d times, want 1", len(repo.updateCalls))
	}
	call := repo.updateCalls[0]
	if call.id != "note-1" || call.title != "Plans" || call.content != "new content" {
		t.Errorf("Update called with %+v", call)
	}

	if len(notifier.events) != 1 {
		t.Errorf("notifier received %d events, want 1", len(notifier.events))
	}
}

func TestUpdateNote_ValidationSkipsRepository(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := app.NewNoteService(repo, nil, nil)

	_, err := svc.UpdateNote(context.Background(), "note-1", "", "content")

	var res *domain.ValidationResult
	if !errors.As(err, &res) {
		t.Fatalf("error = %T, want *domain.ValidationResult", err)
	}
	if len(repo.updateCalls) != 0 {
		t.Errorf("Update called %d times, want 0", len(repo.updateCalls))
	}
}

func TestUpdateNote_NotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{updateErr: note.NotFound("ghost")}
	svc := app.NewNoteService(repo, nil, nil)

	_, err := svc.UpdateNote(context.Background(), "ghost", "title", "content")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateNote_NotifierFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{updateResult: storedNote()}
	notifier := &fakeNotifier{err: errors.New("consumer down")}
	svc := app.NewNoteService(repo, notifier, nil)

	if _, err := svc.UpdateNote(context.Background(), "note-1", "t", "c"); err != nil {
		t.Errorf("UpdateNote() error = %v, want nil despite notifier failure", err)
	}
}

func TestUpdateNote_NoNotifierConfigured(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{updateResult: storedNote()}
	svc := app.NewNoteService(repo, nil, nil)

	if _, err := svc.UpdateNote(context.Background(), "note-1", "t", "c"); err != nil {
		t.Errorf("UpdateNote() error = %v", err)
	}
}

// --- CreateNote ---

func TestCreateNote_AssignsIDAndTimestamps(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := app.NewNoteService(repo, nil, nil)

	created, err := svc.CreateNote(context.Background(), "ada", "Plans", "content")
	if err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}

	if created.ID == "" {
		t.Error("ID not assigned")
	}
	if created.Owner != "ada" {
		t.Errorf("Owner = %q", created.Owner)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("timestamps = %v / %v", created.CreatedAt, created.UpdatedAt)
	}
	if len(repo.createCalls) != 1 {
		t.Errorf("Create called %d times, want 1", len(repo.createCalls))
	}
}

func TestCreateNote_ValidationSkipsRepository(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := app.NewNoteService(repo, nil, nil)

	_, err := svc.CreateNote(context.Background(), "ada", "", "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
	if len(repo.createCalls) != 0 {
		t.Errorf("Create called %d times, want 0", len(repo.createCalls))
	}
}

// --- GetNote / ListNotes / DeleteNote ---

func TestGetNote_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{findResult: storedNote()}
	svc := app.NewNoteService(repo, nil, nil)

	n, err := svc.GetNote(context.Background(), "note-1")
	if err != nil {
		t.Fatalf("GetNote() error = %v", err)
	}
	if n.Title != "Plans" {
		t.Errorf("Title = %q", n.Title)
	}
}

func TestGetNote_NotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{findErr: note.NotFound("ghost")}
	svc := app.NewNoteService(repo, nil, nil)

	_, err := svc.GetNote(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListNotes_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{listResult: []note.Note{*storedNote()}}
	svc := app.NewNoteService(repo, nil, nil)

	notes, err := svc.ListNotes(context.Background(), "ada")
	if err != nil {
		t.Fatalf("ListNotes() error = %v", err)
	}
	if len(notes) != 1 {
		t.Errorf("len = %d, want 1", len(notes))
	}
}

func TestDeleteNote_Propagates(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{deleteErr: note.NotFound("ghost")}
	svc := app.NewNoteService(repo, nil, nil)

	if err := svc.DeleteNote(context.Background(), "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	repo2 := &fakeRepo{}
	svc2 := app.NewNoteService(repo2, nil, nil)
	if err := svc2.DeleteNote(context.Background(), "note-1"); err != nil {
		t.Errorf("DeleteNote() error = %v", err)
	}
	if len(repo2.deleteCalls) != 1 || repo2.deleteCalls[0] != "note-1" {
		t.Errorf("deleteCalls = %v", repo2.deleteCalls)
	}
}
