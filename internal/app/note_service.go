// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dkarlsen/notes-service/internal/domain/note"
	"github.com/dkarlsen/notes-service/internal/ports"
)

// Compile-time check that NoteService implements ports.NoteService.
var _ ports.NoteService = (*NoteService)(nil)

// NoteService implements ports.NoteService on top of a NoteRepository.
// Validation runs before any write, and each write is a single repository
// call, so a rejected submission never leaves partial state behind.
type NoteService struct {
	repo     ports.NoteRepository
	notifier ports.EventNotifier
	logger   *slog.Logger
}

// NewNoteService creates a NoteService. The notifier may be nil, in which
// case change events are not published.
func NewNoteService(repo ports.NoteRepository, notifier ports.EventNotifier, logger *slog.Logger) *NoteService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &NoteService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// ListNotes returns all notes belonging to the owner, newest first.
func (s *NoteService) ListNotes(ctx context.Context, owner string) ([]note.Note, error) {
	notes, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list notes",
			slog.String("operation", "ListNotes"),
			slog.String("owner", owner),
			slog.Any("error", err),
		)
		return nil, err
	}
	return notes, nil
}

// GetNote returns a single note by ID.
func (s *NoteService) GetNote(ctx context.Context, id string) (*note.Note, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch note",
			slog.String("operation", "GetNote"),
			slog.String("note_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return n, nil
}

// CreateNote validates the fields, assigns a fresh UUID, and stores the note.
func (s *NoteService) CreateNote(ctx context.Context, owner, title, content string) (*note.Note, error) {
	if err := note.ValidateFields(title, content); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	n := &note.Note{
		ID:        uuid.NewString(),
		Owner:     owner,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.ErrorContext(ctx, "failed to create note",
			slog.String("operation", "CreateNote"),
			slog.String("owner", owner),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "note created",
		slog.String("note_id", n.ID),
		slog.String("owner", owner),
	)
	return n, nil
}

// UpdateNote validates the submitted fields and applies the edit. Validation
// failure returns the *domain.ValidationResult before the repository is
// touched; a valid submission results in exactly one Update call.
func (s *NoteService) UpdateNote(ctx context.Context, id, title, content string) (*note.Note, error) {
	if err := note.ValidateFields(title, content); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, title, content)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update note",
			slog.String("operation", "UpdateNote"),
			slog.String("note_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "note updated", slog.String("note_id", id))
	s.publishUpdated(ctx, updated)

	return updated, nil
}

// DeleteNote removes a note by ID.
func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete note",
			slog.String("operation", "DeleteNote"),
			slog.String("note_id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "note deleted", slog.String("note_id", id))
	return nil
}

// publishUpdated sends a best-effort change event. Failures are logged and
// swallowed: the edit itself already succeeded.
func (s *NoteService) publishUpdated(ctx context.Context, n *note.Note) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NoteUpdated(ctx, n); err != nil {
		s.logger.WarnContext(ctx, "failed to publish note.updated event",
			slog.String("note_id", n.ID),
			slog.Any("error", err),
		)
	}
}
