package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkarlsen/notes-service/internal/adapters/storage/sqlite"
	"github.com/dkarlsen/notes-service/internal/domain"
	"github.com/dkarlsen/notes-service/internal/domain/note"
)

func openRepo(t *testing.T) *sqlite.NoteRepository {
	t.Helper()
	repo, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func seed(t *testing.T, repo *sqlite.NoteRepository, id, owner string, createdAt time.Time) *note.Note {
	t.Helper()
	n := &note.Note{
		ID:        id,
		Owner:     owner,
		Title:     "Title " + id,
		Content:   "Content " + id,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func TestNoteRepository_CreateAndFind(t *testing.T) {
	t.Parallel()
	repo := openRepo(t)
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	created := seed(t, repo, "n1", "ada", ts)

	found, err := repo.FindByID(context.Background(), "n1")
	require.NoError(t, err)
	require.Equal(t, created.Title, found.Title)
	require.Equal(t, created.Content, found.Content)
	require.Equal(t, "ada", found.Owner)
	require.True(t, found.CreatedAt.Equal(ts), "CreatedAt = %v, want %v", found.CreatedAt, ts)
}

func TestNoteRepository_FindMissing(t *testing.T) {
	t.Parallel()
	repo := openRepo(t)

	_, err := repo.FindByID(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Equal(t, `No note with the id "ghost" exists.`, err.Error())
}

func TestNoteRepository_Update(t *testing.T) {
	t.Parallel()
	repo := openRepo(t)
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seed(t, repo, "n1", "ada", ts)

	updated, err := repo.Update(context.Background(), "n1", "New title", "New content")
	require.NoError(t, err)
	require.Equal(t, "New title", updated.Title)
	require.Equal(t, "New content", updated.Content)
	require.True(t, updated.UpdatedAt.After(ts), "UpdatedAt not refreshed")
	require.True(t, updated.CreatedAt.Equal(ts), "CreatedAt must not change")
}

func TestNoteRepository_UpdateMissing(t *testing.T) {
	t.Parallel()
	repo := openRepo(t)

	_, err := repo.Update(context.Background(), "ghost", "t", "c")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteRepository_ListByOwnerNewestFirst(t *testing.T) {
	t.Parallel()
	repo := openRepo(t)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	seed(t, repo, "old", "ada", base)
	seed(t, repo, "new", "ada", base.Add(time.Hour))
	seed(t, repo, "other", "bob", base)

	notes, err := repo.ListByOwner(context.Background(), "ada")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, "new", notes[0].ID)
	require.Equal(t, "old", notes[1].ID)
}

func TestNoteRepository_ListEmptyOwner(t *testing.T) {
	t.Parallel()
	repo := openRepo(t)

	notes, err := repo.ListByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, notes)
	require.Empty(t, notes)
}

func TestNoteRepository_Delete(t *testing.T) {
	t.Parallel()
	repo := openRepo(t)
	seed(t, repo, "n1", "ada", time.Now().UTC())

	require.NoError(t, repo.Delete(context.Background(), "n1"))

	_, err := repo.FindByID(context.Background(), "n1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	var nfe *domain.NotFoundError
	err = repo.Delete(context.Background(), "n1")
	require.True(t, errors.As(err, &nfe), "error = %T", err)
}

func TestNoteRepository_HealthCheck(t *testing.T) {
	t.Parallel()
	repo := openRepo(t)

	require.Equal(t, "database", repo.Name())
	require.NoError(t, repo.HealthCheck(context.Background()))
}
