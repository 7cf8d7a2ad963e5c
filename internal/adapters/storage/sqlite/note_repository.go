// Package sqlite implements the note repository port on SQLite via
// database/sql and the mattn/go-sqlite3 driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dkarlsen/notes-service/internal/domain/note"
	"github.com/dkarlsen/notes-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.NoteRepository = (*NoteRepository)(nil)
	_ ports.HealthChecker  = (*NoteRepository)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id         TEXT PRIMARY KEY,
	owner      TEXT NOT NULL,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_notes_owner ON notes (owner, created_at DESC);
`

// NoteRepository stores notes in a SQLite database.
type NoteRepository struct {
	db *sql.DB
}

// Open connects to the SQLite database at path, applies connection pragmas,
// and ensures the schema exists. WAL journaling allows concurrent readers
// during writes; the busy timeout makes writers wait instead of failing
// immediately with SQLITE_BUSY.
func Open(path string, busyTimeout time.Duration) (*NoteRepository, error) {
	dsn := fmt.Sprintf("file:%s?%s", path, url.Values{
		"_journal_mode": {"WAL"},
		"_busy_timeout": {fmt.Sprintf("%d", busyTimeout.Milliseconds())},
		"_foreign_keys": {"on"},
	}.Encode())

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	// SQLite serializes writes; a single connection avoids lock contention
	// between pooled connections in the same process.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &NoteRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *NoteRepository) Close() error {
	return r.db.Close()
}

// FindByID returns the note with the given ID, or domain.ErrNotFound.
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*note.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, owner, title, content, created_at, updated_at FROM notes WHERE id = ?`, id)

	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, note.NotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying note %s: %w", id, err)
	}
	return n, nil
}

// ListByOwner returns the owner's notes, newest first.
func (r *NoteRepository) ListByOwner(ctx context.Context, owner string) ([]note.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner, title, content, created_at, updated_at
		 FROM notes WHERE owner = ? ORDER BY created_at DESC, id`, owner)
	if err != nil {
		return nil, fmt.Errorf("listing notes for %s: %w", owner, err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning note row: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating note rows: %w", err)
	}
	return notes, nil
}

// Create inserts a new note. The caller assigns ID and timestamps.
func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, owner, title, content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID, n.Owner, n.Title, n.Content, n.CreatedAt.UTC(), n.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting note %s: %w", n.ID, err)
	}
	return nil
}

// Update overwrites title and content in a single statement and returns the
// stored entity. Returns domain.ErrNotFound when no row matches.
func (r *NoteRepository) Update(ctx context.Context, id, title, content string) (*note.Note, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, now, id)
	if err != nil {
		return nil, fmt.Errorf("updating note %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update of note %s: %w", id, err)
	}
	if affected == 0 {
		return nil, note.NotFound(id)
	}

	return r.FindByID(ctx, id)
}

// Delete removes a note by ID. Returns domain.ErrNotFound when no row matches.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting note %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete of note %s: %w", id, err)
	}
	if affected == 0 {
		return note.NotFound(id)
	}
	return nil
}

// Name identifies this component in readiness results.
func (r *NoteRepository) Name() string {
	return "database"
}

// HealthCheck pings the database.
func (r *NoteRepository) HealthCheck(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanNote.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(s scanner) (*note.Note, error) {
	var n note.Note
	if err := s.Scan(&n.ID, &n.Owner, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	n.CreatedAt = n.CreatedAt.UTC()
	n.UpdatedAt = n.UpdatedAt.UTC()
	return &n, nil
}
