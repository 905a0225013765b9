// Package sqlstore persists notes through database/sql. It works with
// any registered driver and is exercised in tests with sqlmock.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gotestlab/gotestlab/internal/metrics"
	"github.com/gotestlab/gotestlab/internal/notes"
)

const (
	insertQuery = `INSERT INTO notes (id, title, body, tags, created_at, archived) VALUES ($1, $2, $3, $4, $5, $6)`
	selectQuery = `SELECT id, title, body, tags, created_at, archived FROM notes WHERE id = $1`
	deleteQuery = `DELETE FROM notes WHERE id = $1`
	tagQuery    = `SELECT id, title, body, tags, created_at, archived FROM notes WHERE ',' || tags || ',' LIKE '%,' || $1 || ',%'`
)

// Store implements notes.Store over an *sql.DB.
// Tags are stored comma-joined in a single text column.
type Store struct {
	db *sql.DB
}

var _ notes.Store = (*Store)(nil)

// New creates a Store over an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create persists a new note.
func (s *Store) Create(ctx context.Context, note *notes.Note) error {
	defer observe("create", time.Now())

	_, err := s.db.ExecContext(ctx, insertQuery,
		note.ID, note.Title, note.Body, strings.Join(note.Tags, ","),
		note.CreatedAt, note.Archived)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// Get retrieves a note by ID.
func (s *Store) Get(ctx context.Context, id string) (*notes.Note, error) {
	defer observe("get", time.Now())

	row := s.db.QueryRowContext(ctx, selectQuery, id)
	note, err := scanNote(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notes.ErrNotFound
		}
		return nil, fmt.Errorf("select note: %w", err)
	}
	return note, nil
}

// Delete removes a note by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	defer observe("delete", time.Now())

	result, err := s.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return notes.ErrNotFound
	}
	return nil
}

// ListByTag returns all notes carrying the given tag.
func (s *Store) ListByTag(ctx context.Context, tag string) ([]*notes.Note, error) {
	defer observe("list_by_tag", time.Now())

	rows, err := s.db.QueryContext(ctx, tagQuery, tag)
	if err != nil {
		return nil, fmt.Errorf("select notes by tag: %w", err)
	}
	defer rows.Close()

	var found []*notes.Note
	for rows.Next() {
		note, err := scanNote(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		found = append(found, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return found, nil
}

// scanNote reads one note row through the given scan function.
func scanNote(scan func(dest ...any) error) (*notes.Note, error) {
	var note notes.Note
	var tags string
	if err := scan(&note.ID, &note.Title, &note.Body, &tags,
		&note.CreatedAt, &note.Archived); err != nil {
		return nil, err
	}
	if tags != "" {
		note.Tags = strings.Split(tags, ",")
	}
	return &note, nil
}

// observe records query latency for the given operation.
func observe(operation string, start time.Time) {
	metrics.RecordStoreQuery(operation, time.Since(start))
}
