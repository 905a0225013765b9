// Package notes implements a small note-keeping domain. It exists to
// give the example suites something realistic to test: a model, a
// storage interface with several backends, and a service composing
// them.
package notes

import (
	"context"
	"errors"
	"time"
)

// Common errors
var (
	// ErrNotFound is returned when a note does not exist.
	ErrNotFound = errors.New("note not found")

	// ErrEmptyBody is returned when a note is created without content.
	ErrEmptyBody = errors.New("note body is empty")
)

// Note is a single stored note.
type Note struct {
	ID        string
	Title     string
	Body      string
	Tags      []string
	CreatedAt time.Time
	Archived  bool
}

// Store defines persistence for notes.
type Store interface {
	// Create persists a new note.
	Create(ctx context.Context, note *Note) error

	// Get retrieves a note by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id string) (*Note, error)

	// Delete removes a note by ID. Returns ErrNotFound if missing.
	Delete(ctx context.Context, id string) error

	// ListByTag returns all notes carrying the given tag.
	ListByTag(ctx context.Context, tag string) ([]*Note, error)
}
