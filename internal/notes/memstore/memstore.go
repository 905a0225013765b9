// Package memstore provides an in-memory notes.Store used by tests
// and examples.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/gotestlab/gotestlab/internal/notes"
)

// Store implements notes.Store with a mutex-guarded map.
type Store struct {
	mu    sync.RWMutex
	notes map[string]*notes.Note
}

var _ notes.Store = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{notes: make(map[string]*notes.Note)}
}

// Create persists a new note.
func (s *Store) Create(_ context.Context, note *notes.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notes[note.ID]; exists {
		return fmt.Errorf("note %s already exists", note.ID)
	}
	s.notes[note.ID] = copyNote(note)
	return nil
}

// Get retrieves a note by ID.
func (s *Store) Get(_ context.Context, id string) (*notes.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.notes[id]
	if !ok {
		return nil, notes.ErrNotFound
	}
	return copyNote(note), nil
}

// Delete removes a note by ID.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return notes.ErrNotFound
	}
	delete(s.notes, id)
	return nil
}

// ListByTag returns all notes carrying the given tag.
func (s *Store) ListByTag(_ context.Context, tag string) ([]*notes.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []*notes.Note
	for _, note := range s.notes {
		for _, t := range note.Tags {
			if t == tag {
				found = append(found, copyNote(note))
				break
			}
		}
	}
	return found, nil
}

// Len returns the number of stored notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// copyNote returns a deep copy so callers cannot mutate stored state.
func copyNote(n *notes.Note) *notes.Note {
	c := *n
	if n.Tags != nil {
		c.Tags = append([]string(nil), n.Tags...)
	}
	return &c
}
