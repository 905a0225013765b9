package notes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gotestlab/gotestlab/internal/metrics"
	"github.com/gotestlab/gotestlab/pkg/logger"
)

// Clock returns the current time. Services use it instead of calling
// time.Now directly so tests can pin the clock.
type Clock func() time.Time

// Service coordinates note operations on top of a Store.
type Service struct {
	store Store
	log   *logger.Logger
	now   Clock
}

// NewService creates a Service over the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		log:   logger.NewNop(),
		now:   time.Now,
	}
}

// WithLogger replaces the service logger.
func (s *Service) WithLogger(log *logger.Logger) *Service {
	s.log = log
	return s
}

// WithClock replaces the service clock. Intended for tests.
func (s *Service) WithClock(now Clock) *Service {
	s.now = now
	return s
}

// Create validates and stores a new note, returning it with its
// generated ID.
func (s *Service) Create(ctx context.Context, title, body string, tags ...string) (*Note, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	if title == "" {
		title = firstLine(body)
	}

	note := &Note{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      body,
		Tags:      tags,
		CreatedAt: s.now().UTC(),
	}

	if err := s.store.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	metrics.RecordNoteCreated()
	s.log.Info("note created", "id", note.ID, "title", note.Title)
	return note, nil
}

// Get retrieves a note by ID.
func (s *Service) Get(ctx context.Context, id string) (*Note, error) {
	note, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note %s: %w", id, err)
	}
	return note, nil
}

// Delete removes a note by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	metrics.RecordNoteDeleted()
	s.log.Info("note deleted", "id", id)
	return nil
}

// Tagged returns all notes carrying the given tag.
func (s *Service) Tagged(ctx context.Context, tag string) ([]*Note, error) {
	found, err := s.store.ListByTag(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("list notes tagged %q: %w", tag, err)
	}
	return found, nil
}

// firstLine returns the first line of body, truncated to 60 bytes.
func firstLine(body string) string {
	line := body
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if len(line) > 60 {
		line = line[:60]
	}
	return strings.TrimSpace(line)
}
