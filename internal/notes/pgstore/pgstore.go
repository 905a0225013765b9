// Package pgstore persists notes in PostgreSQL via pgx.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gotestlab/gotestlab/internal/config"
	"github.com/gotestlab/gotestlab/internal/notes"
	"github.com/gotestlab/gotestlab/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	body TEXT NOT NULL,
	tags TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL,
	archived BOOLEAN NOT NULL DEFAULT FALSE
)`

// Store implements notes.Store over a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

var _ notes.Store = (*Store)(nil)

// New connects to Postgres using cfg and verifies connectivity.
func New(ctx context.Context, cfg *config.DatabaseConfig, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NewNop()
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	log.Info("connected to postgres", "host", cfg.Host, "database", cfg.DBName)
	return &Store{pool: pool, log: log}, nil
}

// Migrate creates the notes table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create notes table: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Create persists a new note.
func (s *Store) Create(ctx context.Context, note *notes.Note) error {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO notes (id, title, body, tags, created_at, archived)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		note.ID, note.Title, note.Body, tags, note.CreatedAt, note.Archived)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// Get retrieves a note by ID.
func (s *Store) Get(ctx context.Context, id string) (*notes.Note, error) {
	var note notes.Note
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, body, tags, created_at, archived
		 FROM notes WHERE id = $1`, id).
		Scan(&note.ID, &note.Title, &note.Body, &note.Tags,
			&note.CreatedAt, &note.Archived)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notes.ErrNotFound
		}
		return nil, fmt.Errorf("select note: %w", err)
	}
	return &note, nil
}

// Delete removes a note by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notes.ErrNotFound
	}
	return nil
}

// ListByTag returns all notes carrying the given tag.
func (s *Store) ListByTag(ctx context.Context, tag string) ([]*notes.Note, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, body, tags, created_at, archived
		 FROM notes WHERE $1 = ANY(tags) ORDER BY created_at`, tag)
	if err != nil {
		return nil, fmt.Errorf("select notes by tag: %w", err)
	}
	defer rows.Close()

	var found []*notes.Note
	for rows.Next() {
		var note notes.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Body, &note.Tags,
			&note.CreatedAt, &note.Archived); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		found = append(found, &note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return found, nil
}
