package pgstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotestlab/gotestlab/internal/config"
	"github.com/gotestlab/gotestlab/internal/notes"
	"github.com/gotestlab/gotestlab/internal/testutil"
)

func testDBConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Host:            testutil.EnvOrDefault("DB_HOST", "localhost"),
		Port:            5432,
		User:            testutil.EnvOrDefault("DB_USER", "notes"),
		Password:        testutil.EnvOrDefault("DB_PASSWORD", "notes_dev_password"),
		DBName:          testutil.EnvOrDefault("DB_NAME", "notes"),
		SSLMode:         "disable",
		ConnMaxLifetime: 5 * time.Minute,
	}
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	testutil.SkipIfNoPostgres(t)

	ctx := context.Background()
	store, err := New(ctx, testDBConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))

	t.Cleanup(func() {
		_, _ = store.pool.Exec(ctx, `TRUNCATE notes`)
		store.Close()
	})

	return store
}

func testNote(tags ...string) *notes.Note {
	return &notes.Note{
		ID:        uuid.NewString(),
		Title:     "integration",
		Body:      "stored in a real database",
		Tags:      tags,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	note := testNote("it")

	require.NoError(t, store.Create(ctx, note))

	got, err := store.Get(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)
	assert.Equal(t, note.Title, got.Title)
	assert.Equal(t, note.Body, got.Body)
	assert.Equal(t, note.Tags, got.Tags)
	assert.True(t, note.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_Get_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, notes.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	note := testNote()

	require.NoError(t, store.Create(ctx, note))
	require.NoError(t, store.Delete(ctx, note.ID))

	_, err := store.Get(ctx, note.ID)
	assert.ErrorIs(t, err, notes.ErrNotFound)
}

func TestStore_Delete_NotFound(t *testing.T) {
	store := setupTestStore(t)

	err := store.Delete(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, notes.ErrNotFound)
}

func TestStore_ListByTag(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	tagged := testNote("integration-tag")
	other := testNote("something-else")
	require.NoError(t, store.Create(ctx, tagged))
	require.NoError(t, store.Create(ctx, other))

	found, err := store.ListByTag(ctx, "integration-tag")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, tagged.ID, found[0].ID)
}

func TestNew_InvalidHost(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cfg := testDBConfig()
	cfg.Host = "no-such-host.invalid"

	_, err := New(ctx, cfg, nil)
	assert.Error(t, err)
}
