package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldus-browser/aldus/pkg/extview"
)

func openTestDB(t *testing.T) *GeometryRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewConnection(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	return NewGeometryRepository(db)
}

func TestGeometryRoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	_, ok, err := repo.Load(ctx, "ext-a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Save(ctx, "ext-a", extview.Size{Width: 320, Height: 480}))

	size, ok, err := repo.Load(ctx, "ext-a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, extview.Size{Width: 320, Height: 480}, size)
}

func TestGeometrySaveOverwrites(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "ext-a", extview.Size{Width: 100, Height: 100}))
	require.NoError(t, repo.Save(ctx, "ext-a", extview.Size{Width: 200, Height: 250}))

	size, ok, err := repo.Load(ctx, "ext-a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, extview.Size{Width: 200, Height: 250}, size)
}

func TestGeometryDelete(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "ext-a", extview.Size{Width: 100, Height: 100}))
	require.NoError(t, repo.Delete(ctx, "ext-a"))

	_, ok, err := repo.Load(ctx, "ext-a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGeometryIsPerExtension(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "ext-a", extview.Size{Width: 100, Height: 100}))
	require.NoError(t, repo.Save(ctx, "ext-b", extview.Size{Width: 300, Height: 400}))

	sizeA, ok, err := repo.Load(ctx, "ext-a")
	require.NoError(t, err)
	require.True(t, ok)
	sizeB, ok, err := repo.Load(ctx, "ext-b")
	require.NoError(t, err)
	require.True(t, ok)

	assert.NotEqual(t, sizeA, sizeB)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	db, err := NewConnection(ctx, dbPath)
	require.NoError(t, err)

	// A second migration run against the same database must be a no-op.
	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, Close(db))
}
