package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestSQLiteRepositoryGetMissingKey(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)

	value, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestSQLiteRepositorySetOverwrites(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v1")))
	require.NoError(t, repo.Set(ctx, "k", []byte("v2")))

	value, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), value)
}

func TestSQLiteRepositoryDeleteIsIdempotent(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v")))
	require.NoError(t, repo.Delete(ctx, "k"))
	require.NoError(t, repo.Delete(ctx, "k"))

	value, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestSQLiteRepositoryClear(t *testing.T) {
	db := setupDB(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", []byte("1")))
	require.NoError(t, repo.Set(ctx, "b", []byte("2")))
	require.NoError(t, repo.Clear(ctx))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	require.Equal(t, 0, n)
}

func TestOpenDatabaseAppliesMigrations(t *testing.T) {
	db, err := OpenDatabase(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(context.Background(), "k", []byte("v")))
}
