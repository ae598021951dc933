package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/stratus/internal/identity/infrastructure/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *session.SQLiteStore {
	t.Helper()
	db, err := session.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "stratus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return session.NewSQLiteStore(db)
}

func TestSQLiteStore_Get_Empty(t *testing.T) {
	store := newSQLiteStore(t)

	token, err := store.Get(context.Background())

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok-123"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestSQLiteStore_Set_Upserts(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok-old"))
	require.NoError(t, store.Set(ctx, "tok-new"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)
}

func TestSQLiteStore_Clear_Idempotent(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok-123"))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}
