// Package dbtest opens throwaway stores for repository and handler tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"catalog-backend/internal/infrastructure/database"
)

// NewSQLiteStore returns a migrated in-memory store closed at test cleanup.
func NewSQLiteStore(t testing.TB) *database.Store {
	t.Helper()

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, "file::memory:")
	require.NoError(t, err)

	store := database.NewStore(db, database.SQLite)
	require.NoError(t, store.Migrate(ctx))

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
