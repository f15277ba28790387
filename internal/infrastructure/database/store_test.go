package database

import (
	"context"
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()

	db, err := OpenSQLite(context.Background(), "file::memory:")
	require.NoError(t, err)

	store := NewStore(db, SQLite)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func insertAuthor(t *testing.T, ctx context.Context, s *Store, name string) int64 {
	t.Helper()
	id, err := s.InsertReturningID(ctx, s.Builder().Insert(AuthorsTable).Columns("name").Values(name))
	require.NoError(t, err)
	return id
}

func countAuthors(t *testing.T, s *Store) int {
	t.Helper()
	row, err := s.QueryRow(context.Background(), s.Builder().Select("COUNT(*)").From(AuthorsTable))
	require.NoError(t, err)
	var n int
	require.NoError(t, row.Scan(&n))
	return n
}

func TestDialectFor(t *testing.T) {
	for _, name := range []string{"postgres", "pgx", "postgresql"} {
		d, err := DialectFor(name)
		require.NoError(t, err)
		assert.Equal(t, DriverPostgres, d.Name)
	}
	for _, name := range []string{"sqlite3", "sqlite"} {
		d, err := DialectFor(name)
		require.NoError(t, err)
		assert.Equal(t, DriverSQLite, d.Name)
	}

	_, err := DialectFor("oracle")
	assert.Error(t, err)
}

func TestStore_MigrateIsIdempotent(t *testing.T) {
	s := newSQLiteStore(t)
	assert.NoError(t, s.Migrate(context.Background()))
}

func TestStore_ExistsAndDelete(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	id := insertAuthor(t, ctx, s, "Ada")

	exists, err := s.ExistsByID(ctx, AuthorsTable, id)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.ExistsByID(ctx, AuthorsTable, id+1)
	require.NoError(t, err)
	assert.False(t, exists)

	affected, err := s.DeleteByID(ctx, AuthorsTable, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = s.DeleteByID(ctx, AuthorsTable, id)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestStore_UpdateReportsAffectedRows(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	id := insertAuthor(t, ctx, s, "Ada")

	affected, err := s.Update(ctx, s.Builder().Update(AuthorsTable).Set("name", "Ada Lovelace").Where(sq.Eq{"id": id}))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = s.Update(ctx, s.Builder().Update(AuthorsTable).Set("name", "Nobody").Where(sq.Eq{"id": id + 10}))
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestStore_WithinTxCommits(t *testing.T) {
	s := newSQLiteStore(t)

	err := s.WithinTx(context.Background(), func(ctx context.Context) error {
		assert.True(t, s.InTx(ctx))
		insertAuthor(t, ctx, s, "Ada")

		exists, err := s.ExistsByID(ctx, AuthorsTable, 1)
		require.NoError(t, err)
		assert.True(t, exists)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countAuthors(t, s))
}

func TestStore_WithinTxRollsBack(t *testing.T) {
	s := newSQLiteStore(t)
	boom := errors.New("boom")

	err := s.WithinTx(context.Background(), func(ctx context.Context) error {
		insertAuthor(t, ctx, s, "Ada")

		// Nested calls join the outer transaction.
		return s.WithinTx(ctx, func(ctx context.Context) error {
			insertAuthor(t, ctx, s, "Brian")
			return boom
		})
	})
	require.ErrorIs(t, err, boom)

	assert.Zero(t, countAuthors(t, s))
}

func TestStore_WithinTxRollsBackOnPanic(t *testing.T) {
	s := newSQLiteStore(t)

	assert.Panics(t, func() {
		_ = s.WithinTx(context.Background(), func(ctx context.Context) error {
			insertAuthor(t, ctx, s, "Ada")
			panic("unexpected")
		})
	})

	assert.Zero(t, countAuthors(t, s))
}

func TestStore_OutsideTx(t *testing.T) {
	s := newSQLiteStore(t)
	assert.False(t, s.InTx(context.Background()))
	assert.NoError(t, s.Ping(context.Background()))
}
