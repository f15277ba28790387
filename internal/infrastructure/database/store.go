package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	pkgdb "catalog-backend/pkg/database"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// Store is the shared SQL access point for every repository. A transaction
// opened with WithinTx travels in the context, so repository calls made with
// that context join it.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Builder returns a squirrel builder using the dialect's placeholders.
func (s *Store) Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(s.dialect.Placeholder)
}

// Conn returns the transaction carried by ctx, or the pool.
func (s *Store) Conn(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

// InTx reports whether ctx carries a transaction.
func (s *Store) InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sql.Tx)
	return ok
}

// WithinTx runs fn inside a transaction. Nested calls join the outer one.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.InTx(ctx) {
		return fn(ctx)
	}
	return pkgdb.WithTransaction(ctx, s.db, func(tx *sql.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// Ping checks the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the *sql.DB handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ExistsByID checks for a row by primary key. Inside a transaction the row is
// share-locked (where the dialect supports it) until commit.
func (s *Store) ExistsByID(ctx context.Context, table string, id int64) (bool, error) {
	builder := s.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"id": id}).
		Limit(1)
	if s.InTx(ctx) && s.dialect.LockForShare != "" {
		builder = builder.Suffix(s.dialect.LockForShare)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var one int
	err = s.Conn(ctx).QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return true, nil
}

// DeleteByID deletes by primary key and reports the affected row count.
func (s *Store) DeleteByID(ctx context.Context, table string, id int64) (int64, error) {
	query, args, err := s.Builder().Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := s.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}

// InsertReturningID runs an insert whose statement ends in RETURNING id.
func (s *Store) InsertReturningID(ctx context.Context, insert sq.InsertBuilder) (int64, error) {
	query, args, err := insert.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}

	var id int64
	if err := s.Conn(ctx).QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert: %w", err)
	}
	return id, nil
}

// Update runs an update and reports the affected row count.
func (s *Store) Update(ctx context.Context, update sq.UpdateBuilder) (int64, error) {
	query, args, err := update.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := s.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}

// Query runs a select and returns its rows; the caller closes them.
func (s *Store) Query(ctx context.Context, sel sq.SelectBuilder) (*sql.Rows, error) {
	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}
	rows, err := s.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	return rows, nil
}

// QueryRow runs a single-row select.
func (s *Store) QueryRow(ctx context.Context, sel sq.SelectBuilder) (*sql.Row, error) {
	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}
	return s.Conn(ctx).QueryRowContext(ctx, query, args...), nil
}
