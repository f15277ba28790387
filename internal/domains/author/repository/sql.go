package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/shared/apperror"
)

// sqlRepository implements author.Repository on top of the shared Store.
// Calls made with a transactional context join that transaction.
type sqlRepository struct {
	store *database.Store
}

// NewSQLRepository creates a new author repository instance
func NewSQLRepository(store *database.Store) author.Repository {
	return &sqlRepository{store: store}
}

var authorColumns = []string{"id", "name"}

// FindAll returns every author ordered by id
func (r *sqlRepository) FindAll(ctx context.Context) ([]author.Author, error) {
	rows, err := r.store.Query(ctx, r.store.Builder().
		Select(authorColumns...).
		From(database.AuthorsTable).
		OrderBy("id ASC"))
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// FindByID retrieves author by id
func (r *sqlRepository) FindByID(ctx context.Context, id int64) (*author.Author, bool, error) {
	row, err := r.store.QueryRow(ctx, r.store.Builder().
		Select(authorColumns...).
		From(database.AuthorsTable).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, false, err
	}

	var a author.Author
	if err := row.Scan(&a.ID, &a.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get author: %w", err)
	}
	return &a, true, nil
}

func (r *sqlRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.store.ExistsByID(ctx, database.AuthorsTable, id)
}

// Save inserts a new author (ID == 0) or replaces the row with the same id
func (r *sqlRepository) Save(ctx context.Context, a *author.Author) (*author.Author, error) {
	saved := *a

	if saved.ID == 0 {
		id, err := r.store.InsertReturningID(ctx, r.store.Builder().
			Insert(database.AuthorsTable).
			Columns("name").
			Values(saved.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to create author: %w", err)
		}
		saved.ID = id
		return &saved, nil
	}

	affected, err := r.store.Update(ctx, r.store.Builder().
		Update(database.AuthorsTable).
		Set("name", saved.Name).
		Where(sq.Eq{"id": saved.ID}))
	if err != nil {
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	if affected == 0 {
		return nil, apperror.EntityNotFound(author.Kind, saved.ID)
	}
	return &saved, nil
}

func (r *sqlRepository) DeleteByID(ctx context.Context, id int64) error {
	affected, err := r.store.DeleteByID(ctx, database.AuthorsTable, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.EntityNotFound(author.Kind, id)
	}
	return nil
}
