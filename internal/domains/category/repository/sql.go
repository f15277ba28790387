package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/shared/apperror"
)

// sqlRepository implements category.Repository on top of the shared Store.
// Calls made with a transactional context join that transaction.
type sqlRepository struct {
	store *database.Store
}

// NewSQLRepository creates a new category repository instance
func NewSQLRepository(store *database.Store) category.Repository {
	return &sqlRepository{store: store}
}

var categoryColumns = []string{"id", "name"}

// FindAll returns every category ordered by id
func (r *sqlRepository) FindAll(ctx context.Context) ([]category.Category, error) {
	rows, err := r.store.Query(ctx, r.store.Builder().
		Select(categoryColumns...).
		From(database.CategoriesTable).
		OrderBy("id ASC"))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		var cat category.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// FindByID retrieves category by id
func (r *sqlRepository) FindByID(ctx context.Context, id int64) (*category.Category, bool, error) {
	row, err := r.store.QueryRow(ctx, r.store.Builder().
		Select(categoryColumns...).
		From(database.CategoriesTable).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, false, err
	}

	var cat category.Category
	if err := row.Scan(&cat.ID, &cat.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get category: %w", err)
	}
	return &cat, true, nil
}

func (r *sqlRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.store.ExistsByID(ctx, database.CategoriesTable, id)
}

// Save inserts a new category (ID == 0) or replaces the row with the same id
func (r *sqlRepository) Save(ctx context.Context, cat *category.Category) (*category.Category, error) {
	saved := *cat

	if saved.ID == 0 {
		id, err := r.store.InsertReturningID(ctx, r.store.Builder().
			Insert(database.CategoriesTable).
			Columns("name").
			Values(saved.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to create category: %w", err)
		}
		saved.ID = id
		return &saved, nil
	}

	affected, err := r.store.Update(ctx, r.store.Builder().
		Update(database.CategoriesTable).
		Set("name", saved.Name).
		Where(sq.Eq{"id": saved.ID}))
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	if affected == 0 {
		return nil, apperror.EntityNotFound(category.Kind, saved.ID)
	}
	return &saved, nil
}

func (r *sqlRepository) DeleteByID(ctx context.Context, id int64) error {
	affected, err := r.store.DeleteByID(ctx, database.CategoriesTable, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.EntityNotFound(category.Kind, id)
	}
	return nil
}
