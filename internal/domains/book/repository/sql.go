package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/shared/apperror"
)

type sqlRepository struct {
	store *database.Store
}

// NewSQLRepository creates a new book repository instance
func NewSQLRepository(store *database.Store) book.Repository {
	return &sqlRepository{store: store}
}

var bookColumns = []string{"id", "title", "year", "author_id", "category_id"}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (book.Book, error) {
	var (
		b          book.Book
		authorID   sql.NullInt64
		categoryID sql.NullInt64
	)
	if err := row.Scan(&b.ID, &b.Title, &b.Year, &authorID, &categoryID); err != nil {
		return book.Book{}, err
	}
	if authorID.Valid {
		b.AuthorID = &authorID.Int64
	}
	if categoryID.Valid {
		b.CategoryID = &categoryID.Int64
	}
	return b, nil
}

func (r *sqlRepository) FindAll(ctx context.Context) ([]book.Book, error) {
	rows, err := r.store.Query(ctx, r.store.Builder().
		Select(bookColumns...).
		From(database.BooksTable).
		OrderBy("id ASC"))
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *sqlRepository) FindByID(ctx context.Context, id int64) (*book.Book, bool, error) {
	row, err := r.store.QueryRow(ctx, r.store.Builder().
		Select(bookColumns...).
		From(database.BooksTable).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, false, err
	}

	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get book: %w", err)
	}
	return &b, true, nil
}

func (r *sqlRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.store.ExistsByID(ctx, database.BooksTable, id)
}

// Save inserts when ID is zero. Otherwise every column is overwritten,
// including references cleared to NULL.
func (r *sqlRepository) Save(ctx context.Context, b *book.Book) (*book.Book, error) {
	saved := *b

	if saved.ID == 0 {
		id, err := r.store.InsertReturningID(ctx, r.store.Builder().
			Insert(database.BooksTable).
			Columns("title", "year", "author_id", "category_id").
			Values(saved.Title, saved.Year, saved.AuthorID, saved.CategoryID))
		if err != nil {
			return nil, fmt.Errorf("failed to create book: %w", err)
		}
		saved.ID = id
		return &saved, nil
	}

	affected, err := r.store.Update(ctx, r.store.Builder().
		Update(database.BooksTable).
		SetMap(map[string]any{
			"title":       saved.Title,
			"year":        saved.Year,
			"author_id":   saved.AuthorID,
			"category_id": saved.CategoryID,
		}).
		Where(sq.Eq{"id": saved.ID}))
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if affected == 0 {
		return nil, apperror.EntityNotFound(book.Kind, saved.ID)
	}
	return &saved, nil
}

func (r *sqlRepository) DeleteByID(ctx context.Context, id int64) error {
	affected, err := r.store.DeleteByID(ctx, database.BooksTable, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.EntityNotFound(book.Kind, id)
	}
	return nil
}
