package book

import (
	"context"

	"catalog-backend/internal/validation"
)

const (
	Kind       = "Book"
	TitleLabel = "Book title"

	// Referenced kinds, as named in reference failures.
	AuthorKind   = "Author"
	CategoryKind = "Category"
)

// Book represents the core Book entity.
// AuthorID and CategoryID are optional; when set they must resolve at save time.
type Book struct {
	ID         int64  `json:"id" db:"id"`
	Title      string `json:"title" db:"title"`
	Year       int    `json:"year" db:"year"`
	AuthorID   *int64 `json:"author_id" db:"author_id"`
	CategoryID *int64 `json:"category_id" db:"category_id"`
}

// NewValidator builds the book rule list. Order matters: title, then author
// reference, then category reference. The first failure wins.
func NewValidator(authors, categories validation.ExistenceChecker, policy validation.LengthPolicy) *validation.Validator[Book] {
	return validation.New(
		validation.TextRule(TitleLabel, policy, func(b *Book) string { return b.Title }),
		validation.ReferenceRule(AuthorKind, authors, func(b *Book) *int64 { return b.AuthorID }),
		validation.ReferenceRule(CategoryKind, categories, func(b *Book) *int64 { return b.CategoryID }),
	)
}

// Repository defines the data access operations for books.
type Repository interface {
	// FindAll returns every book ordered by id.
	FindAll(ctx context.Context) ([]Book, error)
	FindByID(ctx context.Context, id int64) (*Book, bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save inserts when ID is zero, otherwise replaces every column of the stored row.
	Save(ctx context.Context, b *Book) (*Book, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Service defines the business operations for books.
// Create and Update check references and save in one transaction.
type Service interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	Create(ctx context.Context, b *Book) (*Book, error)
	Update(ctx context.Context, id int64, b *Book) (*Book, error)
	Delete(ctx context.Context, id int64) error
}
