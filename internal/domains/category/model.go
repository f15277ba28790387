package category

import (
	"context"

	"catalog-backend/internal/validation"
)

const (
	Kind      = "Category"
	NameLabel = "Category name"
)

// Category groups books by subject.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// NewValidator builds the category rule list: a single name rule.
func NewValidator(policy validation.LengthPolicy) *validation.Validator[Category] {
	return validation.New(
		validation.TextRule(NameLabel, policy, func(cat *Category) string { return cat.Name }),
	)
}

// Repository defines the data access operations for categories.
type Repository interface {
	FindAll(ctx context.Context) ([]Category, error)

	// FindByID reports found=false when no category has the id.
	FindByID(ctx context.Context, id int64) (*Category, bool, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save inserts when ID is zero, otherwise replaces the stored row.
	Save(ctx context.Context, cat *Category) (*Category, error)

	DeleteByID(ctx context.Context, id int64) error
}

// Service mirrors author.Service for categories.
type Service interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Create(ctx context.Context, cat *Category) (*Category, error)
	Update(ctx context.Context, id int64, cat *Category) (*Category, error)

	// Delete checks existence, then deletes. Books pointing at the category are left as they are.
	Delete(ctx context.Context, id int64) error
}
