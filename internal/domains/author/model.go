package author

import (
	"context"

	"catalog-backend/internal/validation"
)

// Kind names the entity in error messages.
const Kind = "Author"

// NameLabel is the field label used by the name rule.
const NameLabel = "Author name"

// Author represents the core Author entity.
// ID is zero until the first save assigns it.
type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// NewValidator builds the author rule list: a single name rule.
func NewValidator(policy validation.LengthPolicy) *validation.Validator[Author] {
	return validation.New(
		validation.TextRule(NameLabel, policy, func(a *Author) string { return a.Name }),
	)
}

// Repository defines the data access operations for authors.
type Repository interface {
	// FindAll returns every author in storage order (by id).
	FindAll(ctx context.Context) ([]Author, error)

	// FindByID reports found=false when no author has the id.
	FindByID(ctx context.Context, id int64) (*Author, bool, error)

	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Save inserts when ID is zero, otherwise replaces the stored row.
	Save(ctx context.Context, a *Author) (*Author, error)

	DeleteByID(ctx context.Context, id int64) error
}

// Service defines the business operations for authors.
type Service interface {
	List(ctx context.Context) ([]Author, error)

	// GetByID fails with NotFound when absent.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// Create validates, discards any client id and persists.
	Create(ctx context.Context, a *Author) (*Author, error)

	// Update checks existence first, then validates and replaces by id.
	Update(ctx context.Context, id int64, a *Author) (*Author, error)

	// Delete checks existence, then deletes. Books pointing at the author are left as they are.
	Delete(ctx context.Context, id int64) error
}
