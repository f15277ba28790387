package validation

import (
	"context"
	"fmt"
	"strings"

	"catalog-backend/internal/shared/apperror"
)

// ExistenceChecker is the slice of a repository a reference rule needs.
type ExistenceChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// CheckReference passes when id is nil. Otherwise it asks checker whether the
// referenced entity exists and fails with InvalidData when it does not.
// Errors from the checker itself are returned wrapped, not as InvalidData.
func CheckReference(ctx context.Context, kind string, id *int64, checker ExistenceChecker) error {
	if id == nil {
		return nil
	}

	exists, err := checker.ExistsByID(ctx, *id)
	if err != nil {
		return fmt.Errorf("check %s reference: %w", strings.ToLower(kind), err)
	}
	if !exists {
		return apperror.InvalidData("%s with id %d does not exist", kind, *id)
	}
	return nil
}

// ReferenceRule lifts CheckReference into a Rule over the optional foreign key
// selected by field.
func ReferenceRule[T any](kind string, checker ExistenceChecker, field func(*T) *int64) Rule[T] {
	return func(ctx context.Context, candidate *T) error {
		return CheckReference(ctx, kind, field(candidate), checker)
	}
}
