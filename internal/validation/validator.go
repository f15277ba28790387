// Package validation holds the rules that decide whether an entity mutation
// is admissible before it reaches storage.
//
// A Validator is an ordered list of Rules. Rules run in the order they were
// given and the first failure is returned, so a cheap field rule placed first
// prevents the reference lookups behind it from running at all.
package validation

import (
	"context"

	"catalog-backend/internal/shared/apperror"
)

// Rule is a single check over a candidate entity. It returns nil when the
// candidate passes.
type Rule[T any] func(ctx context.Context, candidate *T) error

// Validator applies its rules in a fixed order, stopping at the first failure.
type Validator[T any] struct {
	rules []Rule[T]
}

// New builds a validator from rules in evaluation order.
func New[T any](rules ...Rule[T]) *Validator[T] {
	return &Validator[T]{rules: rules}
}

// Validate runs every rule until one fails.
func (v *Validator[T]) Validate(ctx context.Context, candidate *T) error {
	if candidate == nil {
		return apperror.InvalidData("entity cannot be null")
	}
	for _, rule := range v.rules {
		if err := rule(ctx, candidate); err != nil {
			return err
		}
	}
	return nil
}
