package validation

import (
	"context"
	"fmt"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"catalog-backend/internal/shared/apperror"
)

// Length bounds of the strict name/title policy.
const (
	StrictMinLength = 2
	StrictMaxLength = 100
)

// Policy names accepted by ParsePolicy
const (
	PolicyStrict  = "strict"
	PolicyRelaxed = "relaxed"
)

// LengthPolicy bounds the trimmed rune length of a name or title.
// A zero Min or Max leaves that side unbounded; non-emptiness is always required.
type LengthPolicy struct {
	Min int
	Max int
}

var (
	// StrictPolicy: non-empty and 2..100 characters.
	StrictPolicy = LengthPolicy{Min: StrictMinLength, Max: StrictMaxLength}
	// RelaxedPolicy: non-empty, any length.
	RelaxedPolicy = LengthPolicy{}
)

// ParsePolicy maps a configuration value to a policy.
func ParsePolicy(name string) (LengthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyStrict:
		return StrictPolicy, nil
	case PolicyRelaxed:
		return RelaxedPolicy, nil
	default:
		return LengthPolicy{}, fmt.Errorf("unknown name policy %q", name)
	}
}

// Bounded reports whether the policy enforces any length bound.
func (p LengthPolicy) Bounded() bool {
	return p.Min > 0 || p.Max > 0
}

func (p LengthPolicy) boundsMessage(label string) string {
	switch {
	case p.Min > 0 && p.Max > 0:
		return fmt.Sprintf("%s must be between %d and %d characters", label, p.Min, p.Max)
	case p.Min > 0:
		return fmt.Sprintf("%s must be at least %d characters", label, p.Min)
	default:
		return fmt.Sprintf("%s must be at most %d characters", label, p.Max)
	}
}

// ValidateText checks a name or title: it must not be empty or whitespace-only,
// and its trimmed length must fit the policy. label names the field in the
// message, e.g. "Author name" or "Book title".
func ValidateText(value, label string, policy LengthPolicy) error {
	trimmed := strings.TrimSpace(value)

	rules := []ozzo.Rule{
		ozzo.Required.Error(label + " cannot be empty"),
	}
	if policy.Bounded() {
		rules = append(rules, ozzo.RuneLength(policy.Min, policy.Max).Error(policy.boundsMessage(label)))
	}

	if err := ozzo.Validate(trimmed, rules...); err != nil {
		return apperror.InvalidData("%s", err.Error())
	}
	return nil
}

// TextRule lifts ValidateText into a Rule over the field selected by field.
func TextRule[T any](label string, policy LengthPolicy, field func(*T) string) Rule[T] {
	return func(_ context.Context, candidate *T) error {
		return ValidateText(field(candidate), label, policy)
	}
}
