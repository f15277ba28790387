package database

import "context"

// Transactor runs fn as one unit of work. Calls made with the context passed
// to fn take part in the same transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NopTransactor runs fn directly, without a transaction.
type NopTransactor struct{}

func (NopTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
