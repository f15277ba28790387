package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Table names shared by the repositories.
const (
	AuthorsTable    = "authors"
	CategoriesTable = "categories"
	BooksTable      = "books"
)

// schemaStatements declares no foreign keys. A book's author/category
// reference is checked when the book is saved; deleting the referenced row
// neither cascades nor is blocked.
func schemaStatements(d Dialect) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id %s,
			name TEXT NOT NULL
		)`, AuthorsTable, d.IdentityColumn),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id %s,
			name TEXT NOT NULL
		)`, CategoriesTable, d.IdentityColumn),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id %s,
			title TEXT NOT NULL,
			year INTEGER NOT NULL DEFAULT 0,
			author_id BIGINT NULL,
			category_id BIGINT NULL
		)`, BooksTable, d.IdentityColumn),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_books_author_id ON %s (author_id)`, BooksTable),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_books_category_id ON %s (category_id)`, BooksTable),
	}
}

// Migrate creates the catalog tables when they are missing.
func (s *Store) Migrate(ctx context.Context) error {
	return s.WithinTx(ctx, func(ctx context.Context) error {
		for _, stmt := range schemaStatements(s.dialect) {
			if _, err := s.Conn(ctx).ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		log.Info().Str("dialect", s.dialect.Name).Msg("[DATABASE] Schema is up to date")
		return nil
	})
}
