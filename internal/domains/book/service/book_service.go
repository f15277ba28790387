package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/shared/apperror"
	"catalog-backend/internal/validation"
	pkgdb "catalog-backend/pkg/database"
)

// bookService implements book.Service.
// Reference checks and the save share one transaction, so on Postgres a
// referenced author or category cannot be deleted in between.
type bookService struct {
	repo      book.Repository
	validator *validation.Validator[book.Book]
	tx        pkgdb.Transactor
}

func NewBookService(repo book.Repository, validator *validation.Validator[book.Book], tx pkgdb.Transactor) book.Service {
	if tx == nil {
		tx = pkgdb.NopTransactor{}
	}
	return &bookService{
		repo:      repo,
		validator: validator,
		tx:        tx,
	}
}

func (s *bookService) List(ctx context.Context) ([]book.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	b, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.EntityNotFound(book.Kind, id)
	}
	return b, nil
}

func (s *bookService) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	var saved *book.Book
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.validator.Validate(ctx, b); err != nil {
			return err
		}

		candidate := *b
		candidate.ID = 0
		var err error
		saved, err = s.repo.Save(ctx, &candidate)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Int64("book_id", saved.ID).Msg("Book created")
	return saved, nil
}

func (s *bookService) Update(ctx context.Context, id int64, b *book.Book) (*book.Book, error) {
	var saved *book.Book
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureExists(ctx, id); err != nil {
			return err
		}
		if err := s.validator.Validate(ctx, b); err != nil {
			return err
		}

		candidate := *b
		candidate.ID = id
		var err error
		saved, err = s.repo.Save(ctx, &candidate)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureExists(ctx, id); err != nil {
			return err
		}
		return s.repo.DeleteByID(ctx, id)
	})
}

func (s *bookService) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.EntityNotFound(book.Kind, id)
	}
	return nil
}
