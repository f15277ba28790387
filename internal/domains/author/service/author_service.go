package service

import (
	"context"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/shared/apperror"
	"catalog-backend/internal/validation"
	pkgdb "catalog-backend/pkg/database"
)

// authorService implements author.Service
type authorService struct {
	repo      author.Repository
	validator *validation.Validator[author.Author]
	tx        pkgdb.Transactor
}

// NewAuthorService creates a new author service instance.
// A nil transactor runs every operation without a transaction.
func NewAuthorService(repo author.Repository, validator *validation.Validator[author.Author], tx pkgdb.Transactor) author.Service {
	if tx == nil {
		tx = pkgdb.NopTransactor{}
	}
	return &authorService{
		repo:      repo,
		validator: validator,
		tx:        tx,
	}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.FindAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	a, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.EntityNotFound(author.Kind, id)
	}
	return a, nil
}

func (s *authorService) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	if err := s.validator.Validate(ctx, a); err != nil {
		return nil, err
	}

	candidate := *a
	candidate.ID = 0
	return s.repo.Save(ctx, &candidate)
}

func (s *authorService) Update(ctx context.Context, id int64, a *author.Author) (*author.Author, error) {
	var saved *author.Author
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureExists(ctx, id); err != nil {
			return err
		}
		if err := s.validator.Validate(ctx, a); err != nil {
			return err
		}

		candidate := *a
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

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureExists(ctx, id); err != nil {
			return err
		}
		return s.repo.DeleteByID(ctx, id)
	})
}

func (s *authorService) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.EntityNotFound(author.Kind, id)
	}
	return nil
}
