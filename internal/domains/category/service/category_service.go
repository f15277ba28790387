package service

import (
	"context"

	"catalog-backend/internal/domains/category"
	"catalog-backend/internal/shared/apperror"
	"catalog-backend/internal/validation"
	pkgdb "catalog-backend/pkg/database"
)

// categoryService implements category.Service
type categoryService struct {
	repo      category.Repository
	validator *validation.Validator[category.Category]
	tx        pkgdb.Transactor
}

// NewCategoryService creates a new category service instance.
// A nil transactor runs every operation without a transaction.
func NewCategoryService(repo category.Repository, validator *validation.Validator[category.Category], tx pkgdb.Transactor) category.Service {
	if tx == nil {
		tx = pkgdb.NopTransactor{}
	}
	return &categoryService{
		repo:      repo,
		validator: validator,
		tx:        tx,
	}
}

func (s *categoryService) List(ctx context.Context) ([]category.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	cat, found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.EntityNotFound(category.Kind, id)
	}
	return cat, nil
}

func (s *categoryService) Create(ctx context.Context, cat *category.Category) (*category.Category, error) {
	if err := s.validator.Validate(ctx, cat); err != nil {
		return nil, err
	}

	candidate := *cat
	candidate.ID = 0
	return s.repo.Save(ctx, &candidate)
}

func (s *categoryService) Update(ctx context.Context, id int64, cat *category.Category) (*category.Category, error) {
	var saved *category.Category
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureExists(ctx, id); err != nil {
			return err
		}
		if err := s.validator.Validate(ctx, cat); err != nil {
			return err
		}

		candidate := *cat
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

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.ensureExists(ctx, id); err != nil {
			return err
		}
		return s.repo.DeleteByID(ctx, id)
	})
}

func (s *categoryService) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.EntityNotFound(category.Kind, id)
	}
	return nil
}
