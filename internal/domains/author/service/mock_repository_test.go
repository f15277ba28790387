package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"catalog-backend/internal/domains/author"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindAll(ctx context.Context) ([]author.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]author.Author), args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int64) (*author.Author, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*author.Author), args.Bool(1), args.Error(2)
}

func (m *mockRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) Save(ctx context.Context, a *author.Author) (*author.Author, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*author.Author), args.Error(1)
}

func (m *mockRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
