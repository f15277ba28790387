package service

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/author"
	authorrepo "catalog-backend/internal/domains/author/repository"
	"catalog-backend/internal/domains/book"
	bookrepo "catalog-backend/internal/domains/book/repository"
	"catalog-backend/internal/domains/category"
	categoryrepo "catalog-backend/internal/domains/category/repository"
	"catalog-backend/internal/infrastructure/database/dbtest"
	"catalog-backend/internal/shared/apperror"
	"catalog-backend/internal/validation"
)

// lookups records existence queries against a fixed set of ids.
type lookups struct {
	ids   map[int64]bool
	calls []int64
	err   error
}

func (l *lookups) ExistsByID(_ context.Context, id int64) (bool, error) {
	l.calls = append(l.calls, id)
	if l.err != nil {
		return false, l.err
	}
	return l.ids[id], nil
}

func newLookups(ids ...int64) *lookups {
	return &lookups{ids: lo.SliceToMap(ids, func(id int64) (int64, bool) { return id, true })}
}

func TestBookService_CreateValidatesInOrder(t *testing.T) {
	tests := []struct {
		name          string
		candidate     book.Book
		wantMessage   string
		authorCalls   int
		categoryCalls int
	}{
		{
			name:        "empty title skips lookups",
			candidate:   book.Book{Title: "", Year: 2008, AuthorID: lo.ToPtr(int64(1)), CategoryID: lo.ToPtr(int64(1))},
			wantMessage: "Book title cannot be empty",
		},
		{
			name:        "missing author skips category lookup",
			candidate:   book.Book{Title: "Orphan", Year: 2020, AuthorID: lo.ToPtr(int64(999)), CategoryID: lo.ToPtr(int64(1))},
			wantMessage: "Author with id 999 does not exist",
			authorCalls: 1,
		},
		{
			name:          "missing category",
			candidate:     book.Book{Title: "Lost", AuthorID: lo.ToPtr(int64(1)), CategoryID: lo.ToPtr(int64(404))},
			wantMessage:   "Category with id 404 does not exist",
			authorCalls:   1,
			categoryCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authors, categories := newLookups(1), newLookups(1)
			repo := new(mockRepository)
			svc := NewBookService(repo, book.NewValidator(authors, categories, validation.StrictPolicy), nil)

			_, err := svc.Create(context.Background(), &tt.candidate)

			require.ErrorIs(t, err, apperror.ErrInvalidData)
			assert.Equal(t, tt.wantMessage, err.Error())
			assert.Len(t, authors.calls, tt.authorCalls)
			assert.Len(t, categories.calls, tt.categoryCalls)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestBookService_NullReferencesAreNotLookedUp(t *testing.T) {
	authors, categories := newLookups(), newLookups()
	repo := new(mockRepository)
	svc := NewBookService(repo, book.NewValidator(authors, categories, validation.StrictPolicy), nil)

	repo.On("Save", mock.Anything, &book.Book{Title: "Beowulf", Year: 1000}).
		Return(&book.Book{ID: 1, Title: "Beowulf", Year: 1000}, nil)

	created, err := svc.Create(context.Background(), &book.Book{ID: 12, Title: "Beowulf", Year: 1000})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Empty(t, authors.calls)
	assert.Empty(t, categories.calls)
	repo.AssertExpectations(t)
}

func TestBookService_LookupErrorsPropagate(t *testing.T) {
	boom := errors.New("connection refused")
	authors := &lookups{err: boom}
	repo := new(mockRepository)
	svc := NewBookService(repo, book.NewValidator(authors, newLookups(), validation.StrictPolicy), nil)

	_, err := svc.Create(context.Background(), &book.Book{Title: "Clean Code", AuthorID: lo.ToPtr(int64(1))})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, apperror.ErrInvalidData)
}

func TestBookService_UpdateMissingSkipsValidation(t *testing.T) {
	authors, categories := newLookups(), newLookups()
	repo := new(mockRepository)
	svc := NewBookService(repo, book.NewValidator(authors, categories, validation.StrictPolicy), nil)

	repo.On("ExistsByID", mock.Anything, int64(8)).Return(false, nil)

	_, err := svc.Update(context.Background(), 8, &book.Book{Title: "", AuthorID: lo.ToPtr(int64(999))})

	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "Book with id 8 not found", err.Error())
	assert.Empty(t, authors.calls)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBookService_DeleteMissingNeverDeletes(t *testing.T) {
	repo := new(mockRepository)
	svc := NewBookService(repo, book.NewValidator(newLookups(), newLookups(), validation.StrictPolicy), nil)

	repo.On("ExistsByID", mock.Anything, int64(12345)).Return(false, nil)

	err := svc.Delete(context.Background(), 12345)

	require.ErrorIs(t, err, apperror.ErrNotFound)
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	repo.AssertNumberOfCalls(t, "ExistsByID", 1)
}

func TestBookService_UpdateTwiceSameState(t *testing.T) {
	store := dbtest.NewSQLiteStore(t)
	ctx := context.Background()

	authors := authorrepo.NewSQLRepository(store)
	categories := categoryrepo.NewSQLRepository(store)
	books := bookrepo.NewSQLRepository(store)
	svc := NewBookService(books, book.NewValidator(authors, categories, validation.StrictPolicy), store)

	a1, err := authors.Save(ctx, &author.Author{Name: "Robert C. Martin"})
	require.NoError(t, err)
	a2, err := authors.Save(ctx, &author.Author{Name: "Martin Fowler"})
	require.NoError(t, err)
	c, err := categories.Save(ctx, &category.Category{Name: "Programming"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, &book.Book{Title: "Clean Code", Year: 2008, AuthorID: &a1.ID, CategoryID: &c.ID})
	require.NoError(t, err)

	payload := book.Book{Title: "Refactoring", Year: 2018, AuthorID: &a2.ID}
	var states []book.Book
	for range 2 {
		in := payload
		updated, err := svc.Update(ctx, created.ID, &in)
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)

		stored, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		states = append(states, *stored)
	}

	require.Len(t, states, 2)
	assert.Equal(t, states[0], states[1])
	assert.Equal(t, "Refactoring", states[1].Title)
	assert.Equal(t, 2018, states[1].Year)
	require.NotNil(t, states[1].AuthorID)
	assert.Equal(t, a2.ID, *states[1].AuthorID)
	assert.Nil(t, states[1].CategoryID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBookService_ScenarioOverSQLite(t *testing.T) {
	store := dbtest.NewSQLiteStore(t)
	ctx := context.Background()

	authors := authorrepo.NewSQLRepository(store)
	categories := categoryrepo.NewSQLRepository(store)
	svc := NewBookService(
		bookrepo.NewSQLRepository(store),
		book.NewValidator(authors, categories, validation.StrictPolicy),
		store,
	)

	a, err := authors.Save(ctx, &author.Author{Name: "Robert C. Martin"})
	require.NoError(t, err)
	c, err := categories.Save(ctx, &category.Category{Name: "Programming"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, &book.Book{Title: "Clean Code", Year: 2008, AuthorID: &a.ID, CategoryID: &c.ID})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 2008, created.Year)
	assert.Equal(t, a.ID, *created.AuthorID)
	assert.Equal(t, c.ID, *created.CategoryID)

	_, err = svc.Create(ctx, &book.Book{Title: "", Year: 2008, AuthorID: &a.ID, CategoryID: &c.ID})
	require.ErrorIs(t, err, apperror.ErrInvalidData)
	assert.Contains(t, err.Error(), "cannot be empty")

	_, err = svc.Create(ctx, &book.Book{Title: "Orphan", Year: 2020, AuthorID: lo.ToPtr(int64(999)), CategoryID: &c.ID})
	require.ErrorIs(t, err, apperror.ErrInvalidData)
	assert.Contains(t, err.Error(), "Author with id 999 does not exist")

	// Deleting the author leaves the existing book untouched.
	require.NoError(t, authors.DeleteByID(ctx, a.ID))
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, *got.AuthorID)

	// Re-saving it now fails the reference check.
	_, err = svc.Update(ctx, created.ID, got)
	require.ErrorIs(t, err, apperror.ErrInvalidData)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
