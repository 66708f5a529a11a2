package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/internal/mock"
	"github.com/mkhalinin/go-library-manager/internal/store"
	"github.com/mkhalinin/go-library-manager/models"
)

func newTestBookSvc(t *testing.T, ctrl *gomock.Controller) (BookService, *mock.MockBookRepository) {
	t.Helper()
	repo := mock.NewMockBookRepository(ctrl)
	return NewBookService(repo, logger.Nop()), repo
}

func TestAddBook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestBookSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Book) error {
			assert.Equal(t, models.CategoryAI, b.Category)
			assert.True(t, b.IsAvailable, "new books must start available")
			return nil
		},
	)

	book, err := svc.AddBook(ctx, "ai", "978-1", "T", "A", 2020)
	require.NoError(t, err)
	assert.Equal(t, "978-1", book.ISBN)
	assert.Equal(t, models.CategoryAI, book.Category)
}

func TestAddBook_BlankFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBookSvc(t, ctrl)
	ctx := context.Background()

	for _, tc := range []struct {
		name, isbn, title, author string
	}{
		{"blank isbn", " ", "T", "A"},
		{"blank title", "978-1", "", "A"},
		{"blank author", "978-1", "T", "  "},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddBook(ctx, "ai", tc.isbn, tc.title, tc.author, 2020)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAddBook_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBookSvc(t, ctrl)

	_, err := svc.AddBook(context.Background(), "cooking", "978-1", "T", "A", 2020)
	assert.ErrorIs(t, err, models.ErrUnknownCategory)
}

func TestAddBook_DuplicateISBN(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestBookSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(store.ErrBookAlreadyExists)

	_, err := svc.AddBook(ctx, "ai", "978-1", "T", "A", 2020)
	assert.ErrorIs(t, err, store.ErrBookAlreadyExists)
}

func TestAddBook_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestBookSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

	_, err := svc.AddBook(ctx, "ai", "978-1", "T", "A", 2020)
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.NotErrorIs(t, err, store.ErrBookAlreadyExists)
}

func TestGetBookByISBN_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestBookSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByISBN(ctx, "missing").Return(models.Book{}, store.ErrBookNotFound)

	_, err := svc.GetBookByISBN(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrBookNotFound)
}

func TestUpdateBook_NormalizesCategoryTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestBookSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Book) error {
			assert.Equal(t, models.CategorySoftwareEngineering, b.Category)
			return nil
		},
	)

	err := svc.UpdateBook(ctx, models.Book{
		ISBN: "978-1", Title: "T", Author: "A", Year: 2020, Category: "se",
	})
	require.NoError(t, err)
}

func TestUpdateBook_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestBookSvc(t, ctrl)

	err := svc.UpdateBook(context.Background(), models.Book{
		ISBN: "978-1", Title: "T", Author: "A", Category: "Cooking",
	})
	assert.ErrorIs(t, err, models.ErrUnknownCategory)
}

func TestDeleteBook_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestBookSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, "missing").Return(store.ErrBookNotFound)

	assert.ErrorIs(t, svc.DeleteBook(ctx, "missing"), store.ErrBookNotFound)
}

func TestGetAllBooks_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestBookSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetAll(ctx).Return(nil, errors.New("db down"))

	_, err := svc.GetAllBooks(ctx)
	assert.ErrorIs(t, err, ErrStorageFailure)
}
