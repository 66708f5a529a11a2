package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/internal/mock"
	"github.com/mkhalinin/go-library-manager/internal/store"
	"github.com/mkhalinin/go-library-manager/models"
)

func newTestLendingSvc(t *testing.T, ctrl *gomock.Controller) (*lendingService, *mock.MockBorrowRepository, *mock.MockUserRepository) {
	t.Helper()
	borrows := mock.NewMockBorrowRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewLendingService(borrows, users, logger.Nop()).(*lendingService)
	svc.now = func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) }

	return svc, borrows, users
}

func TestBorrowBook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, borrows, users := newTestLendingSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetByID(ctx, "u1").Return(models.User{UserID: "u1"}, nil)
	borrows.EXPECT().CreateBorrow(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.BorrowRecord) error {
			assert.Equal(t, "u1", r.UserID)
			assert.Equal(t, "978-1", r.BookISBN)
			assert.Regexp(t, regexp.MustCompile(`^BR\d+-[0-9a-f]{8}$`), r.RecordID)
			assert.False(t, r.IsReturned)
			return nil
		},
	)

	record, err := svc.BorrowBook(ctx, "u1", "978-1")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-29", record.BorrowDate.Format("2006-01-02"))
	assert.True(t, record.IsActive())
}

func TestBorrowBook_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, users := newTestLendingSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetByID(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.BorrowBook(ctx, "ghost", "978-1")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestBorrowBook_BookUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, borrows, users := newTestLendingSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetByID(ctx, "u1").Return(models.User{UserID: "u1"}, nil)
	borrows.EXPECT().CreateBorrow(ctx, gomock.Any()).Return(store.ErrBookUnavailable)

	_, err := svc.BorrowBook(ctx, "u1", "978-1")
	assert.ErrorIs(t, err, store.ErrBookUnavailable)
}

func TestBorrowBook_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, borrows, users := newTestLendingSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetByID(ctx, "u1").Return(models.User{UserID: "u1"}, nil)
	borrows.EXPECT().CreateBorrow(ctx, gomock.Any()).Return(errors.New("db down"))

	_, err := svc.BorrowBook(ctx, "u1", "978-1")
	assert.ErrorIs(t, err, ErrStorageFailure)
}

func TestReturnBook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, borrows, _ := newTestLendingSvc(t, ctrl)
	ctx := context.Background()

	returnedAt := svc.now()
	closed := models.BorrowRecord{
		RecordID:   "BR1-abcd1234",
		UserID:     "u1",
		BookISBN:   "978-1",
		BorrowDate: returnedAt,
		ReturnDate: &returnedAt,
		IsReturned: true,
	}
	borrows.EXPECT().Return(ctx, "u1", "978-1", returnedAt).Return(closed, nil)

	record, err := svc.ReturnBook(ctx, "u1", "978-1")
	require.NoError(t, err)
	assert.True(t, record.IsReturned)
	assert.False(t, record.IsActive())
}

func TestReturnBook_NoActiveRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, borrows, _ := newTestLendingSvc(t, ctrl)
	ctx := context.Background()

	borrows.EXPECT().Return(ctx, "u1", "978-1", gomock.Any()).
		Return(models.BorrowRecord{}, store.ErrRecordNotFound)

	_, err := svc.ReturnBook(ctx, "u1", "978-1")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestGetAllBorrowRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, borrows, _ := newTestLendingSvc(t, ctrl)
	ctx := context.Background()

	borrows.EXPECT().GetAll(ctx).Return([]models.BorrowRecord{{RecordID: "BR1-abcd1234"}}, nil)

	records, err := svc.GetAllBorrowRecords(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
