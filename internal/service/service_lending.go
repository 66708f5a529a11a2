package service

import (
	"context"
	"errors"
	"time"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/internal/store"
	"github.com/mkhalinin/go-library-manager/models"
)

// lendingService is the concrete implementation of LendingService.
// It enforces the lending rules (borrower must exist, book must be available)
// and delegates the transactional state changes to a BorrowRepository.
type lendingService struct {
	borrowRepository store.BorrowRepository
	userRepository   store.UserRepository
	logger           *logger.Logger

	// now is stubbed in tests to pin borrow and return dates.
	now func() time.Time
}

// NewLendingService constructs a LendingService wired to the given
// repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewLendingService(
	borrowRepository store.BorrowRepository,
	userRepository store.UserRepository,
	logger *logger.Logger,
) LendingService {
	return &lendingService{
		borrowRepository: borrowRepository,
		userRepository:   userRepository,
		logger:           logger,
		now:              time.Now,
	}
}

// BorrowBook lends the book to the user, creating an active borrow record and
// marking the book unavailable in one transaction.
//
// Returns the created record or:
//   - store.ErrUserNotFound if the borrower is not registered.
//   - store.ErrBookNotFound if the ISBN is not in the catalogue.
//   - store.ErrBookUnavailable if the book is already lent out.
//   - store.ErrAlreadyBorrowed if the user already holds an active record
//     for this book.
func (s *lendingService) BorrowBook(ctx context.Context, userID, isbn string) (models.BorrowRecord, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.GetByID(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("borrower lookup ended with error")
		return models.BorrowRecord{}, convertStorageError(err)
	}

	now := s.now()
	record := models.BorrowRecord{
		RecordID:   models.NewRecordID(now),
		UserID:     userID,
		BookISBN:   isbn,
		BorrowDate: now,
	}

	if err := s.borrowRepository.CreateBorrow(ctx, record); err != nil {
		if errors.Is(err, store.ErrBookUnavailable) {
			log.Warn().Str("isbn", isbn).Str("user_id", userID).Msg("book is not available for borrowing")
			return models.BorrowRecord{}, err
		}

		log.Err(err).Str("isbn", isbn).Str("user_id", userID).Msg("borrowing ended with error")
		return models.BorrowRecord{}, convertStorageError(err)
	}

	log.Info().Msgf("Book borrowed: %s by %s", isbn, userID)
	return record, nil
}

// ReturnBook closes the user's earliest active borrow record for the book and
// restores availability in one transaction.
//
// Returns the closed record or store.ErrRecordNotFound if the user holds no
// active record for this book.
func (s *lendingService) ReturnBook(ctx context.Context, userID, isbn string) (models.BorrowRecord, error) {
	log := logger.FromContext(ctx)

	record, err := s.borrowRepository.Return(ctx, userID, isbn, s.now())
	if err != nil {
		log.Err(err).Str("isbn", isbn).Str("user_id", userID).Msg("returning ended with error")
		return models.BorrowRecord{}, convertStorageError(err)
	}

	log.Info().Msgf("Book returned: %s by %s", isbn, userID)
	return record, nil
}

func (s *lendingService) GetAllBorrowRecords(ctx context.Context) ([]models.BorrowRecord, error) {
	records, err := s.borrowRepository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing borrow records ended with error")
		return nil, convertStorageError(err)
	}
	return records, nil
}
