package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/models"
)

// borrowRepository is the SQL-backed implementation of [BorrowRepository].
//
// Borrowing and returning each run inside one transaction so the book's
// availability flag and the record set can never disagree: an unavailable
// book always has a matching active record, and closing a record always
// restores availability in the same commit.
type borrowRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBorrowRepository constructs a [BorrowRepository] backed by the provided
// gateway and logger.
func NewBorrowRepository(db *DB, logger *logger.Logger) BorrowRepository {
	logger.Debug().Msg("creating borrow repository")
	return &borrowRepository{
		db:     db,
		logger: logger,
	}
}

func (r *borrowRepository) CreateBorrow(ctx context.Context, record models.BorrowRecord) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.db.builder.
		Select(colIsAvailable).
		From(tableBooks).
		Where(sq.Eq{colISBN: record.BookISBN}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var available bool
	err = tx.QueryRowContext(ctx, query, args...).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBookNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*borrowRepository.CreateBorrow").Str("isbn", record.BookISBN).Msg("error checking availability")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if !available {
		return ErrBookUnavailable
	}

	// At most one active record per (user, book) pair; keeps the return
	// tiebreak unambiguous.
	query, args, err = r.db.builder.
		Select("COUNT(*)").
		From(tableRecords).
		Where(sq.Eq{colUserID: record.UserID, colBookISBN: record.BookISBN, colIsReturned: false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var active int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&active); err != nil {
		log.Err(err).Str("func", "*borrowRepository.CreateBorrow").Msg("error checking active records")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if active > 0 {
		return ErrAlreadyBorrowed
	}

	query, args, err = r.db.builder.
		Insert(tableRecords).
		Columns(colRecordID, colUserID, colBookISBN, colBorrowDate, colIsReturned).
		Values(record.RecordID, record.UserID, record.BookISBN, formatDate(record.BorrowDate), false).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*borrowRepository.CreateBorrow").Str("record_id", record.RecordID).Msg("error inserting borrow record")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	query, args, err = r.db.builder.
		Update(tableBooks).
		Set(colIsAvailable, false).
		Where(sq.Eq{colISBN: record.BookISBN}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*borrowRepository.CreateBorrow").Str("isbn", record.BookISBN).Msg("error updating availability")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *borrowRepository) Return(ctx context.Context, userID, bookISBN string, returnedAt time.Time) (models.BorrowRecord, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.BorrowRecord{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// Earliest borrow date wins when several active records match; recordId
	// breaks any remaining tie deterministically.
	query, args, err := r.db.builder.
		Select(colRecordID, colBorrowDate).
		From(tableRecords).
		Where(sq.Eq{colUserID: userID, colBookISBN: bookISBN, colIsReturned: false}).
		OrderBy(colBorrowDate+" ASC", colRecordID+" ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.BorrowRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		recordID  string
		rawBorrow string
	)
	err = tx.QueryRowContext(ctx, query, args...).Scan(&recordID, &rawBorrow)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BorrowRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*borrowRepository.Return").Msg("error finding active record")
		return models.BorrowRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	query, args, err = r.db.builder.
		Update(tableRecords).
		Set(colReturnDate, formatDate(returnedAt)).
		Set(colIsReturned, true).
		Where(sq.Eq{colRecordID: recordID}).
		ToSql()
	if err != nil {
		return models.BorrowRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*borrowRepository.Return").Str("record_id", recordID).Msg("error closing record")
		return models.BorrowRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// A book deleted from the catalogue since it was borrowed updates zero
	// rows here; the return still succeeds.
	query, args, err = r.db.builder.
		Update(tableBooks).
		Set(colIsAvailable, true).
		Where(sq.Eq{colISBN: bookISBN}).
		ToSql()
	if err != nil {
		return models.BorrowRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*borrowRepository.Return").Str("isbn", bookISBN).Msg("error restoring availability")
		return models.BorrowRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.BorrowRecord{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	borrowDate, err := parseDate(rawBorrow)
	if err != nil {
		return models.BorrowRecord{}, fmt.Errorf("stored record %s: %w", recordID, err)
	}

	returnDate, err := parseDate(formatDate(returnedAt))
	if err != nil {
		return models.BorrowRecord{}, fmt.Errorf("stored record %s: %w", recordID, err)
	}

	return models.BorrowRecord{
		RecordID:   recordID,
		UserID:     userID,
		BookISBN:   bookISBN,
		BorrowDate: borrowDate,
		ReturnDate: &returnDate,
		IsReturned: true,
	}, nil
}

func (r *borrowRepository) GetAll(ctx context.Context) ([]models.BorrowRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(colRecordID, colUserID, colBookISBN, colBorrowDate, colReturnDate, colIsReturned).
		From(tableRecords).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*borrowRepository.GetAll").Msg("error querying borrow records")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var records []models.BorrowRecord
	for rows.Next() {
		record, err := scanBorrowRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "*borrowRepository.GetAll").Msg("error scanning borrow record row")
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanBorrowRecord(row rowScanner) (models.BorrowRecord, error) {
	var (
		record    models.BorrowRecord
		rawBorrow string
		rawReturn sql.NullString
	)

	if err := row.Scan(&record.RecordID, &record.UserID, &record.BookISBN, &rawBorrow, &rawReturn, &record.IsReturned); err != nil {
		return models.BorrowRecord{}, err
	}

	borrowDate, err := parseDate(rawBorrow)
	if err != nil {
		return models.BorrowRecord{}, fmt.Errorf("stored record %s: %w", record.RecordID, err)
	}
	record.BorrowDate = borrowDate

	if rawReturn.Valid {
		returnDate, err := parseDate(rawReturn.String)
		if err != nil {
			return models.BorrowRecord{}, fmt.Errorf("stored record %s: %w", record.RecordID, err)
		}
		record.ReturnDate = &returnDate
	}

	return record, nil
}
