package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/models"
)

// bookRepository is the SQL-backed implementation of [BookRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions. Rows are reconstituted into
// typed entities through [models.ParseCategory], so a row whose stored
// category is not a known variant surfaces as an error instead of a
// half-built book.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// gateway and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

func (r *bookRepository) Create(ctx context.Context, book models.Book) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(tableBooks).
		Columns(colISBN, colTitle, colAuthor, colYear, colCategory, colIsAvailable).
		Values(book.ISBN, book.Title, book.Author, book.Year, string(book.Category), book.IsAvailable).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrBookAlreadyExists
		}

		log.Err(err).Str("func", "*bookRepository.Create").Str("isbn", book.ISBN).Msg("error inserting book")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *bookRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(colISBN, colTitle, colAuthor, colYear, colCategory, colIsAvailable).
		From(tableBooks).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetAll").Msg("error querying books")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			log.Err(err).Str("func", "*bookRepository.GetAll").Msg("error scanning book row")
			return nil, err
		}
		books = append(books, book)
	}

	return books, rows.Err()
}

func (r *bookRepository) GetByISBN(ctx context.Context, isbn string) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(colISBN, colTitle, colAuthor, colYear, colCategory, colIsAvailable).
		From(tableBooks).
		Where(sq.Eq{colISBN: isbn}).
		ToSql()
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	book, err := scanBook(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetByISBN").Str("isbn", isbn).Msg("error scanning book row")
		return models.Book{}, err
	}

	return book, nil
}

func (r *bookRepository) Update(ctx context.Context, book models.Book) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(tableBooks).
		Set(colTitle, book.Title).
		Set(colAuthor, book.Author).
		Set(colYear, book.Year).
		Set(colCategory, string(book.Category)).
		Set(colIsAvailable, book.IsAvailable).
		Where(sq.Eq{colISBN: book.ISBN}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Update").Str("isbn", book.ISBN).Msg("error updating book")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

func (r *bookRepository) Delete(ctx context.Context, isbn string) error {
	log := logger.FromContext(ctx)

	// Borrow records referencing the deleted book are kept on purpose:
	// lending history outlives the catalogue entry.
	query, args, err := r.db.builder.
		Delete(tableBooks).
		Where(sq.Eq{colISBN: isbn}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Delete").Str("isbn", isbn).Msg("error deleting book")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (models.Book, error) {
	var (
		book        models.Book
		rawCategory string
	)

	if err := row.Scan(&book.ISBN, &book.Title, &book.Author, &book.Year, &rawCategory, &book.IsAvailable); err != nil {
		return models.Book{}, err
	}

	category, err := models.ParseCategory(rawCategory)
	if err != nil {
		return models.Book{}, fmt.Errorf("stored book %s: %w", book.ISBN, err)
	}
	book.Category = category

	return book, nil
}
