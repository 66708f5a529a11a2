package service

import (
	"context"
	"strings"

	"github.com/mkhalinin/go-library-manager/internal/logger"
	"github.com/mkhalinin/go-library-manager/internal/store"
	"github.com/mkhalinin/go-library-manager/models"
)

// bookService is the concrete implementation of BookService.
// It owns catalogue rules (validation, category parsing) and delegates
// persistence to a BookRepository.
type bookService struct {
	bookRepository store.BookRepository
	logger         *logger.Logger
}

// NewBookService constructs a BookService wired to the given BookRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

// AddBook registers a new available book in the catalogue.
//
// The category tag is matched case-insensitively against the known category
// variants and their shorthand forms ("se", "ai", "mgmt", ...).
//
// Returns the created book or:
//   - ErrInvalidDataProvided if ISBN, title, or author is blank.
//   - models.ErrUnknownCategory if the tag matches no variant.
//   - store.ErrBookAlreadyExists if the ISBN is already registered.
func (s *bookService) AddBook(ctx context.Context, categoryTag, isbn, title, author string, year int) (models.Book, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(isbn) == "" || strings.TrimSpace(title) == "" || strings.TrimSpace(author) == "" {
		log.Error().Str("isbn", isbn).Str("title", title).Msg("invalid book data provided")
		return models.Book{}, ErrInvalidDataProvided
	}

	book, err := models.NewBook(categoryTag, isbn, title, author, year)
	if err != nil {
		log.Err(err).Str("category", categoryTag).Msg("unknown book category")
		return models.Book{}, err
	}

	if err := s.bookRepository.Create(ctx, book); err != nil {
		log.Err(err).Str("isbn", isbn).Msg("book creation ended with error")
		return models.Book{}, convertStorageError(err)
	}

	log.Info().Msgf("Book added: %s - %s", book.ISBN, book.Title)
	return book, nil
}

func (s *bookService) GetAllBooks(ctx context.Context) ([]models.Book, error) {
	books, err := s.bookRepository.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing books ended with error")
		return nil, convertStorageError(err)
	}
	return books, nil
}

func (s *bookService) GetBookByISBN(ctx context.Context, isbn string) (models.Book, error) {
	book, err := s.bookRepository.GetByISBN(ctx, isbn)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("isbn", isbn).Msg("book lookup ended with error")
		return models.Book{}, convertStorageError(err)
	}
	return book, nil
}

// UpdateBook rewrites the stored attributes of the book with the given ISBN.
// The ISBN itself cannot change; it identifies the row to update.
func (s *bookService) UpdateBook(ctx context.Context, book models.Book) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(book.ISBN) == "" || strings.TrimSpace(book.Title) == "" || strings.TrimSpace(book.Author) == "" {
		log.Error().Str("isbn", book.ISBN).Msg("invalid book data provided")
		return ErrInvalidDataProvided
	}
	category, err := models.ParseCategory(string(book.Category))
	if err != nil {
		log.Err(err).Str("category", string(book.Category)).Msg("unknown book category")
		return err
	}
	book.Category = category

	if err := s.bookRepository.Update(ctx, book); err != nil {
		log.Err(err).Str("isbn", book.ISBN).Msg("book update ended with error")
		return convertStorageError(err)
	}

	log.Info().Msgf("Book updated: %s - %s", book.ISBN, book.Title)
	return nil
}

// DeleteBook removes the catalogue entry. Borrow records that reference the
// ISBN are kept: lending history outlives the catalogue entry.
func (s *bookService) DeleteBook(ctx context.Context, isbn string) error {
	log := logger.FromContext(ctx)

	if err := s.bookRepository.Delete(ctx, isbn); err != nil {
		log.Err(err).Str("isbn", isbn).Msg("book deletion ended with error")
		return convertStorageError(err)
	}

	log.Info().Msgf("Book deleted: %s", isbn)
	return nil
}
