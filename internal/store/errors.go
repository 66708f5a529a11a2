package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBookNotFound is returned when a lookup, update, or delete targets an
	// ISBN that has no row in the books table.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookAlreadyExists is returned when inserting a book whose ISBN is
	// already present.
	ErrBookAlreadyExists = errors.New("book already exists")

	// ErrUserNotFound is returned when a lookup, update, or delete targets a
	// user that has no row in the users table.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when inserting a user whose userId or
	// username collides with an existing row.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrRecordNotFound is returned when no matching borrow record exists,
	// in particular when a return finds no active record for the
	// (user, book) pair.
	ErrRecordNotFound = errors.New("borrow record not found")

	// ErrBookUnavailable is returned by the borrow transaction when the book
	// is already lent out.
	ErrBookUnavailable = errors.New("book is not available")

	// ErrAlreadyBorrowed is returned by the borrow transaction when the same
	// user already holds an active record for the same book. Keeping at most
	// one active record per (user, book) pair makes the return tiebreak
	// unambiguous.
	ErrAlreadyBorrowed = errors.New("book already borrowed by this user")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
