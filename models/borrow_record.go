package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BorrowRecord represents one lending transaction: a user borrowing a book
// and, eventually, returning it.
//
// A record is created only by the borrow workflow and is never deleted by
// normal operation. Its lifecycle has exactly two states: active
// (IsReturned false, ReturnDate nil) and returned (IsReturned true,
// ReturnDate set). ReturnDate is non-nil if and only if IsReturned is true,
// and a returned record never becomes active again.
type BorrowRecord struct {
	// RecordID is the unique identifier of the record, generated by
	// NewRecordID at borrow time.
	RecordID string `json:"recordId"`

	// UserID references the borrowing user.
	UserID string `json:"userId"`

	// BookISBN references the borrowed book.
	BookISBN string `json:"bookIsbn"`

	// BorrowDate is the calendar date the book was borrowed.
	BorrowDate time.Time `json:"borrowDate"`

	// ReturnDate is the calendar date the book was returned,
	// nil while the record is active.
	ReturnDate *time.Time `json:"returnDate,omitempty"`

	// IsReturned reports whether the record has been closed by a return.
	IsReturned bool `json:"isReturned"`
}

// IsActive reports whether the record still awaits a return.
func (r BorrowRecord) IsActive() bool {
	return !r.IsReturned
}

// NewRecordID generates a unique borrow-record identifier of the form
//
//	BR<unix-milliseconds>-<8 hex chars>
//
// The wall-clock prefix keeps identifiers roughly chronological; the random
// suffix makes two calls within the same millisecond produce distinct IDs.
func NewRecordID(now time.Time) string {
	return fmt.Sprintf("BR%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// TableName returns the name of the database table
// associated with the BorrowRecord model.
func (r BorrowRecord) TableName() string {
	return "borrow_records"
}
