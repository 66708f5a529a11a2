package store

import (
	"time"
)

// Table and column names of the persisted schema. CamelCase identifiers are
// kept double-quoted so the same statements work unchanged on both SQLite
// and PostgreSQL.
const (
	tableBooks   = "books"
	tableUsers   = "users"
	tableRecords = "borrow_records"

	colISBN        = "isbn"
	colTitle       = "title"
	colAuthor      = "author"
	colYear        = "year"
	colCategory    = "category"
	colIsAvailable = `"isAvailable"`

	colUserID   = `"userId"`
	colUsername = "username"
	colPassword = "password"
	colEmail    = "email"
	colRole     = "role"

	colRecordID   = `"recordId"`
	colBookISBN   = `"bookIsbn"`
	colBorrowDate = `"borrowDate"`
	colReturnDate = `"returnDate"`
	colIsReturned = `"isReturned"`
)

// dateLayout is the on-disk calendar-date format of borrowDate/returnDate.
const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
