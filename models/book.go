package models

import (
	"fmt"
	"strings"
)

// Category defines the fixed classification of a book.
// The set of categories is closed: every book belongs to exactly one of the
// constants below, and the value never changes after the book is created.
type Category string

const (
	// CategorySoftwareEngineering marks books about software design,
	// construction, and process.
	CategorySoftwareEngineering Category = "Software Engineering"

	// CategoryManagement marks books about management and leadership.
	CategoryManagement Category = "Management"

	// CategoryAI marks books about artificial intelligence and
	// machine learning.
	CategoryAI Category = "Artificial Intelligence"
)

// ErrUnknownCategory is returned by ParseCategory when the supplied tag does
// not resolve to any known book category. Callers should use errors.Is to
// match against this value.
var ErrUnknownCategory = fmt.Errorf("unknown book category")

// ParseCategory resolves a free-form category tag to a Category constant.
//
// Matching is case-insensitive and accepts a small fixed set of synonyms per
// category, including the display form under which the category is persisted,
// so values read back from storage round-trip through the same function:
//
//	"se", "software_engineering", "softwareengineering", "software engineering"
//	"management", "mgmt"
//	"ai", "artificial_intelligence", "artificialintelligence", "artificial intelligence"
//
// An unrecognised tag yields an error wrapping ErrUnknownCategory that names
// the offending value.
func ParseCategory(tag string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "se", "software_engineering", "softwareengineering", "software engineering":
		return CategorySoftwareEngineering, nil
	case "management", "mgmt":
		return CategoryManagement, nil
	case "ai", "artificial_intelligence", "artificialintelligence", "artificial intelligence":
		return CategoryAI, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, tag)
	}
}

// Book represents a single title in the library catalogue.
// ISBN is the unique key. Category is fixed at creation time; IsAvailable
// toggles only through the lending workflow or an explicit administrative
// update.
type Book struct {
	// ISBN is the unique identifier of the book.
	ISBN string `json:"isbn"`

	// Title is the book title.
	Title string `json:"title"`

	// Author is the book author.
	Author string `json:"author"`

	// Year is the publication year.
	Year int `json:"year"`

	// Category is the fixed classification of the book.
	Category Category `json:"category"`

	// IsAvailable reports whether the book can currently be borrowed.
	IsAvailable bool `json:"isAvailable"`
}

// NewBook constructs a Book of the category selected by tag.
// The tag is resolved via ParseCategory; an unrecognised tag returns the
// wrapped ErrUnknownCategory and no book. New books are always available.
//
// NewBook is a pure constructor: it performs no I/O and has no side effects.
func NewBook(tag, isbn, title, author string, year int) (Book, error) {
	category, err := ParseCategory(tag)
	if err != nil {
		return Book{}, err
	}

	return Book{
		ISBN:        isbn,
		Title:       title,
		Author:      author,
		Year:        year,
		Category:    category,
		IsAvailable: true,
	}, nil
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}
