package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		tag  string
		want Category
	}{
		{"se", CategorySoftwareEngineering},
		{"SE", CategorySoftwareEngineering},
		{"software_engineering", CategorySoftwareEngineering},
		{"SoftwareEngineering", CategorySoftwareEngineering},
		{"Software Engineering", CategorySoftwareEngineering},
		{"management", CategoryManagement},
		{"Management", CategoryManagement},
		{"MGMT", CategoryManagement},
		{"ai", CategoryAI},
		{"AI", CategoryAI},
		{"artificial_intelligence", CategoryAI},
		{"ArtificialIntelligence", CategoryAI},
		{"Artificial Intelligence", CategoryAI},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseCategory(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	for _, tag := range []string{"", "history", "sci-fi", "a.i."} {
		_, err := ParseCategory(tag)
		require.Error(t, err, "tag %q", tag)
		assert.True(t, errors.Is(err, ErrUnknownCategory))
		if tag != "" {
			assert.Contains(t, err.Error(), tag)
		}
	}
}

func TestNewBook(t *testing.T) {
	book, err := NewBook("ai", "978-1", "T", "A", 2020)
	require.NoError(t, err)

	assert.Equal(t, "978-1", book.ISBN)
	assert.Equal(t, "T", book.Title)
	assert.Equal(t, "A", book.Author)
	assert.Equal(t, 2020, book.Year)
	assert.Equal(t, CategoryAI, book.Category)
	assert.True(t, book.IsAvailable, "new books must start available")
}

func TestNewBook_UnknownCategory(t *testing.T) {
	_, err := NewBook("poetry", "978-1", "T", "A", 2020)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

// Categories persisted by their display form must parse back to the same
// constant, otherwise rows written by AddBook could not be read back.
func TestCategory_RoundTrip(t *testing.T) {
	for _, c := range []Category{CategorySoftwareEngineering, CategoryManagement, CategoryAI} {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
