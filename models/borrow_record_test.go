package models

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordID(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	id := NewRecordID(now)
	require.True(t, strings.HasPrefix(id, "BR"), "record id must carry the BR prefix")

	millis, suffix, found := strings.Cut(strings.TrimPrefix(id, "BR"), "-")
	require.True(t, found)
	assert.Equal(t, strconv.FormatInt(now.UnixMilli(), 10), millis)
	assert.Len(t, suffix, 8)
}

func TestNewRecordID_UniquePerCall(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := NewRecordID(now)
		require.False(t, seen[id], "duplicate record id %s", id)
		seen[id] = true
	}
}

func TestBorrowRecord_IsActive(t *testing.T) {
	record := BorrowRecord{
		RecordID:   NewRecordID(time.Now()),
		UserID:     "u1",
		BookISBN:   "978-1",
		BorrowDate: time.Now(),
	}
	assert.True(t, record.IsActive())
	assert.Nil(t, record.ReturnDate)

	returned := time.Now()
	record.ReturnDate = &returned
	record.IsReturned = true
	assert.False(t, record.IsActive())
}
