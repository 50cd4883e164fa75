package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 5, 1, 10, 30, 0, 123456789, time.UTC)
	rowID := "a3c9e1a0-1111-2222-3333-444455556666"

	token := EncodeCursor(createdAt, rowID)
	gotTime, gotID, err := DecodeCursor(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, rowID, gotID)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	_, _, err := DecodeCursor("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeCursorRejectsMissingSeparator(t *testing.T) {
	_, _, err := DecodeCursor("aGVsbG8=") // "hello"
	assert.Error(t, err)
}

func TestDecodeCursorRejectsBadTimestamp(t *testing.T) {
	bad := "bm90LWEtdGltZXxyb3ctaWQ=" // "not-a-time|row-id"
	_, _, err := DecodeCursor(bad)
	assert.Error(t, err)
}
