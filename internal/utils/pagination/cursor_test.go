package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/nearby/internal/utils/pagination"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 123_000_000, time.UTC)
	token, err := pagination.Encode(pagination.After("u-42", at))
	require.NoError(t, err)

	c, err := pagination.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "u-42", c.ID)
	assert.True(t, c.CreatedAt().Equal(at))
	assert.False(t, c.IsZero())
}

func TestDecodeEmptyAndGarbage(t *testing.T) {
	c, err := pagination.Decode("")
	require.NoError(t, err)
	assert.True(t, c.IsZero())

	_, err = pagination.Decode("%%%")
	assert.ErrorIs(t, err, pagination.ErrInvalidToken)

	_, err = pagination.Decode("bm90IGpzb24=") // "not json"
	assert.ErrorIs(t, err, pagination.ErrInvalidToken)
}
