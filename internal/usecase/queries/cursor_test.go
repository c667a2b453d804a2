//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"courtside/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_EncodeDecode(t *testing.T) {
	ts := time.Date(2025, 6, 1, 18, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	gotTs, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTs))
	assert.Equal(t, id, gotID)
}

func TestCursor_DecodeRejectsGarbage(t *testing.T) {
	for _, c := range []string{
		"",
		"not-base64!!",
		base64.URLEncoding.EncodeToString([]byte("v2:1-" + uuid.NewString())),
		base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid")),
	} {
		_, _, err := queries.DecodeAfterCursor(c)
		assert.Error(t, err, "cursor %q", c)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
