package pagination_test

import (
	"testing"
	"time"

	"github.com/sidharthsanthos/PKRA/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 10, 14, 9, 30, 0, 123456789, time.UTC)
	id := "4f8b9a2e-1c3d-4e5f-8a7b-6c5d4e3f2a1b"

	token := pagination.EncodeToken(createdAt, id)
	gotCreatedAt, gotID, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotCreatedAt))
	assert.Equal(t, id, gotID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%not-base64%%%"},
		{name: "missing separator", token: "bm8tc2VwYXJhdG9y"}, // "no-separator"
		{name: "bad timestamp", token: "bm90LWEtdGltZXxpZA=="}, // "not-a-time|id"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(tt.token)
			assert.Error(t, err)
		})
	}
}
