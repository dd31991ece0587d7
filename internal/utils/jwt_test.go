package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func TestGenerateToken_RoundTrip(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	token, err := GenerateToken(testSecret, userID, "", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestGenerateToken_EmbedsEmailClaim(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	token, err := GenerateToken(testSecret, userID, "a@x.com", 24*time.Hour)
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(*SessionClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(testSecret, uuid.New(), "", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("another-secret", token)
	require.Error(t, err)
}

func TestParseToken_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(testSecret, uuid.New(), "", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	require.Error(t, err)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseToken(testSecret, "not-a-token")
	require.Error(t, err)
}
