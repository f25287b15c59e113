package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("secret", 5)

	token, expiresAt, err := tm.GenerateToken("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	userID, err := tm.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	tm := auth.NewTokenManager("secret", 5)

	_, err := tm.VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", 5)
	verifier := auth.NewTokenManager("secret-b", 5)

	token, _, err := issuer.GenerateToken("user-42")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestPasswordHashAndCompare(t *testing.T) {
	hash, err := auth.HashPassword("s3cret", 4)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	assert.NoError(t, auth.ComparePassword(hash, "s3cret"))
	assert.Error(t, auth.ComparePassword(hash, "wrong"))
}
