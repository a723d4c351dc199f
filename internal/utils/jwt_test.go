package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("secret", "acc-1", "owner@example.com", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	claims, err := ParseAccessToken("secret", tok.Token)
	require.NoError(t, err)
	require.Equal(t, "acc-1", claims.AccountID)
	require.Equal(t, "owner@example.com", claims.Email)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("secret", "acc-1", "owner@example.com", 60)
	require.NoError(t, err)
	_, err = ParseAccessToken("other-secret", tok.Token)
	require.Error(t, err)
}

func TestAccessTokenExpired(t *testing.T) {
	tok, err := NewAccessToken("secret", "acc-1", "owner@example.com", -1)
	require.NoError(t, err)
	_, err = ParseAccessToken("secret", tok.Token)
	require.Error(t, err)
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("password", 4)
	require.NoError(t, err)
	require.NotEqual(t, "password", hash)
	require.True(t, VerifyPassword(hash, "password"))
	require.False(t, VerifyPassword(hash, "wrong"))
}
