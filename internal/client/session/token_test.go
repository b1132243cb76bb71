package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@b.com",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	got, ok := TokenExpiry(signed)
	require.True(t, ok)
	require.Equal(t, exp.Unix(), got.Unix())
}

func TestTokenExpiryNoClaim(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a@b.com"})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, ok := TokenExpiry(signed)
	require.False(t, ok)
}

func TestTokenExpiryGarbage(t *testing.T) {
	_, ok := TokenExpiry("not-a-jwt")
	require.False(t, ok)
}
