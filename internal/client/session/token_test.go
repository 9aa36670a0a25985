package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "acc-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiry_ReadsClaimWithoutKey(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	got, err := TokenExpiry(signedToken(t, exp))
	require.NoError(t, err)
	require.True(t, got.Equal(exp))
}

func TestTokenExpiry_Malformed(t *testing.T) {
	_, err := TokenExpiry("not.a.token")
	require.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	live := signedToken(t, now.Add(time.Hour))
	require.False(t, TokenExpired(live, now))

	stale := signedToken(t, now.Add(-time.Hour))
	require.True(t, TokenExpired(stale, now))

	require.True(t, TokenExpired("garbage", now))
}
