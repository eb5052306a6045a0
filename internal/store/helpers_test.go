package store_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"loginflow/internal/domain"
	"loginflow/internal/store"
)

var (
	fastKDF = store.WithKDFParams(store.KDFParams{N: 1 << 10, R: 8, P: 1})
	alice   = domain.User{ID: 42, Name: "Alice", Email: "alice@example.com"}
	epoch   = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return s
}
