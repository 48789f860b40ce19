package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseValidToken(t *testing.T) {
	parser := NewParser("test-secret")
	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub":  "user-17",
		"role": "analyst",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	principal, err := parser.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-17", principal.UserID)
	require.Equal(t, "analyst", principal.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	parser := NewParser("test-secret")
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-17",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := parser.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	parser := NewParser("test-secret")
	token := signToken(t, "test-secret", jwt.MapClaims{
		"sub": "user-17",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := parser.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMissingSubject(t *testing.T) {
	parser := NewParser("test-secret")
	token := signToken(t, "test-secret", jwt.MapClaims{
		"role": "analyst",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	_, err := parser.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	parser := NewParser("test-secret")
	_, err := parser.Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
