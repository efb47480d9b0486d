package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash, "hash must not be the plaintext")

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("password124", hash))
	assert.False(t, CheckPasswordHash("", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestValidateJWTMalformed(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)

	_, err = ValidateJWT("")
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	// Issue a token that expired 31 days ago.
	claims := JWTClaims{
		UserID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-31 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-61 * 24 * time.Hour)),
			Issuer:    "finance-tracker",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(getJWTSecret())
	require.NoError(t, err)

	_, err = ValidateJWT(signed)
	assert.Error(t, err)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	claims := JWTClaims{
		UserID: "user-42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = ValidateJWT(signed)
	assert.Error(t, err)
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"test@example.com",
		"first.last@example.co",
		"user-name@sub.domain.org",
	}
	for _, e := range valid {
		assert.True(t, ValidEmail(e), "expected %q to be valid", e)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), "expected %q to be invalid", e)
	}
}
