package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	m := NewManager("test-secret", 24)
	userID := uuid.New().String()

	token, err := m.GenerateAccessToken(userID, "bookworm", "moderator", false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "bookworm", claims.Username)
	assert.Equal(t, "moderator", claims.Role)
	assert.False(t, claims.Superuser)
	assert.Equal(t, "access", claims.Type)
}

func TestAccessTokenCarriesSuperuserFlag(t *testing.T) {
	m := NewManager("test-secret", 24)

	token, err := m.GenerateAccessToken(uuid.New().String(), "root", "admin", true)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.True(t, claims.Superuser)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 24).GenerateAccessToken(uuid.New().String(), "u", "user", false)
	require.NoError(t, err)

	_, err = NewManager("secret-b", 24).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -1)

	token, err := m.GenerateAccessToken(uuid.New().String(), "u", "user", false)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", 24)

	_, err := m.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestValidateAccessTokenRejectsOtherTypes(t *testing.T) {
	m := NewManager("test-secret", 24)

	// A correctly signed token of a different type must not pass as an
	// access token.
	claims := Claims{
		UserID: uuid.New().String(),
		Type:   "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secret))
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}
