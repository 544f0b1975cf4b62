package jwt_test

import (
	"testing"
	"time"

	"medicare-plus/config"
	"medicare-plus/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(accessExpiry time.Duration) *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newService(15 * time.Minute)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "user@example.com", 3)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, 3, claims.RoleID)
	assert.Equal(t, jwt.AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestJWTService_RefreshTokenType(t *testing.T) {
	svc := newService(15 * time.Minute)

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "user@example.com", 2)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, jwt.RefreshToken, claims.TokenType)
}

func TestJWTService_RejectsTamperedSecret(t *testing.T) {
	svc := newService(15 * time.Minute)
	other := jwt.NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: 15 * time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "user@example.com", 3)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newService(-1 * time.Minute)

	token, _, err := svc.GenerateAccessToken(uuid.New(), "user@example.com", 3)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
