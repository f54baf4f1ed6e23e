package services

import (
	"os"
	"taskserver/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccessToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-access-secret")

	signed, err := CreateAccessToken("user-1", "a@x.com", []string{model.RoleManager, model.RoleEmployee})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims := &model.AccessClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET_KEY")), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, []string{model.RoleManager, model.RoleEmployee}, claims.Roles)
	assert.Equal(t, "taskserver", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestCreateRefreshToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_REFRESH_SECRET_KEY", "test-refresh-secret")

	signed, err := CreateRefreshToken("user-1", "a@x.com")
	require.NoError(t, err)

	claims := &model.RefreshClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_REFRESH_SECRET_KEY")), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "user-1", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(RefreshTokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestAccessToken_WrongSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-access-secret")

	signed, err := CreateAccessToken("user-1", "a@x.com", []string{model.RoleEmployee})
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("a-different-secret"), nil
	})
	assert.Error(t, err)
}

func TestHashRefreshToken_CompareRoundTrip(t *testing.T) {
	t.Setenv("JWT_REFRESH_SECRET_KEY", "test-refresh-secret")

	token, err := CreateRefreshToken("user-1", "a@x.com")
	require.NoError(t, err)

	hashed, err := HashRefreshToken(token)
	require.NoError(t, err)
	require.NotEqual(t, token, hashed)

	assert.NoError(t, CompareRefreshToken(hashed, token))
	assert.Error(t, CompareRefreshToken(hashed, token+"tampered"))
}
