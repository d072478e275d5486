package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-accounts/pkg/helpers"
)

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	m := helpers.NewJWTManager("access", "refresh", time.Minute, time.Hour)

	token, exp, err := m.GenerateAccessToken("user-123", "developer", "Admin")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "developer", claims.Username)
	assert.Equal(t, "Admin", claims.Role)
}

func TestJWTManager_SecretsAreNotInterchangeable(t *testing.T) {
	m := helpers.NewJWTManager("access", "refresh", time.Minute, time.Hour)

	refresh, _, err := m.GenerateRefreshToken("user-123", "developer", "User")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err, "refresh token must not validate as access token")

	_, err = m.ParseRefreshToken(refresh)
	assert.NoError(t, err)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := helpers.NewJWTManager("access", "refresh", -time.Minute, time.Hour)

	token, _, err := m.GenerateAccessToken("user-123", "developer", "User")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestBcryptHash(t *testing.T) {
	h := helpers.NewBcryptHash()

	digest, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", digest)

	assert.True(t, h.Compare(digest, "secret"))
	assert.False(t, h.Compare(digest, "wrong"))
}
