package auth

import (
	"testing"

	"restoflow-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		Name:  "Dana",
		Email: "dana@example.com",
		Role:  models.RoleManager,
	}
	user.ID = 7

	tokenStr, err := GenerateToken("super-secret-test-key-123456", user)
	require.NoError(t, err)

	claims, err := ParseToken("super-secret-test-key-123456", tokenStr)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, models.RoleManager, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &models.User{Email: "dana@example.com", Role: models.RoleManager}

	tokenStr, err := GenerateToken("super-secret-test-key-123456", user)
	require.NoError(t, err)

	_, err = ParseToken("a-different-secret-entirely", tokenStr)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("super-secret-test-key-123456", "not.a.token")
	assert.Error(t, err)
}
