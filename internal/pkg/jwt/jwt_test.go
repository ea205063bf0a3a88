//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"geresaco/internal/domain/user"
	"geresaco/internal/pkg/clock"
	"geresaco/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	svc := jwt.NewService("test-secret", 30*time.Minute)

	token, err := svc.GenerateToken(42, "ana@example.com", user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "ana@example.com", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Parallel()

	svc := jwt.NewService("test-secret", 30*time.Minute)
	other := jwt.NewService("another-secret", 30*time.Minute)

	token, err := svc.GenerateToken(42, "ana@example.com", user.RoleUser)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Parallel()

	// Mint the token two hours in the past so its 30 minute lifetime is over.
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	svc := jwt.NewServiceWithClock("test-secret", 30*time.Minute, past)

	token, err := svc.GenerateToken(42, "ana@example.com", user.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Parallel()

	svc := jwt.NewService("test-secret", 30*time.Minute)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
