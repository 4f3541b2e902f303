package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rathoremon/car-repair-sub000/domain"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "garage-auth", 24*time.Hour)

	token, err := svc.Generate("acc-42", domain.RoleProvider)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-42", claims.AccountID)
	assert.Equal(t, domain.RoleProvider, claims.Role)

	window := claims.ExpiresAt - claims.IssuedAt
	assert.Equal(t, int64(24*60*60), window, "validity window must be 24 hours")
}

func TestJWTService_UniqueTokensPerIssue(t *testing.T) {
	svc := NewJWTService("test-secret", "garage-auth", 24*time.Hour)

	a, err := svc.Generate("acc-42", domain.RoleCustomer)
	require.NoError(t, err)
	b, err := svc.Generate("acc-42", domain.RoleCustomer)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "jti must make every issued token unique")
}

func TestJWTService_RejectsTampering(t *testing.T) {
	svc := NewJWTService("test-secret", "garage-auth", 24*time.Hour)

	token, err := svc.Generate("acc-42", domain.RoleCustomer)
	require.NoError(t, err)

	_, err = svc.Validate(token + "x")
	assert.Error(t, err)

	other := NewJWTService("different-secret", "garage-auth", 24*time.Hour)
	_, err = other.Validate(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", "garage-auth", -time.Minute)

	token, err := svc.Generate("acc-42", domain.RoleCustomer)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", "garage-auth", 24*time.Hour)
	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenMalformed)
}
