package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workoflow/hrms-api/internal/services"
)

const testSecret = "test-jwt-secret-key-here-64-chars-long-for-testing-purposes"

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := services.NewJWTService(testSecret, time.Hour)

	token, err := svc.Issue(42, 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, uint(7), claims.OrganizationID)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_NoExpiryByDefault(t *testing.T) {
	svc := services.NewJWTService(testSecret, 0)

	token, err := svc.Issue(1, 1)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestJWTService_ValidateFailures(t *testing.T) {
	svc := services.NewJWTService(testSecret, time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Validate("not-a-token")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := services.NewJWTService("completely-different-secret", time.Hour)
		token, err := other.Issue(1, 1)
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		short := services.NewJWTService(testSecret, time.Nanosecond)
		token, err := short.Issue(1, 1)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("missing identity claims", func(t *testing.T) {
		// A structurally valid token without user and organization ids.
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "1",
		})
		token, err := raw.SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("wrong signing algorithm", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"user_id":         1,
			"organization_id": 1,
		})
		token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}
