package service

import (
	"testing"
	"time"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/config"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 60}
	svc := NewAuthService(cfg)

	signed, err := svc.IssueToken(dto.TokenRequest{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)

	ttl := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, 60*time.Minute)
}

func TestIssueTokenRejectedWithWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 60}
	svc := NewAuthService(cfg)

	signed, err := svc.IssueToken(dto.TokenRequest{Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(signed, &middleware.Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
