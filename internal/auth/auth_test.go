package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"resto-admin-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"

	t.Run("ValidToken", func(t *testing.T) {
		token, err := GenerateToken(secret, "admin")
		require.NoError(t, err)

		claims, err := ParseToken(secret, token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := GenerateToken(secret, "admin")
		require.NoError(t, err)

		_, err = ParseToken("other-secret", token)
		assert.Error(t, err)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		_, err := GenerateToken("", "admin")
		assert.True(t, errors.Is(err, ErrMissingSecret))
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseToken(secret, "not.a.token")
		assert.Error(t, err)
	})
}

func TestExtractBearer(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", ExtractBearer(r))

	r.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", ExtractBearer(r))

	r.Header.Set("Authorization", "Basic abc123")
	assert.Equal(t, "", ExtractBearer(r))
}

func TestService_Login(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AdminUser:         "admin",
		AdminPasswordHash: hash,
	}
	svc := NewService(cfg)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		token, err := svc.Login(ctx, "admin", "s3cret")
		require.NoError(t, err)

		claims, err := ParseToken(cfg.JWTSecret, token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login(ctx, "admin", "nope")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("WrongUser", func(t *testing.T) {
		_, err := svc.Login(ctx, "root", "s3cret")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})
}
