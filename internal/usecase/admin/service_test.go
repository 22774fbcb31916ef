package admin_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/admin"
)

func newService(t *testing.T) (*admin.Service, *auth.JWTService) {
	t.Helper()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("imam-password")
	require.NoError(t, err)

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return admin.NewService("admin", hash, jwtSvc, hasher), jwtSvc
}

func TestService_Login(t *testing.T) {
	t.Run("issues a token", func(t *testing.T) {
		svc, jwtSvc := newService(t)

		token, err := svc.Login(context.Background(), "admin", "imam-password")

		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

		subject, err := jwtSvc.ValidateAccessToken(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Login(context.Background(), "admin", "guessing-123")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Login(context.Background(), "root", "imam-password")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("corrupt configured hash", func(t *testing.T) {
		svc := admin.NewService("admin", "plaintext", auth.NewJWTService("s", time.Hour), auth.NewPasswordHasher(bcrypt.MinCost))

		_, err := svc.Login(context.Background(), "admin", "imam-password")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
