package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/auth"
)

type Service struct {
	username       string
	passwordHash   string
	jwtSvc         *auth.JWTService
	passwordHasher *auth.PasswordHasher
}

func NewService(username, passwordHash string, jwtSvc *auth.JWTService, passwordHasher *auth.PasswordHasher) *Service {
	return &Service{
		username:       username,
		passwordHash:   passwordHash,
		jwtSvc:         jwtSvc,
		passwordHasher: passwordHasher,
	}
}

type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Login checks the single configured administrator account. The password is
// compared even for an unknown username so both failures take equal time.
func (s *Service) Login(_ context.Context, username, password string) (*Token, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	err := s.passwordHasher.Compare(s.passwordHash, password)
	if err != nil && !errors.Is(err, domain.ErrInvalidCredentials) {
		return nil, fmt.Errorf("checking admin password: %w", err)
	}
	if err != nil || !userOK {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtSvc.GenerateAccessToken(s.username)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &Token{AccessToken: token, ExpiresAt: expiresAt}, nil
}
