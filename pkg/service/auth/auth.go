// Package auth issues and resolves the JWT identities the API scopes
// every store operation to.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finpulse/finpulse/pkg/config"
	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
	"github.com/finpulse/finpulse/pkg/repository"
	"github.com/finpulse/finpulse/pkg/utils"
)

// ErrInvalidCredentials is returned when login identity or password is
// wrong. It deliberately does not distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service authenticates users and mints tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    config.Jwt
	logger *slog.Logger
}

// New creates an auth service.
func New(uow repository.UnitOfWork, cfg config.Jwt, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Login verifies identity (username or email) and password and returns the
// user with a signed token.
func (s *Service) Login(ctx context.Context, identity, password string) (*dto.UserRead, string, error) {
	log := s.logger.With("context", "auth.Login")

	u, err := s.uow.Users().GetByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !utils.CheckPasswordHash(password, u.Password) {
		log.Warn("password mismatch", "user_id", u.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(u)
	if err != nil {
		return nil, "", err
	}
	log.Info("login successful", "user_id", u.ID)
	return &dto.UserRead{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}, token, nil
}

func (s *Service) generateToken(u *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID.String(),
		"email":   u.Email,
		"exp":     time.Now().Add(s.cfg.Expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// GetCurrentUserID extracts the authenticated user's id from a verified
// token, as stored in the request context by the JWT middleware.
func (s *Service) GetCurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrUserUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUserUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrUserUnauthorized
	}
	return id, nil
}
