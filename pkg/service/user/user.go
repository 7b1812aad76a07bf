// Package user provides registration and lookup for the identities every
// stored record is scoped to.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
	"github.com/finpulse/finpulse/pkg/repository"
	"github.com/finpulse/finpulse/pkg/utils"
)

// ErrInvalidEmail is returned when a signup email fails validation.
var ErrInvalidEmail = errors.New("invalid email address")

// Service manages user records.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a user service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *Service) CreateUser(ctx context.Context, username, email, password string) (*dto.UserRead, error) {
	log := s.logger.With("context", "user.CreateUser", "username", username)

	if !utils.IsEmail(email) {
		return nil, ErrInvalidEmail
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	create := dto.UserCreate{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Password: hashed,
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Users().Create(ctx, create)
	})
	if err != nil {
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	log.Info("user created", "user_id", create.ID)
	return &dto.UserRead{ID: create.ID, Username: username, Email: email}, nil
}

// GetUser fetches a user by id.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	u, err := s.uow.Users().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRead(u), nil
}

func toRead(u *domain.User) *dto.UserRead {
	return &dto.UserRead{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
