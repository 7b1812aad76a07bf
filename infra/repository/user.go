package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds the postgres-backed identity store.
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func userToDomain(m *User) *domain.User {
	return &domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var m User
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return userToDomain(&m), nil
}

// GetByIdentity resolves a user by username or email, whichever matches.
func (r *userRepository) GetByIdentity(ctx context.Context, identity string) (*domain.User, error) {
	var m User
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", identity, identity).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return userToDomain(&m), nil
}

func (r *userRepository) Create(ctx context.Context, create dto.UserCreate) error {
	m := User{
		ID:       create.ID,
		Username: create.Username,
		Email:    create.Email,
		Password: create.Password,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}
