// Package repository defines the store contract the engine's host depends
// on. Every operation is scoped to a user; implementations live under
// infra/repository.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
)

// AccountRepository provides access to money accounts.
type AccountRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Create(ctx context.Context, create dto.AccountCreate) error
	Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository provides access to ledger entries. The recurring
// service is the only writer that creates entries without a user request.
type TransactionRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	Create(ctx context.Context, create dto.TransactionCreate) error
	Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssetRepository provides access to asset holdings.
type AssetRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Asset, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	Create(ctx context.Context, create dto.AssetCreate) error
	Update(ctx context.Context, id uuid.UUID, update dto.AssetUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// LiabilityRepository provides access to debt records.
type LiabilityRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Liability, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Liability, error)
	Create(ctx context.Context, create dto.LiabilityCreate) error
	Update(ctx context.Context, id uuid.UUID, update dto.LiabilityUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalRepository provides access to savings goals.
type GoalRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.FinancialGoal, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.FinancialGoal, error)
	Create(ctx context.Context, create dto.GoalCreate) error
	Update(ctx context.Context, id uuid.UUID, update dto.GoalUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository provides access to user identities.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIdentity(ctx context.Context, identity string) (*domain.User, error)
	Create(ctx context.Context, create dto.UserCreate) error
}
