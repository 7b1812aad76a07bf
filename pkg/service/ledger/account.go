package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
	"github.com/finpulse/finpulse/pkg/repository"
)

// ListAccounts returns the user's money accounts.
func (s *Service) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	return s.uow.Accounts().ListByUser(ctx, userID)
}

// CreateAccount inserts a new account for the user and returns its id.
func (s *Service) CreateAccount(ctx context.Context, userID uuid.UUID, create dto.AccountCreate) (uuid.UUID, error) {
	create.ID = uuid.New()
	create.UserID = userID
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Accounts().Create(ctx, create)
	})
	if err != nil {
		s.logger.Error("failed to create account", "user_id", userID, "error", err)
		return uuid.Nil, err
	}
	return create.ID, nil
}

// UpdateAccount applies a partial update after an ownership check.
func (s *Service) UpdateAccount(ctx context.Context, userID, id uuid.UUID, update dto.AccountUpdate) error {
	existing, err := s.uow.Accounts().Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Accounts().Update(ctx, id, update)
	})
}

// DeleteAccount removes an account after an ownership check.
func (s *Service) DeleteAccount(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.uow.Accounts().Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Accounts().Delete(ctx, id)
	})
}
