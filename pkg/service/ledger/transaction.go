package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
	"github.com/finpulse/finpulse/pkg/repository"
)

// ListTransactions returns the user's ledger entries, newest first.
func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	return s.uow.Transactions().ListByUser(ctx, userID)
}

// CreateTransaction validates and inserts a ledger entry. Amounts are
// magnitudes: zero or negative amounts are rejected.
func (s *Service) CreateTransaction(ctx context.Context, userID uuid.UUID, create dto.TransactionCreate) (uuid.UUID, error) {
	if !create.Amount.IsPositive() {
		return uuid.Nil, domain.ErrAmountMustBePositive
	}
	if !domain.TransactionType(create.Type).Valid() {
		return uuid.Nil, domain.ErrInvalidTransactionType
	}
	if create.Category == "" {
		create.Category = "other"
	}
	create.ID = uuid.New()
	create.UserID = userID
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Transactions().Create(ctx, create)
	})
	if err != nil {
		s.logger.Error("failed to create transaction", "user_id", userID, "error", err)
		return uuid.Nil, err
	}
	return create.ID, nil
}

// UpdateTransaction applies a partial update after an ownership check.
func (s *Service) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, update dto.TransactionUpdate) error {
	if update.Amount != nil && !update.Amount.IsPositive() {
		return domain.ErrAmountMustBePositive
	}
	if update.Type != nil && !domain.TransactionType(*update.Type).Valid() {
		return domain.ErrInvalidTransactionType
	}
	existing, err := s.uow.Transactions().Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Transactions().Update(ctx, id, update)
	})
}

// DeleteTransaction removes a ledger entry after an ownership check.
func (s *Service) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.uow.Transactions().Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Transactions().Delete(ctx, id)
	})
}
