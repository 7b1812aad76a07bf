package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
	"github.com/finpulse/finpulse/pkg/repository"
)

// ListLiabilities returns the user's debt records.
func (s *Service) ListLiabilities(ctx context.Context, userID uuid.UUID) ([]*domain.Liability, error) {
	return s.uow.Liabilities().ListByUser(ctx, userID)
}

// CreateLiability inserts a new debt record for the user and returns its id.
func (s *Service) CreateLiability(ctx context.Context, userID uuid.UUID, create dto.LiabilityCreate) (uuid.UUID, error) {
	create.ID = uuid.New()
	create.UserID = userID
	if create.Type == "" {
		create.Type = string(domain.LiabilityOther)
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Liabilities().Create(ctx, create)
	})
	if err != nil {
		s.logger.Error("failed to create liability", "user_id", userID, "error", err)
		return uuid.Nil, err
	}
	return create.ID, nil
}

// UpdateLiability applies a partial update after an ownership check.
func (s *Service) UpdateLiability(ctx context.Context, userID, id uuid.UUID, update dto.LiabilityUpdate) error {
	existing, err := s.uow.Liabilities().Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Liabilities().Update(ctx, id, update)
	})
}

// DeleteLiability removes a debt record after an ownership check.
func (s *Service) DeleteLiability(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.uow.Liabilities().Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Liabilities().Delete(ctx, id)
	})
}
