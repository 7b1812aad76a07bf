package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
	"github.com/finpulse/finpulse/pkg/repository"
)

// ListAssets returns the user's asset holdings.
func (s *Service) ListAssets(ctx context.Context, userID uuid.UUID) ([]*domain.Asset, error) {
	return s.uow.Assets().ListByUser(ctx, userID)
}

// CreateAsset inserts a new holding for the user and returns its id.
func (s *Service) CreateAsset(ctx context.Context, userID uuid.UUID, create dto.AssetCreate) (uuid.UUID, error) {
	create.ID = uuid.New()
	create.UserID = userID
	if create.AssetType == "" {
		create.AssetType = string(domain.AssetOther)
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Assets().Create(ctx, create)
	})
	if err != nil {
		s.logger.Error("failed to create asset", "user_id", userID, "error", err)
		return uuid.Nil, err
	}
	return create.ID, nil
}

// UpdateAsset applies a partial update after an ownership check.
func (s *Service) UpdateAsset(ctx context.Context, userID, id uuid.UUID, update dto.AssetUpdate) error {
	existing, err := s.uow.Assets().Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Assets().Update(ctx, id, update)
	})
}

// DeleteAsset removes a holding after an ownership check.
func (s *Service) DeleteAsset(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.uow.Assets().Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Assets().Delete(ctx, id)
	})
}
