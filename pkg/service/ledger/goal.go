package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
	"github.com/finpulse/finpulse/pkg/repository"
)

// ListGoals returns the user's savings goals.
func (s *Service) ListGoals(ctx context.Context, userID uuid.UUID) ([]*domain.FinancialGoal, error) {
	return s.uow.Goals().ListByUser(ctx, userID)
}

// CreateGoal inserts a new savings goal for the user and returns its id.
func (s *Service) CreateGoal(ctx context.Context, userID uuid.UUID, create dto.GoalCreate) (uuid.UUID, error) {
	if !create.TargetAmount.IsPositive() {
		return uuid.Nil, domain.ErrAmountMustBePositive
	}
	create.ID = uuid.New()
	create.UserID = userID
	if create.GoalCategory == "" {
		create.GoalCategory = string(domain.GoalOther)
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Goals().Create(ctx, create)
	})
	if err != nil {
		s.logger.Error("failed to create goal", "user_id", userID, "error", err)
		return uuid.Nil, err
	}
	return create.ID, nil
}

// UpdateGoal applies a partial update after an ownership check.
func (s *Service) UpdateGoal(ctx context.Context, userID, id uuid.UUID, update dto.GoalUpdate) error {
	existing, err := s.uow.Goals().Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Goals().Update(ctx, id, update)
	})
}

// DeleteGoal removes a savings goal after an ownership check.
func (s *Service) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.uow.Goals().Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotOwner
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.Goals().Delete(ctx, id)
	})
}
