package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
)

type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository builds the postgres-backed savings-goal store.
func NewGoalRepository(db *gorm.DB) *goalRepository {
	return &goalRepository{db: db}
}

func goalToDomain(m *FinancialGoal) *domain.FinancialGoal {
	return &domain.FinancialGoal{
		ID:              m.ID,
		UserID:          m.UserID,
		GoalName:        m.GoalName,
		TargetAmount:    m.TargetAmount,
		TargetDate:      m.TargetDate,
		CurrentSaved:    m.CurrentSaved,
		GoalCategory:    domain.GoalCategory(m.GoalCategory),
		IsRecurring:     m.IsRecurring,
		RecurringAmount: m.RecurringAmount,
		Priority:        m.Priority,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *goalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.FinancialGoal, error) {
	var models []FinancialGoal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("priority DESC, created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	goals := make([]*domain.FinancialGoal, len(models))
	for i := range models {
		goals[i] = goalToDomain(&models[i])
	}
	return goals, nil
}

func (r *goalRepository) Get(ctx context.Context, id uuid.UUID) (*domain.FinancialGoal, error) {
	var m FinancialGoal
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return goalToDomain(&m), nil
}

func (r *goalRepository) Create(ctx context.Context, create dto.GoalCreate) error {
	m := FinancialGoal{
		ID:              create.ID,
		UserID:          create.UserID,
		GoalName:        create.GoalName,
		TargetAmount:    create.TargetAmount,
		TargetDate:      create.TargetDate,
		CurrentSaved:    create.CurrentSaved,
		GoalCategory:    create.GoalCategory,
		IsRecurring:     create.IsRecurring,
		RecurringAmount: create.RecurringAmount,
		Priority:        create.Priority,
		Notes:           create.Notes,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *goalRepository) Update(ctx context.Context, id uuid.UUID, update dto.GoalUpdate) error {
	fields := map[string]any{}
	if update.GoalName != nil {
		fields["goal_name"] = *update.GoalName
	}
	if update.TargetAmount != nil {
		fields["target_amount"] = *update.TargetAmount
	}
	if update.TargetDate != nil {
		fields["target_date"] = *update.TargetDate
	}
	if update.CurrentSaved != nil {
		fields["current_saved"] = *update.CurrentSaved
	}
	if update.GoalCategory != nil {
		fields["goal_category"] = *update.GoalCategory
	}
	if update.IsRecurring != nil {
		fields["is_recurring"] = *update.IsRecurring
	}
	if update.RecurringAmount != nil {
		fields["recurring_amount"] = *update.RecurringAmount
	}
	if update.Priority != nil {
		fields["priority"] = *update.Priority
	}
	if update.Notes != nil {
		fields["notes"] = *update.Notes
	}
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&FinancialGoal{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&FinancialGoal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
