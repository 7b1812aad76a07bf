package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
)

type liabilityRepository struct {
	db *gorm.DB
}

// NewLiabilityRepository builds the postgres-backed debt store.
func NewLiabilityRepository(db *gorm.DB) *liabilityRepository {
	return &liabilityRepository{db: db}
}

func liabilityToDomain(m *Liability) *domain.Liability {
	return &domain.Liability{
		ID:                m.ID,
		UserID:            m.UserID,
		Type:              domain.LiabilityType(m.Type),
		Name:              m.Name,
		OutstandingAmount: m.OutstandingAmount,
		OriginalAmount:    m.OriginalAmount,
		InterestRate:      m.InterestRate,
		EMIAmount:         m.EMIAmount,
		DueDate:           m.DueDate,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		IsRecurring:       m.IsRecurring,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func (r *liabilityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Liability, error) {
	var models []Liability
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	liabilities := make([]*domain.Liability, len(models))
	for i := range models {
		liabilities[i] = liabilityToDomain(&models[i])
	}
	return liabilities, nil
}

func (r *liabilityRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Liability, error) {
	var m Liability
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return liabilityToDomain(&m), nil
}

func (r *liabilityRepository) Create(ctx context.Context, create dto.LiabilityCreate) error {
	m := Liability{
		ID:                create.ID,
		UserID:            create.UserID,
		Type:              create.Type,
		Name:              create.Name,
		OutstandingAmount: create.OutstandingAmount,
		OriginalAmount:    create.OriginalAmount,
		InterestRate:      create.InterestRate,
		EMIAmount:         create.EMIAmount,
		DueDate:           create.DueDate,
		StartDate:         create.StartDate,
		EndDate:           create.EndDate,
		IsRecurring:       create.IsRecurring,
		Notes:             create.Notes,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *liabilityRepository) Update(ctx context.Context, id uuid.UUID, update dto.LiabilityUpdate) error {
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Type != nil {
		fields["type"] = *update.Type
	}
	if update.OutstandingAmount != nil {
		fields["outstanding_amount"] = *update.OutstandingAmount
	}
	if update.InterestRate != nil {
		fields["interest_rate"] = *update.InterestRate
	}
	if update.EMIAmount != nil {
		fields["emi_amount"] = *update.EMIAmount
	}
	if update.DueDate != nil {
		fields["due_date"] = *update.DueDate
	}
	if update.IsRecurring != nil {
		fields["is_recurring"] = *update.IsRecurring
	}
	if update.Notes != nil {
		fields["notes"] = *update.Notes
	}
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&Liability{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *liabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Liability{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
