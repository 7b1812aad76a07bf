package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
)

type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository builds the postgres-backed asset store.
func NewAssetRepository(db *gorm.DB) *assetRepository {
	return &assetRepository{db: db}
}

func assetToDomain(m *Asset) *domain.Asset {
	return &domain.Asset{
		ID:              m.ID,
		UserID:          m.UserID,
		AssetType:       domain.AssetType(m.AssetType),
		AssetName:       m.AssetName,
		Quantity:        m.Quantity,
		CurrentValue:    m.CurrentValue,
		PurchaseValue:   m.PurchaseValue,
		PurchaseDate:    m.PurchaseDate,
		IsRecurring:     m.IsRecurring,
		RecurringAmount: m.RecurringAmount,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *assetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Asset, error) {
	var models []Asset
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	assets := make([]*domain.Asset, len(models))
	for i := range models {
		assets[i] = assetToDomain(&models[i])
	}
	return assets, nil
}

func (r *assetRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	var m Asset
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return assetToDomain(&m), nil
}

func (r *assetRepository) Create(ctx context.Context, create dto.AssetCreate) error {
	m := Asset{
		ID:              create.ID,
		UserID:          create.UserID,
		AssetType:       create.AssetType,
		AssetName:       create.AssetName,
		Quantity:        create.Quantity,
		CurrentValue:    create.CurrentValue,
		PurchaseValue:   create.PurchaseValue,
		PurchaseDate:    create.PurchaseDate,
		IsRecurring:     create.IsRecurring,
		RecurringAmount: create.RecurringAmount,
		Notes:           create.Notes,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *assetRepository) Update(ctx context.Context, id uuid.UUID, update dto.AssetUpdate) error {
	fields := map[string]any{}
	if update.AssetName != nil {
		fields["asset_name"] = *update.AssetName
	}
	if update.AssetType != nil {
		fields["asset_type"] = *update.AssetType
	}
	if update.Quantity != nil {
		fields["quantity"] = *update.Quantity
	}
	if update.CurrentValue != nil {
		fields["current_value"] = *update.CurrentValue
	}
	if update.PurchaseValue != nil {
		fields["purchase_value"] = *update.PurchaseValue
	}
	if update.IsRecurring != nil {
		fields["is_recurring"] = *update.IsRecurring
	}
	if update.RecurringAmount != nil {
		fields["recurring_amount"] = *update.RecurringAmount
	}
	if update.Notes != nil {
		fields["notes"] = *update.Notes
	}
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&Asset{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *assetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Asset{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
