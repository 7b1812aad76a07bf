package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository builds the postgres-backed account store.
func NewAccountRepository(db *gorm.DB) *accountRepository {
	return &accountRepository{db: db}
}

func accountToDomain(m *Account) *domain.Account {
	return &domain.Account{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           domain.AccountType(m.Type),
		OpeningBalance: m.OpeningBalance,
		Balance:        m.Balance,
		BankName:       m.BankName,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *accountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	var models []Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, len(models))
	for i := range models {
		accounts[i] = accountToDomain(&models[i])
	}
	return accounts, nil
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return accountToDomain(&m), nil
}

func (r *accountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	m := Account{
		ID:             create.ID,
		UserID:         create.UserID,
		Name:           create.Name,
		Type:           create.Type,
		OpeningBalance: create.OpeningBalance,
		Balance:        create.Balance,
		BankName:       create.BankName,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *accountRepository) Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error {
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Type != nil {
		fields["type"] = *update.Type
	}
	if update.Balance != nil {
		fields["balance"] = *update.Balance
	}
	if update.BankName != nil {
		fields["bank_name"] = *update.BankName
	}
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&Account{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
