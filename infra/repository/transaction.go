package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository builds the postgres-backed ledger store.
func NewTransactionRepository(db *gorm.DB) *transactionRepository {
	return &transactionRepository{db: db}
}

func transactionToDomain(m *Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Amount:      m.Amount,
		Type:        domain.TransactionType(m.Type),
		Category:    m.Category,
		AccountID:   m.AccountID,
		Date:        m.Date,
		IsRecurring: m.IsRecurring,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	var models []Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	transactions := make([]*domain.Transaction, len(models))
	for i := range models {
		transactions[i] = transactionToDomain(&models[i])
	}
	return transactions, nil
}

func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	var m Transaction
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return transactionToDomain(&m), nil
}

func (r *transactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	m := Transaction{
		ID:          create.ID,
		UserID:      create.UserID,
		Name:        create.Name,
		Amount:      create.Amount,
		Type:        create.Type,
		Category:    create.Category,
		AccountID:   create.AccountID,
		Date:        create.Date,
		IsRecurring: create.IsRecurring,
		Notes:       create.Notes,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *transactionRepository) Update(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error {
	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Amount != nil {
		fields["amount"] = *update.Amount
	}
	if update.Type != nil {
		fields["type"] = *update.Type
	}
	if update.Category != nil {
		fields["category"] = *update.Category
	}
	if update.Date != nil {
		fields["date"] = *update.Date
	}
	if update.Notes != nil {
		fields["notes"] = *update.Notes
	}
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&Transaction{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Transaction{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
