package ledger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/finpulse/internal/fixtures/memuow"
	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
)

func newService(uow *memuow.UoW) *Service {
	return New(uow, slog.New(slog.DiscardHandler))
}

func TestCreateTransaction(t *testing.T) {
	uow := memuow.New()
	svc := newService(uow)
	userID := uuid.New()

	id, err := svc.CreateTransaction(context.Background(), userID, dto.TransactionCreate{
		Name:   "Salary",
		Amount: decimal.NewFromInt(80_000),
		Type:   "income",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	require.Len(t, uow.TransactionData, 1)
	stored := uow.TransactionData[0]
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, "other", stored.Category)
}

func TestCreateTransaction_Invalid(t *testing.T) {
	svc := newService(memuow.New())
	userID := uuid.New()

	_, err := svc.CreateTransaction(context.Background(), userID, dto.TransactionCreate{
		Name:   "Zero",
		Amount: decimal.Zero,
		Type:   "expense",
	})
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)

	_, err = svc.CreateTransaction(context.Background(), userID, dto.TransactionCreate{
		Name:   "Refund",
		Amount: decimal.NewFromInt(100),
		Type:   "refund",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransactionType)
}

func TestCreateTransaction_StoreError(t *testing.T) {
	uow := memuow.New()
	uow.FailTransactionCreate = errors.New("db down")
	svc := newService(uow)

	_, err := svc.CreateTransaction(context.Background(), uuid.New(), dto.TransactionCreate{
		Name:   "Salary",
		Amount: decimal.NewFromInt(100),
		Type:   "income",
	})
	require.Error(t, err)
	assert.Empty(t, uow.TransactionData)
}

func TestUpdateTransaction_Ownership(t *testing.T) {
	uow := memuow.New()
	svc := newService(uow)
	ownerID := uuid.New()
	txID := uuid.New()
	uow.TransactionData = []*domain.Transaction{{
		ID: txID, UserID: ownerID, Name: "Rent",
		Amount: decimal.NewFromInt(25_000), Type: domain.TransactionExpense,
	}}

	name := "Rent (updated)"
	err := svc.UpdateTransaction(context.Background(), uuid.New(), txID, dto.TransactionUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	require.NoError(t, svc.UpdateTransaction(context.Background(), ownerID, txID, dto.TransactionUpdate{Name: &name}))
	assert.Equal(t, "Rent (updated)", uow.TransactionData[0].Name)
}

func TestUpdateTransaction_Validation(t *testing.T) {
	svc := newService(memuow.New())
	bad := decimal.NewFromInt(-5)
	err := svc.UpdateTransaction(context.Background(), uuid.New(), uuid.New(), dto.TransactionUpdate{Amount: &bad})
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)

	badType := "refund"
	err = svc.UpdateTransaction(context.Background(), uuid.New(), uuid.New(), dto.TransactionUpdate{Type: &badType})
	assert.ErrorIs(t, err, domain.ErrInvalidTransactionType)
}

func TestDeleteTransaction(t *testing.T) {
	uow := memuow.New()
	svc := newService(uow)
	ownerID := uuid.New()
	txID := uuid.New()
	uow.TransactionData = []*domain.Transaction{{
		ID: txID, UserID: ownerID, Name: "Coffee",
		Amount: decimal.NewFromInt(250), Type: domain.TransactionExpense,
	}}

	err := svc.DeleteTransaction(context.Background(), uuid.New(), txID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)
	require.Len(t, uow.TransactionData, 1)

	require.NoError(t, svc.DeleteTransaction(context.Background(), ownerID, txID))
	assert.Empty(t, uow.TransactionData)

	err = svc.DeleteTransaction(context.Background(), ownerID, txID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateGoal(t *testing.T) {
	uow := memuow.New()
	svc := newService(uow)
	userID := uuid.New()

	id, err := svc.CreateGoal(context.Background(), userID, dto.GoalCreate{
		GoalName:     "Vacation",
		TargetAmount: decimal.NewFromInt(100_000),
		TargetDate:   time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, uow.GoalData, 1)
	assert.Equal(t, id, uow.GoalData[0].ID)
	assert.Equal(t, domain.GoalOther, uow.GoalData[0].GoalCategory)

	_, err = svc.CreateGoal(context.Background(), userID, dto.GoalCreate{
		GoalName:     "Bad",
		TargetAmount: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrAmountMustBePositive)
}

func TestCreateAsset_DefaultsType(t *testing.T) {
	uow := memuow.New()
	svc := newService(uow)

	_, err := svc.CreateAsset(context.Background(), uuid.New(), dto.AssetCreate{
		AssetName:    "Shoebox",
		CurrentValue: decimal.NewFromInt(5_000),
	})
	require.NoError(t, err)
	require.Len(t, uow.AssetData, 1)
	assert.Equal(t, domain.AssetOther, uow.AssetData[0].AssetType)
}

func TestCreateLiability_DefaultsType(t *testing.T) {
	uow := memuow.New()
	svc := newService(uow)

	_, err := svc.CreateLiability(context.Background(), uuid.New(), dto.LiabilityCreate{
		Name:              "Owed to friend",
		OutstandingAmount: decimal.NewFromInt(2_000),
	})
	require.NoError(t, err)
	require.Len(t, uow.LiabilityData, 1)
	assert.Equal(t, domain.LiabilityOther, uow.LiabilityData[0].Type)
}
