package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType signs a transaction: amounts are stored as non-negative
// magnitudes and the type carries the direction.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer:
		return true
	}
	return false
}

// Transaction is a single ledger entry. Entries with IsRecurring set are
// templates: they are never mutated, and the recurring service materializes
// one concrete non-recurring sibling per calendar month from each of them.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"userId"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	AccountID   *uuid.UUID      `json:"accountId,omitempty"`
	Date        *time.Time      `json:"date,omitempty"`
	IsRecurring bool            `json:"isRecurring"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// EffectiveDate returns the transaction's ledger date, falling back to the
// creation timestamp when no explicit date was recorded.
func (t *Transaction) EffectiveDate() time.Time {
	if t.Date != nil {
		return *t.Date
	}
	return t.CreatedAt
}
