// Package dto carries the write-side shapes the repositories accept.
// Create DTOs hold full new-record data; Update DTOs use pointer fields so
// only the set fields are written.
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate is the payload for inserting a ledger entry.
type TransactionCreate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Amount      decimal.Decimal
	Type        string
	Category    string
	AccountID   *uuid.UUID
	Date        *time.Time
	IsRecurring bool
	Notes       string
}

// TransactionUpdate is a partial update of a ledger entry.
type TransactionUpdate struct {
	Name     *string
	Amount   *decimal.Decimal
	Type     *string
	Category *string
	Date     *time.Time
	Notes    *string
}
