package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountCreate is the payload for inserting a money account.
type AccountCreate struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           string
	OpeningBalance decimal.Decimal
	Balance        decimal.Decimal
	BankName       string
}

// AccountUpdate is a partial update of a money account.
type AccountUpdate struct {
	Name     *string
	Type     *string
	Balance  *decimal.Decimal
	BankName *string
}
