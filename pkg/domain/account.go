// Package domain holds the typed financial records the engine operates on
// and the enumerations that classify them. Records are plain data: all
// derivation logic lives in pkg/engine, all persistence in infra/repository.
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType classifies a money account.
type AccountType string

const (
	AccountBank       AccountType = "bank"
	AccountCash       AccountType = "cash"
	AccountWallet     AccountType = "wallet"
	AccountInvestment AccountType = "investment"
	AccountOther      AccountType = "other"
)

// Account is a user's money account. Balance may be negative for
// liability-like accounts (e.g. an overdrawn wallet); the engine treats
// accounts as read-only context and never mutates them.
type Account struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	BankName       string          `json:"bankName,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
