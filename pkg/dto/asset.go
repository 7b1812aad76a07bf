package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetCreate is the payload for inserting an asset holding.
type AssetCreate struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	AssetType       string
	AssetName       string
	Quantity        decimal.Decimal
	CurrentValue    decimal.Decimal
	PurchaseValue   decimal.Decimal
	PurchaseDate    *time.Time
	IsRecurring     bool
	RecurringAmount decimal.Decimal
	Notes           string
}

// AssetUpdate is a partial update of an asset holding.
type AssetUpdate struct {
	AssetName       *string
	AssetType       *string
	Quantity        *decimal.Decimal
	CurrentValue    *decimal.Decimal
	PurchaseValue   *decimal.Decimal
	IsRecurring     *bool
	RecurringAmount *decimal.Decimal
	Notes           *string
}
