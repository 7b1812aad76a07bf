package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType classifies an asset holding.
type AssetType string

const (
	AssetGold         AssetType = "gold"
	AssetCrypto       AssetType = "crypto"
	AssetStocks       AssetType = "stocks"
	AssetMutualFunds  AssetType = "mutual_funds"
	AssetProperty     AssetType = "property"
	AssetCash         AssetType = "cash"
	AssetBank         AssetType = "bank"
	AssetFixedDeposit AssetType = "fixed_deposit"
	AssetPPF          AssetType = "ppf"
	AssetOther        AssetType = "other"
)

// Asset is a valued holding. When IsRecurring is set with a positive
// RecurringAmount, the recurring service posts a monthly SIP expense and
// grows CurrentValue by the contribution.
type Asset struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"userId"`
	AssetType       AssetType       `json:"assetType"`
	AssetName       string          `json:"assetName"`
	Quantity        decimal.Decimal `json:"quantity"`
	CurrentValue    decimal.Decimal `json:"currentValue"`
	PurchaseValue   decimal.Decimal `json:"purchaseValue"`
	PurchaseDate    *time.Time      `json:"purchaseDate,omitempty"`
	IsRecurring     bool            `json:"isRecurring"`
	RecurringAmount decimal.Decimal `json:"recurringAmount"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Growth is the unrealized gain since purchase.
func (a *Asset) Growth() decimal.Decimal {
	return a.CurrentValue.Sub(a.PurchaseValue)
}
