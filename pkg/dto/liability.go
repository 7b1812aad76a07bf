package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LiabilityCreate is the payload for inserting a debt record.
type LiabilityCreate struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Type              string
	Name              string
	OutstandingAmount decimal.Decimal
	OriginalAmount    decimal.Decimal
	InterestRate      float64
	EMIAmount         decimal.Decimal
	DueDate           time.Time
	StartDate         time.Time
	EndDate           *time.Time
	IsRecurring       bool
	Notes             string
}

// LiabilityUpdate is a partial update of a debt record.
type LiabilityUpdate struct {
	Name              *string
	Type              *string
	OutstandingAmount *decimal.Decimal
	InterestRate      *float64
	EMIAmount         *decimal.Decimal
	DueDate           *time.Time
	IsRecurring       *bool
	Notes             *string
}
