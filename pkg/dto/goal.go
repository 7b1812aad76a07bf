package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalCreate is the payload for inserting a savings goal.
type GoalCreate struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	GoalName        string
	TargetAmount    decimal.Decimal
	TargetDate      time.Time
	CurrentSaved    decimal.Decimal
	GoalCategory    string
	IsRecurring     bool
	RecurringAmount decimal.Decimal
	Priority        int
	Notes           string
}

// GoalUpdate is a partial update of a savings goal.
type GoalUpdate struct {
	GoalName        *string
	TargetAmount    *decimal.Decimal
	TargetDate      *time.Time
	CurrentSaved    *decimal.Decimal
	GoalCategory    *string
	IsRecurring     *bool
	RecurringAmount *decimal.Decimal
	Priority        *int
	Notes           *string
}
