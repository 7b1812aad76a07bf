package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalCategory classifies what a savings goal is for.
type GoalCategory string

const (
	GoalEmergencyFund GoalCategory = "emergency_fund"
	GoalInvestment    GoalCategory = "investment"
	GoalPurchase      GoalCategory = "purchase"
	GoalRetirement    GoalCategory = "retirement"
	GoalEducation     GoalCategory = "education"
	GoalTravel        GoalCategory = "travel"
	GoalFreedom       GoalCategory = "freedom"
	GoalOther         GoalCategory = "other"
)

// FinancialGoal is a savings target. CurrentSaved may exceed TargetAmount
// once a goal is achieved. When IsRecurring is set with a positive
// RecurringAmount, the recurring service posts a monthly contribution
// expense and grows CurrentSaved.
type FinancialGoal struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"userId"`
	GoalName        string          `json:"goalName"`
	TargetAmount    decimal.Decimal `json:"targetAmount"`
	TargetDate      time.Time       `json:"targetDate"`
	CurrentSaved    decimal.Decimal `json:"currentSaved"`
	GoalCategory    GoalCategory    `json:"goalCategory"`
	IsRecurring     bool            `json:"isRecurring"`
	RecurringAmount decimal.Decimal `json:"recurringAmount"`
	Priority        int             `json:"priority"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
