package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LiabilityType classifies an outstanding debt.
type LiabilityType string

const (
	LiabilityPersonalLoan  LiabilityType = "personal_loan"
	LiabilityHomeLoan      LiabilityType = "home_loan"
	LiabilityCarLoan       LiabilityType = "car_loan"
	LiabilityEducationLoan LiabilityType = "education_loan"
	LiabilityEMI           LiabilityType = "emi"
	LiabilityCreditCard    LiabilityType = "credit_card"
	LiabilityOther         LiabilityType = "other"
)

// Liability is an outstanding debt. When IsRecurring is set, the recurring
// service posts the EMI as an expense each month. OutstandingAmount is not
// decremented when an EMI posts; principal paydown is recorded only through
// explicit updates.
type Liability struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"userId"`
	Type              LiabilityType   `json:"type"`
	Name              string          `json:"name"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	OriginalAmount    decimal.Decimal `json:"originalAmount"`
	InterestRate      float64         `json:"interestRate"`
	EMIAmount         decimal.Decimal `json:"emiAmount"`
	DueDate           time.Time       `json:"dueDate"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           *time.Time      `json:"endDate,omitempty"`
	IsRecurring       bool            `json:"isRecurring"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
