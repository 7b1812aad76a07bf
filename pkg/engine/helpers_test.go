package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/domain"
)

// Fixed processing date used across the engine tests. Mid-month keeps
// day-of-month arithmetic out of the way.
var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func tx(txType domain.TransactionType, category string, amount int64, date time.Time) *domain.Transaction {
	return &domain.Transaction{
		ID:       uuid.New(),
		Name:     category,
		Amount:   d(amount),
		Type:     txType,
		Category: category,
		Date:     &date,
	}
}

func expense(category string, amount int64, date time.Time) *domain.Transaction {
	return tx(domain.TransactionExpense, category, amount, date)
}

func income(amount int64, date time.Time) *domain.Transaction {
	return tx(domain.TransactionIncome, "salary", amount, date)
}

func asset(assetType domain.AssetType, value int64) *domain.Asset {
	return &domain.Asset{
		ID:           uuid.New(),
		AssetType:    assetType,
		AssetName:    string(assetType),
		CurrentValue: d(value),
	}
}

func liability(outstanding, emi int64) *domain.Liability {
	return &domain.Liability{
		ID:                uuid.New(),
		Type:              domain.LiabilityPersonalLoan,
		Name:              "loan",
		OutstandingAmount: d(outstanding),
		EMIAmount:         d(emi),
	}
}

func goal(name string, target, saved int64, targetDate time.Time) *domain.FinancialGoal {
	return &domain.FinancialGoal{
		ID:           uuid.New(),
		GoalName:     name,
		TargetAmount: d(target),
		CurrentSaved: d(saved),
		TargetDate:   targetDate,
	}
}
