package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/finpulse/pkg/domain"
)

func TestCalculateHealthScore_StepFunctions(t *testing.T) {
	tests := []struct {
		name    string
		summary FinancialSummary
		check   func(t *testing.T, score FinancialHealthScore)
	}{
		{
			name:    "debt to income of 25 scores 60",
			summary: FinancialSummary{DebtToIncomeRatio: 25},
			check: func(t *testing.T, score FinancialHealthScore) {
				assert.Equal(t, 60, score.Breakdown.DebtToIncome.Score)
			},
		},
		{
			name:    "zero emergency fund scores 20",
			summary: FinancialSummary{EmergencyFundCoverage: 0},
			check: func(t *testing.T, score FinancialHealthScore) {
				assert.Equal(t, 20, score.Breakdown.EmergencyFund.Score)
			},
		},
		{
			name:    "savings rate of 30 scores 100",
			summary: FinancialSummary{SavingsRate: 30},
			check: func(t *testing.T, score FinancialHealthScore) {
				assert.Equal(t, 100, score.Breakdown.SavingsRate.Score)
			},
		},
		{
			name:    "negative savings rate scores 0",
			summary: FinancialSummary{SavingsRate: -5},
			check: func(t *testing.T, score FinancialHealthScore) {
				assert.Equal(t, 0, score.Breakdown.SavingsRate.Score)
			},
		},
		{
			name:    "expense ratio of 50 scores 100",
			summary: FinancialSummary{ExpenseRatio: 50},
			check: func(t *testing.T, score FinancialHealthScore) {
				assert.Equal(t, 100, score.Breakdown.ExpenseStability.Score)
			},
		},
		{
			name:    "expense ratio above 85 scores 25",
			summary: FinancialSummary{ExpenseRatio: 90},
			check: func(t *testing.T, score FinancialHealthScore) {
				assert.Equal(t, 25, score.Breakdown.ExpenseStability.Score)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, CalculateHealthScore(tt.summary, nil))
		})
	}
}

func TestCalculateHealthScore_NoGoalsIsNeutral(t *testing.T) {
	score := CalculateHealthScore(FinancialSummary{}, nil)
	assert.Equal(t, 50, score.Breakdown.GoalProgress.Score)
}

func TestCalculateHealthScore_GoalProgressAverages(t *testing.T) {
	goals := []*domain.FinancialGoal{
		goal("done", 1000, 1000, testNow),  // 100%
		goal("half", 1000, 500, testNow),   // 50%
		goal("over", 1000, 5000, testNow),  // clamps to 100%
	}

	score := CalculateHealthScore(FinancialSummary{}, goals)
	assert.Equal(t, 83, score.Breakdown.GoalProgress.Score)
}

func TestCalculateHealthScore_WeightedTotal(t *testing.T) {
	summary := FinancialSummary{
		SavingsRate:           35, // 100
		DebtToIncomeRatio:     5,  // 100
		EmergencyFundCoverage: 6,  // 100
		ExpenseRatio:          40, // 100
		InvestmentRatio:       50,
	}

	score := CalculateHealthScore(summary, nil)

	// 100*.25 + 100*.20 + 100*.20 + 100*.15 + 50*.20
	assert.Equal(t, 90, score.TotalScore)
	assert.Equal(t, RiskExcellent, score.RiskLevel)
	assert.Equal(t, "#10b981", score.RiskColor)
}

func TestCalculateHealthScore_RangeAndTiers(t *testing.T) {
	summaries := []FinancialSummary{
		{},
		{SavingsRate: 50, DebtToIncomeRatio: 5, EmergencyFundCoverage: 12, ExpenseRatio: 30},
		{SavingsRate: -10, DebtToIncomeRatio: 90, EmergencyFundCoverage: 0, ExpenseRatio: 120},
		{SavingsRate: 12, DebtToIncomeRatio: 30, EmergencyFundCoverage: 2, ExpenseRatio: 75},
	}
	for _, summary := range summaries {
		score := CalculateHealthScore(summary, nil)
		assert.GreaterOrEqual(t, score.TotalScore, 0)
		assert.LessOrEqual(t, score.TotalScore, 100)
		assert.NotEmpty(t, score.RiskLevel)
		assert.NotEmpty(t, score.RiskColor)
	}
}

func TestCalculateHealthScore_WorstCaseIsCritical(t *testing.T) {
	summary := FinancialSummary{
		SavingsRate:           -10,
		DebtToIncomeRatio:     90,
		EmergencyFundCoverage: 0,
		ExpenseRatio:          120,
	}
	goals := []*domain.FinancialGoal{goal("stalled", 10_000, 0, testNow)}

	score := CalculateHealthScore(summary, goals)

	// 0*.25 + 20*.20 + 20*.20 + 25*.15 + 0*.20 = 11.75 -> 12
	assert.Equal(t, 12, score.TotalScore)
	assert.Equal(t, RiskCritical, score.RiskLevel)
}

func TestCalculateHealthScore_Suggestions(t *testing.T) {
	summary := FinancialSummary{
		SavingsRate:           2,
		DebtToIncomeRatio:     60,
		EmergencyFundCoverage: 0,
		ExpenseRatio:          95,
		InvestmentRatio:       10,
	}

	score := CalculateHealthScore(summary, nil)

	// Every sub-score is weak and the investment ratio is low, so all six
	// suggestion rules fire.
	require.Len(t, score.Suggestions, 6)
}

func TestCalculateHealthScore_StrongFinancesFewSuggestions(t *testing.T) {
	summary := FinancialSummary{
		SavingsRate:           35,
		DebtToIncomeRatio:     5,
		EmergencyFundCoverage: 6,
		ExpenseRatio:          40,
		InvestmentRatio:       50,
	}
	goals := []*domain.FinancialGoal{goal("done", 1000, 900, testNow)}

	score := CalculateHealthScore(summary, goals)
	assert.Empty(t, score.Suggestions)
}
