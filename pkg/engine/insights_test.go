package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insightIDs(insights []FinancialInsight) []string {
	ids := make([]string, len(insights))
	for i, in := range insights {
		ids[i] = in.ID
	}
	return ids
}

func TestGenerateInsights_StrongSavings(t *testing.T) {
	summary := FinancialSummary{SavingsRate: 25, EmergencyFundCoverage: 4}

	insights := GenerateInsights(summary, nil, nil, FinancialHealthScore{TotalScore: 70})

	ids := insightIDs(insights)
	assert.Contains(t, ids, "savings-positive")
	assert.Contains(t, ids, "emergency-fund")
	assert.NotContains(t, ids, "savings-warning")
	assert.NotContains(t, ids, "health-excellent")
	assert.NotContains(t, ids, "health-warning")
}

func TestGenerateInsights_LowSavingsAndHealth(t *testing.T) {
	summary := FinancialSummary{SavingsRate: 5}
	health := FinancialHealthScore{
		TotalScore:  30,
		Suggestions: []string{"Build an emergency fund covering at least 3 months of expenses."},
	}

	insights := GenerateInsights(summary, nil, nil, health)

	ids := insightIDs(insights)
	assert.Contains(t, ids, "savings-warning")
	assert.Contains(t, ids, "health-warning")
}

func TestGenerateInsights_AnomaliesCappedAtThree(t *testing.T) {
	anomalies := []SpendingAnomaly{
		{Category: "a", ChangePercent: 90, IsIncrease: true, Severity: SeverityHigh},
		{Category: "b", ChangePercent: 70, IsIncrease: true, Severity: SeverityMedium},
		{Category: "c", ChangePercent: 50, IsIncrease: false, Severity: SeverityMedium},
		{Category: "d", ChangePercent: 40, IsIncrease: true, Severity: SeverityLow},
	}

	insights := GenerateInsights(FinancialSummary{SavingsRate: 15}, anomalies, nil, FinancialHealthScore{TotalScore: 60})

	ids := insightIDs(insights)
	assert.Contains(t, ids, "anomaly-a")
	assert.Contains(t, ids, "anomaly-b")
	assert.Contains(t, ids, "anomaly-c")
	assert.NotContains(t, ids, "anomaly-d")
}

func TestGenerateInsights_GoalStates(t *testing.T) {
	feasibilities := []GoalFeasibility{
		{GoalID: "g1", GoalName: "done", PercentComplete: 100, IsFeasible: true},
		{GoalID: "g2", GoalName: "risky", PercentComplete: 20, IsFeasible: false,
			RequiredMonthlySavings: d(50_000), CurrentSurplus: d(10_000)},
		{GoalID: "g3", GoalName: "rolling", PercentComplete: 40, IsFeasible: true},
		{GoalID: "g4", GoalName: "untouched", PercentComplete: 0, IsFeasible: true},
	}

	insights := GenerateInsights(FinancialSummary{SavingsRate: 15}, nil, feasibilities, FinancialHealthScore{TotalScore: 60})

	ids := insightIDs(insights)
	assert.Contains(t, ids, "goal-complete-g1")
	assert.Contains(t, ids, "goal-warn-g2")
	assert.Contains(t, ids, "goal-progress-g3")
	// An untouched but feasible goal generates nothing.
	for _, id := range ids {
		assert.NotContains(t, id, "g4")
	}
}

func TestGenerateInsights_GoalAtRiskMentionsAmounts(t *testing.T) {
	feasibilities := []GoalFeasibility{
		{GoalID: "g1", GoalName: "house", PercentComplete: 10, IsFeasible: false,
			RequiredMonthlySavings: d(125_000), CurrentSurplus: d(30_000)},
	}

	insights := GenerateInsights(FinancialSummary{SavingsRate: 15}, nil, feasibilities, FinancialHealthScore{TotalScore: 60})

	var atRisk *FinancialInsight
	for i := range insights {
		if insights[i].ID == "goal-warn-g1" {
			atRisk = &insights[i]
		}
	}
	require.NotNil(t, atRisk)
	assert.Equal(t, InsightCritical, atRisk.Type)
	assert.Contains(t, atRisk.Message, "₹1,25,000")
	assert.Contains(t, atRisk.Message, "₹30,000")
}

func TestGenerateInsights_ExcellentHealth(t *testing.T) {
	insights := GenerateInsights(FinancialSummary{SavingsRate: 15}, nil, nil, FinancialHealthScore{TotalScore: 85})
	assert.Contains(t, insightIDs(insights), "health-excellent")
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Mutual funds", capitalize("mutual_funds"))
	assert.Equal(t, "Food", capitalize("food"))
	assert.Equal(t, "", capitalize(""))
}
