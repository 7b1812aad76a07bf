package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/finpulse/pkg/domain"
)

func TestCalculateIncomeVsExpense(t *testing.T) {
	transactions := []*domain.Transaction{
		income(1000, testNow),
		expense("rent", 400, testNow),
		income(900, monthsAgo(testNow, 1)),
		income(800, monthsAgo(testNow, 5)),
	}

	series := CalculateIncomeVsExpense(transactions, testNow)

	require.Len(t, series, 6)
	// Oldest month first; testNow is June, so the series runs Jan..Jun.
	assert.Equal(t, "Jan", series[0].Month)
	assert.Equal(t, "Jun", series[5].Month)
	assert.True(t, series[0].Income.Equal(d(800)))
	assert.True(t, series[4].Income.Equal(d(900)))
	assert.True(t, series[5].Income.Equal(d(1000)))
	assert.True(t, series[5].Expense.Equal(d(400)))
}

func TestCalculateNetWorthTrend_AnchorsAtCurrent(t *testing.T) {
	assets := []*domain.Asset{asset(domain.AssetBank, 100_000)}
	liabilities := []*domain.Liability{liability(20_000, 0)}
	transactions := []*domain.Transaction{
		income(10_000, testNow),
		expense("rent", 4_000, testNow),
	}

	trend := CalculateNetWorthTrend(assets, liabilities, transactions, testNow)

	require.Len(t, trend, 6)
	// The newest point is the actual current net worth.
	assert.True(t, trend[5].NetWorth.Equal(d(80_000)))
	// The prior point backs out this month's net cash flow of 6000.
	assert.True(t, trend[4].NetWorth.Equal(d(74_000)))
	// No flows further back, so the series is flat before that.
	assert.True(t, trend[0].NetWorth.Equal(d(74_000)))
}

func TestCalculateNetWorthTrend_SplitConsistency(t *testing.T) {
	assets := []*domain.Asset{asset(domain.AssetBank, 50_000)}
	transactions := []*domain.Transaction{income(10_000, testNow)}

	trend := CalculateNetWorthTrend(assets, nil, transactions, testNow)

	for _, point := range trend {
		assert.True(t, point.Assets.Sub(point.Liabilities).Equal(point.NetWorth),
			"assets minus liabilities must reproduce the point's net worth")
	}
}

func TestGenerateMonthlySummaries(t *testing.T) {
	transactions := []*domain.Transaction{
		income(10_000, testNow),
		expense("rent", 5_000, testNow),
		expense("food", 2_000, testNow),
		income(8_000, monthsAgo(testNow, 1)),
	}

	summaries := GenerateMonthlySummaries(transactions, 6, testNow)

	require.Len(t, summaries, 6)
	current := summaries[0]
	assert.Equal(t, "June", current.Month)
	assert.Equal(t, 2025, current.Year)
	assert.True(t, current.TotalIncome.Equal(d(10_000)))
	assert.True(t, current.TotalExpenses.Equal(d(7_000)))
	assert.True(t, current.Surplus.Equal(d(3_000)))
	assert.InDelta(t, 30.0, current.SavingsRate, 0.001)
	assert.Equal(t, "rent", current.TopExpenseCategory)
	assert.True(t, current.TopExpenseAmount.Equal(d(5_000)))

	assert.Equal(t, "May", summaries[1].Month)
	assert.True(t, summaries[1].TotalIncome.Equal(d(8_000)))

	// Months with no spend report no top category.
	assert.Equal(t, "N/A", summaries[2].TopExpenseCategory)
}

func TestGenerateMonthlySummaries_DefaultsMonthsBack(t *testing.T) {
	summaries := GenerateMonthlySummaries(nil, 0, testNow)
	assert.Len(t, summaries, 6)
}
