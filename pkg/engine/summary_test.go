package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpulse/finpulse/pkg/domain"
)

func TestCalculateFinancialSummary_NetWorthIdentity(t *testing.T) {
	assets := []*domain.Asset{
		asset(domain.AssetBank, 300_000),
		asset(domain.AssetStocks, 200_000),
	}
	liabilities := []*domain.Liability{liability(200_000, 0)}

	summary := CalculateFinancialSummary(assets, liabilities, nil, testNow)

	assert.True(t, summary.TotalAssets.Equal(d(500_000)))
	assert.True(t, summary.TotalLiabilities.Equal(d(200_000)))
	assert.True(t, summary.NetWorth.Equal(summary.TotalAssets.Sub(summary.TotalLiabilities)))
}

func TestCalculateFinancialSummary_MonthlyFlows(t *testing.T) {
	transactions := []*domain.Transaction{
		income(1000, testNow),
		expense("rent", 700, testNow),
		// Last month's records must not leak into this month's totals.
		income(9999, monthsAgo(testNow, 1)),
		expense("rent", 9999, monthsAgo(testNow, 1)),
	}

	summary := CalculateFinancialSummary(nil, nil, transactions, testNow)

	assert.True(t, summary.MonthlyIncome.Equal(d(1000)))
	assert.True(t, summary.MonthlyExpenses.Equal(d(700)))
	assert.True(t, summary.MonthlySurplus.Equal(d(300)))
	assert.InDelta(t, 30.0, summary.SavingsRate, 0.001)
	assert.InDelta(t, 70.0, summary.ExpenseRatio, 0.001)
}

func TestCalculateFinancialSummary_ZeroDenominators(t *testing.T) {
	summary := CalculateFinancialSummary(nil, nil, nil, testNow)

	assert.Zero(t, summary.SavingsRate)
	assert.Zero(t, summary.ExpenseRatio)
	assert.Zero(t, summary.InvestmentRatio)
	assert.Zero(t, summary.EmergencyFundCoverage)
	assert.Zero(t, summary.DebtToIncomeRatio)
	assert.True(t, summary.NetWorth.IsZero())
}

func TestCalculateFinancialSummary_InvestmentRatio(t *testing.T) {
	assets := []*domain.Asset{
		asset(domain.AssetStocks, 30_000),
		asset(domain.AssetBank, 70_000),
	}

	summary := CalculateFinancialSummary(assets, nil, nil, testNow)
	assert.InDelta(t, 30.0, summary.InvestmentRatio, 0.001)

	// A negative net worth suppresses the ratio instead of reporting a
	// misleading negative percentage.
	liabilities := []*domain.Liability{liability(500_000, 0)}
	summary = CalculateFinancialSummary(assets, liabilities, nil, testNow)
	assert.Zero(t, summary.InvestmentRatio)
}

func TestCalculateFinancialSummary_EmergencyFundCoverage(t *testing.T) {
	assets := []*domain.Asset{
		asset(domain.AssetBank, 20_000),
		asset(domain.AssetCash, 10_000),
		asset(domain.AssetProperty, 1_000_000), // not liquid
	}
	transactions := []*domain.Transaction{expense("food", 10_000, testNow)}

	summary := CalculateFinancialSummary(assets, nil, transactions, testNow)
	assert.InDelta(t, 3.0, summary.EmergencyFundCoverage, 0.001)
}

func TestCalculateFinancialSummary_DebtToIncome(t *testing.T) {
	liabilities := []*domain.Liability{liability(100_000, 2_500)}
	transactions := []*domain.Transaction{income(10_000, testNow)}

	summary := CalculateFinancialSummary(nil, liabilities, transactions, testNow)
	assert.InDelta(t, 25.0, summary.DebtToIncomeRatio, 0.001)
}

func TestCalculateFinancialSummary_Trends(t *testing.T) {
	transactions := []*domain.Transaction{
		income(1200, testNow),
		income(1000, monthsAgo(testNow, 1)),
	}

	summary := CalculateFinancialSummary(nil, nil, transactions, testNow)

	require.Equal(t, "20%", summary.Trends.Income.Value)
	assert.True(t, summary.Trends.Income.IsUp)
}

func TestCalculateFinancialSummary_TrendZeroPrevious(t *testing.T) {
	transactions := []*domain.Transaction{income(1200, testNow)}

	summary := CalculateFinancialSummary(nil, nil, transactions, testNow)

	assert.Equal(t, "0%", summary.Trends.Income.Value)
	assert.True(t, summary.Trends.Income.IsUp)
}

func TestCalculateFinancialSummary_UndatedTransactionUsesCreatedAt(t *testing.T) {
	transaction := &domain.Transaction{
		Amount:    d(500),
		Type:      domain.TransactionIncome,
		CreatedAt: testNow,
	}

	summary := CalculateFinancialSummary(nil, nil, []*domain.Transaction{transaction}, testNow)
	assert.True(t, summary.MonthlyIncome.Equal(d(500)))
}
