package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/domain"
)

// investedAssetTypes are the asset classes counted toward the investment
// ratio.
var investedAssetTypes = map[domain.AssetType]bool{
	domain.AssetStocks:       true,
	domain.AssetMutualFunds:  true,
	domain.AssetCrypto:       true,
	domain.AssetGold:         true,
	domain.AssetPPF:          true,
	domain.AssetFixedDeposit: true,
}

// liquidAssetTypes are the asset classes counted toward emergency-fund
// coverage. Fixed deposits count as both invested and liquid.
var liquidAssetTypes = map[domain.AssetType]bool{
	domain.AssetCash:         true,
	domain.AssetBank:         true,
	domain.AssetFixedDeposit: true,
}

// CalculateFinancialSummary derives the headline statistics for the
// calendar month of now. "This month" and "last month" always follow the
// processing date, never any record's stored date.
func CalculateFinancialSummary(
	assets []*domain.Asset,
	liabilities []*domain.Liability,
	transactions []*domain.Transaction,
	now time.Time,
) FinancialSummary {
	totalAssets := decimal.Zero
	investedAssets := decimal.Zero
	liquidAssets := decimal.Zero
	for _, a := range assets {
		totalAssets = totalAssets.Add(a.CurrentValue)
		if investedAssetTypes[a.AssetType] {
			investedAssets = investedAssets.Add(a.CurrentValue)
		}
		if liquidAssetTypes[a.AssetType] {
			liquidAssets = liquidAssets.Add(a.CurrentValue)
		}
	}

	totalLiabilities := decimal.Zero
	totalEMI := decimal.Zero
	for _, l := range liabilities {
		totalLiabilities = totalLiabilities.Add(l.OutstandingAmount)
		totalEMI = totalEMI.Add(l.EMIAmount)
	}
	netWorth := totalAssets.Sub(totalLiabilities)

	monthlyIncome := monthlyTotal(transactions, domain.TransactionIncome, now)
	monthlyExpenses := monthlyTotal(transactions, domain.TransactionExpense, now)
	monthlySurplus := monthlyIncome.Sub(monthlyExpenses)

	investmentRatio := 0.0
	if netWorth.IsPositive() {
		investmentRatio = percentOf(investedAssets, netWorth)
	}

	prev := monthsAgo(now, 1)
	prevIncome := monthlyTotal(transactions, domain.TransactionIncome, prev)
	prevExpenses := monthlyTotal(transactions, domain.TransactionExpense, prev)
	prevSurplus := prevIncome.Sub(prevExpenses)

	return FinancialSummary{
		TotalAssets:           totalAssets,
		TotalLiabilities:      totalLiabilities,
		NetWorth:              netWorth,
		MonthlyIncome:         monthlyIncome,
		MonthlyExpenses:       monthlyExpenses,
		MonthlySurplus:        monthlySurplus,
		SavingsRate:           percentOf(monthlySurplus, monthlyIncome),
		ExpenseRatio:          percentOf(monthlyExpenses, monthlyIncome),
		InvestmentRatio:       investmentRatio,
		EmergencyFundCoverage: ratioOf(liquidAssets, monthlyExpenses),
		DebtToIncomeRatio:     percentOf(totalEMI, monthlyIncome),
		Trends: SummaryTrends{
			// Net worth has no stored history; approximate last month's
			// value as the current one minus this month's surplus.
			NetWorth: trendOf(netWorth, netWorth.Sub(monthlySurplus)),
			Income:   trendOf(monthlyIncome, prevIncome),
			Expenses: trendOf(monthlyExpenses, prevExpenses),
			Surplus:  trendOf(monthlySurplus, prevSurplus),
		},
	}
}
