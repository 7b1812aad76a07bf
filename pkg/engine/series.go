package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/domain"
)

const trendMonths = 6

// CalculateIncomeVsExpense builds the 6-month income/expense flow series
// ending at the month of now, oldest month first.
func CalculateIncomeVsExpense(transactions []*domain.Transaction, now time.Time) []IncomeVsExpense {
	out := make([]IncomeVsExpense, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		ref := monthsAgo(now, i)
		out = append(out, IncomeVsExpense{
			Month:   ref.Format("Jan"),
			Income:  monthlyTotal(transactions, domain.TransactionIncome, ref),
			Expense: monthlyTotal(transactions, domain.TransactionExpense, ref),
		})
	}
	return out
}

// CalculateNetWorthTrend reconstructs a 6-month net-worth series by walking
// backward from the current net worth through each month's net cash flow.
// There are no stored historical snapshots, so this is an estimate for
// visualization: the asset/liability split of each historical point
// apportions the net-worth delta 60/40.
func CalculateNetWorthTrend(
	assets []*domain.Asset,
	liabilities []*domain.Liability,
	transactions []*domain.Transaction,
	now time.Time,
) []NetWorthTrend {
	totalAssets := decimal.Zero
	for _, a := range assets {
		totalAssets = totalAssets.Add(a.CurrentValue)
	}
	totalLiabilities := decimal.Zero
	for _, l := range liabilities {
		totalLiabilities = totalLiabilities.Add(l.OutstandingAmount)
	}
	currentNetWorth := totalAssets.Sub(totalLiabilities)

	cashFlows := make([]decimal.Decimal, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		ref := monthsAgo(now, i)
		income := monthlyTotal(transactions, domain.TransactionIncome, ref)
		expense := monthlyTotal(transactions, domain.TransactionExpense, ref)
		cashFlows = append(cashFlows, income.Sub(expense))
	}

	// netWorth[i] = netWorth[i+1] - cashFlow[i+1], anchored at the current
	// month.
	values := make([]decimal.Decimal, trendMonths)
	running := currentNetWorth
	for i := trendMonths - 1; i >= 0; i-- {
		values[i] = running
		running = running.Sub(cashFlows[i])
	}

	assetShare := decimal.NewFromFloat(0.6)
	liabilityShare := decimal.NewFromFloat(0.4)
	out := make([]NetWorthTrend, 0, trendMonths)
	for i := 0; i < trendMonths; i++ {
		ref := monthsAgo(now, trendMonths-1-i)
		delta := currentNetWorth.Sub(values[i])
		out = append(out, NetWorthTrend{
			Month:       ref.Format("Jan"),
			Assets:      totalAssets.Sub(delta.Mul(assetShare)),
			Liabilities: totalLiabilities.Sub(delta.Mul(liabilityShare)),
			NetWorth:    values[i],
		})
	}
	return out
}

// GenerateMonthlySummaries digests the last monthsBack calendar months,
// newest first: totals, surplus, savings rate and the heaviest expense
// category of each month.
func GenerateMonthlySummaries(transactions []*domain.Transaction, monthsBack int, now time.Time) []MonthlySummary {
	if monthsBack <= 0 {
		monthsBack = trendMonths
	}
	out := make([]MonthlySummary, 0, monthsBack)
	for i := 0; i < monthsBack; i++ {
		ref := monthsAgo(now, i)
		income := monthlyTotal(transactions, domain.TransactionIncome, ref)
		expenses := monthlyTotal(transactions, domain.TransactionExpense, ref)
		surplus := income.Sub(expenses)

		byCategory := map[string]decimal.Decimal{}
		for _, tx := range transactions {
			if tx.Type != domain.TransactionExpense || !sameMonth(tx.EffectiveDate(), ref) {
				continue
			}
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
		topCategory := "N/A"
		topAmount := decimal.Zero
		for cat, amount := range byCategory {
			if amount.GreaterThan(topAmount) || (amount.Equal(topAmount) && topCategory != "N/A" && cat < topCategory) {
				topCategory = cat
				topAmount = amount
			}
		}

		savingsRate := 0.0
		if income.IsPositive() {
			savingsRate = surplus.Div(income).Mul(hundred).Round(0).InexactFloat64()
		}
		out = append(out, MonthlySummary{
			Month:              ref.Format("January"),
			Year:               ref.Year(),
			TotalIncome:        income,
			TotalExpenses:      expenses,
			Surplus:            surplus,
			SavingsRate:        savingsRate,
			TopExpenseCategory: topCategory,
			TopExpenseAmount:   topAmount,
		})
	}
	return out
}
