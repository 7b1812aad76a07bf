package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/domain"
)

// CalculateExpenseBreakdown groups expense transactions by category and
// reports each category's share of total spend, largest first. All expense
// entries count, regardless of month; the caller scopes the input set if a
// narrower window is wanted.
func CalculateExpenseBreakdown(transactions []*domain.Transaction) []ExpenseBreakdown {
	byCategory := map[string]decimal.Decimal{}
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != domain.TransactionExpense {
			continue
		}
		cat := tx.Category
		if cat == "" {
			cat = "other"
		}
		byCategory[cat] = byCategory[cat].Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	out := make([]ExpenseBreakdown, 0, len(byCategory))
	for cat, amount := range byCategory {
		out = append(out, ExpenseBreakdown{
			Category:   cat,
			Amount:     amount,
			Percentage: percentOf(amount, total),
			Color:      expenseColor(cat),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// CalculateAssetAllocation groups assets by type and reports each type's
// share of total holdings, largest first.
func CalculateAssetAllocation(assets []*domain.Asset) []AssetAllocation {
	byType := map[string]decimal.Decimal{}
	total := decimal.Zero
	for _, a := range assets {
		t := string(a.AssetType)
		if t == "" {
			t = "other"
		}
		byType[t] = byType[t].Add(a.CurrentValue)
		total = total.Add(a.CurrentValue)
	}

	out := make([]AssetAllocation, 0, len(byType))
	for t, value := range byType {
		out = append(out, AssetAllocation{
			Type:       t,
			Value:      value,
			Percentage: percentOf(value, total),
			Color:      assetColor(t),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Type < out[j].Type
	})
	return out
}
