package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/domain"
)

// DefaultAnomalyThreshold is the minimum absolute percent deviation from
// the trailing average that flags a category.
const DefaultAnomalyThreshold = 30

const anomalyWindowMonths = 4

// DetectSpendingAnomalies compares each expense category's current-month
// spend against the mean of its previous three months. Months with zero
// spend are excluded from the baseline rather than counted as zero, and a
// category with no non-zero baseline months is skipped entirely. A
// deviation exactly at the threshold is flagged.
func DetectSpendingAnomalies(transactions []*domain.Transaction, threshold float64, now time.Time) []SpendingAnomaly {
	if threshold <= 0 {
		threshold = DefaultAnomalyThreshold
	}

	// window[cat][i] is the category total i months before the current one.
	window := map[string][anomalyWindowMonths]decimal.Decimal{}
	for i := 0; i < anomalyWindowMonths; i++ {
		ref := monthsAgo(now, i)
		for _, tx := range transactions {
			if tx.Type != domain.TransactionExpense || !sameMonth(tx.EffectiveDate(), ref) {
				continue
			}
			cat := tx.Category
			if cat == "" {
				cat = "other"
			}
			months := window[cat]
			months[i] = months[i].Add(tx.Amount)
			window[cat] = months
		}
	}

	anomalies := []SpendingAnomaly{}
	for category, months := range window {
		current := months[0]

		baselineSum := decimal.Zero
		baselineCount := 0
		for _, amount := range months[1:] {
			if amount.IsPositive() {
				baselineSum = baselineSum.Add(amount)
				baselineCount++
			}
		}
		if baselineCount == 0 {
			continue
		}
		average := baselineSum.Div(decimal.NewFromInt(int64(baselineCount)))

		rawChange := current.Sub(average).Div(average).Mul(hundred)
		absChange := rawChange.Abs().InexactFloat64()
		if absChange < threshold {
			continue
		}
		change := rawChange.Round(0)

		severity := SeverityLow
		switch {
		case absChange >= 80:
			severity = SeverityHigh
		case absChange >= 50:
			severity = SeverityMedium
		}

		anomalies = append(anomalies, SpendingAnomaly{
			Category:      category,
			CurrentMonth:  current,
			Average:       average.Round(0),
			ChangePercent: int(change.IntPart()),
			IsIncrease:    change.IsPositive(),
			Severity:      severity,
		})
	}

	sort.Slice(anomalies, func(i, j int) bool {
		ai, aj := abs(anomalies[i].ChangePercent), abs(anomalies[j].ChangePercent)
		if ai != aj {
			return ai > aj
		}
		return anomalies[i].Category < anomalies[j].Category
	})
	return anomalies
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
