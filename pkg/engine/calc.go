package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/domain"
)

var hundred = decimal.NewFromInt(100)

// percentOf returns part/whole*100 rounded to one decimal, or 0 when the
// denominator is zero. Guarding here is what keeps every ratio in the
// summary NaN-free for empty inputs.
func percentOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(1).InexactFloat64()
}

// ratioOf returns part/whole rounded to one decimal, or 0 when the
// denominator is zero.
func ratioOf(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Round(1).InexactFloat64()
}

// monthlyTotal sums the amounts of transactions of the given type dated in
// the calendar month of ref.
func monthlyTotal(transactions []*domain.Transaction, txType domain.TransactionType, ref time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != txType {
			continue
		}
		if !sameMonth(tx.EffectiveDate(), ref) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

// trendOf compares current against previous as a MoM movement. A zero
// previous value is reported as a defined "0%" trend whose direction
// follows the sign of current, mirroring how the summary treats all other
// zero denominators.
func trendOf(current, previous decimal.Decimal) Trend {
	if previous.IsZero() {
		return Trend{Value: "0%", IsUp: !current.IsNegative()}
	}
	diff := current.Sub(previous).Div(previous).Mul(hundred).Round(1)
	return Trend{Value: diff.Abs().String() + "%", IsUp: !diff.IsNegative()}
}
