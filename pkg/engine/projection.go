package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/currency"
)

// milestoneLadder is the fixed set of wealth milestones, in base currency
// units. Each is reported at most once, at the first month reached.
var milestoneLadder = []int64{
	100_000,
	250_000,
	500_000,
	1_000_000,
	2_500_000,
	5_000_000,
	10_000_000,
}

// SimulateWealthProjection runs an ordinary-annuity compounding simulation:
// each month the contribution is added first, then the monthly return is
// applied. Snapshots are recorded every third month and at the final month;
// milestone crossings carry an estimated calendar date relative to now.
// The simulation is independent of any stored records.
func SimulateWealthProjection(
	monthlySavings decimal.Decimal,
	annualReturnPercent float64,
	durationYears int,
	initialAmount decimal.Decimal,
	now time.Time,
) ProjectionResult {
	totalMonths := durationYears * 12
	growth := decimal.NewFromFloat(1 + annualReturnPercent/100/12)

	projections := []WealthProjection{}
	milestones := []ProjectionMilestone{}
	reached := map[int64]bool{}

	wealth := initialAmount
	for m := 0; m <= totalMonths; m++ {
		if m%3 == 0 || m == totalMonths {
			invested := initialAmount.Add(monthlySavings.Mul(decimal.NewFromInt(int64(m))))
			label := "Now"
			if m > 0 {
				label = fmt.Sprintf("%dY %dM", m/12, m%12)
			}
			projections = append(projections, WealthProjection{
				Year:            m / 12,
				Month:           m % 12,
				Label:           label,
				ProjectedWealth: wealth.Round(0),
				TotalInvested:   invested,
				Returns:         wealth.Sub(invested).Round(0),
			})
		}

		for _, target := range milestoneLadder {
			amount := decimal.NewFromInt(target)
			if reached[target] || wealth.LessThan(amount) {
				continue
			}
			reached[target] = true
			milestones = append(milestones, ProjectionMilestone{
				Amount:        amount,
				Label:         currency.Format(amount),
				EstimatedDate: now.AddDate(0, m, 0).Format("Jan 2006"),
				MonthsToReach: m,
			})
		}

		wealth = wealth.Add(monthlySavings).Mul(growth)
	}

	return ProjectionResult{Projections: projections, Milestones: milestones}
}
