package engine

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/domain"
)

// AnalyzeGoalFeasibility checks each goal's required monthly savings
// against the available surplus. Months remaining is a whole-month floor
// and never drops below one, so a goal due this month still divides by one
// rather than zero.
func AnalyzeGoalFeasibility(goals []*domain.FinancialGoal, monthlySurplus decimal.Decimal, now time.Time) []GoalFeasibility {
	out := make([]GoalFeasibility, 0, len(goals))
	for _, goal := range goals {
		monthsRemaining := (goal.TargetDate.Year()-now.Year())*12 +
			int(goal.TargetDate.Month()-now.Month())
		if monthsRemaining < 1 {
			monthsRemaining = 1
		}

		remaining := goal.TargetAmount.Sub(goal.CurrentSaved)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		// Feasibility compares the exact requirement; the reported figure
		// is rounded for display.
		required := remaining.Div(decimal.NewFromInt(int64(monthsRemaining)))

		percentComplete := 0.0
		if goal.TargetAmount.IsPositive() {
			percentComplete = math.Min(100, goal.CurrentSaved.Div(goal.TargetAmount).Mul(hundred).Round(1).InexactFloat64())
		}

		out = append(out, GoalFeasibility{
			GoalID:                 goal.ID.String(),
			GoalName:               goal.GoalName,
			TargetAmount:           goal.TargetAmount,
			CurrentSaved:           goal.CurrentSaved,
			PercentComplete:        percentComplete,
			TimeRemainingMonths:    monthsRemaining,
			RequiredMonthlySavings: required.Round(0),
			IsFeasible:             required.LessThanOrEqual(monthlySurplus),
			CurrentSurplus:         monthlySurplus,
		})
	}
	return out
}
