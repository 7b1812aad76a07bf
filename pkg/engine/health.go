package engine

import (
	"math"

	"github.com/finpulse/finpulse/pkg/domain"
)

// Sub-score weights. They sum to exactly 1.0.
const (
	weightSavingsRate   = 0.25
	weightDebtToIncome  = 0.20
	weightEmergencyFund = 0.20
	weightExpenses      = 0.15
	weightGoalProgress  = 0.20
)

// CalculateHealthScore maps five summary metrics through fixed step
// functions, weighs them into a 0-100 composite and classifies the result
// into a risk tier with improvement suggestions.
func CalculateHealthScore(summary FinancialSummary, goals []*domain.FinancialGoal) FinancialHealthScore {
	var savingsScore int
	switch {
	case summary.SavingsRate >= 30:
		savingsScore = 100
	case summary.SavingsRate >= 20:
		savingsScore = 80
	case summary.SavingsRate >= 10:
		savingsScore = 60
	case summary.SavingsRate >= 5:
		savingsScore = 40
	case summary.SavingsRate > 0:
		savingsScore = 20
	}

	var debtScore int
	switch {
	case summary.DebtToIncomeRatio <= 10:
		debtScore = 100
	case summary.DebtToIncomeRatio <= 20:
		debtScore = 80
	case summary.DebtToIncomeRatio <= 35:
		debtScore = 60
	case summary.DebtToIncomeRatio <= 50:
		debtScore = 40
	default:
		debtScore = 20
	}

	var emergencyScore int
	switch {
	case summary.EmergencyFundCoverage >= 6:
		emergencyScore = 100
	case summary.EmergencyFundCoverage >= 3:
		emergencyScore = 75
	case summary.EmergencyFundCoverage >= 1:
		emergencyScore = 50
	default:
		emergencyScore = 20
	}

	var expenseScore int
	switch {
	case summary.ExpenseRatio <= 50:
		expenseScore = 100
	case summary.ExpenseRatio <= 70:
		expenseScore = 75
	case summary.ExpenseRatio <= 85:
		expenseScore = 50
	default:
		expenseScore = 25
	}

	// Neutral score when the user has set no goals.
	goalScore := 50
	if len(goals) > 0 {
		sum := 0.0
		for _, g := range goals {
			pct := 0.0
			if g.TargetAmount.IsPositive() {
				pct = g.CurrentSaved.Div(g.TargetAmount).Mul(hundred).InexactFloat64()
			}
			sum += math.Min(pct, 100)
		}
		goalScore = int(math.Min(math.Round(sum/float64(len(goals))), 100))
	}

	totalScore := int(math.Round(
		float64(savingsScore)*weightSavingsRate +
			float64(debtScore)*weightDebtToIncome +
			float64(emergencyScore)*weightEmergencyFund +
			float64(expenseScore)*weightExpenses +
			float64(goalScore)*weightGoalProgress,
	))

	var riskLevel RiskLevel
	var riskColor string
	switch {
	case totalScore >= 80:
		riskLevel, riskColor = RiskExcellent, "#10b981"
	case totalScore >= 65:
		riskLevel, riskColor = RiskGood, "#22c55e"
	case totalScore >= 45:
		riskLevel, riskColor = RiskFair, "#f59e0b"
	case totalScore >= 25:
		riskLevel, riskColor = RiskPoor, "#f97316"
	default:
		riskLevel, riskColor = RiskCritical, "#ef4444"
	}

	suggestions := []string{}
	if savingsScore < 60 {
		suggestions = append(suggestions, "Aim to save at least 20% of your monthly income.")
	}
	if debtScore < 60 {
		suggestions = append(suggestions, "Your debt payments are high. Consider debt consolidation or faster payoff.")
	}
	if emergencyScore < 60 {
		suggestions = append(suggestions, "Build an emergency fund covering at least 3 months of expenses.")
	}
	if expenseScore < 60 {
		suggestions = append(suggestions, "Your expenses are too high relative to income. Review subscriptions and discretionary spending.")
	}
	if goalScore < 60 {
		suggestions = append(suggestions, "You're behind on your financial goals. Increase monthly contributions.")
	}
	if summary.InvestmentRatio < 30 {
		suggestions = append(suggestions, "Consider investing more of your net worth for long-term growth.")
	}

	return FinancialHealthScore{
		TotalScore: totalScore,
		RiskLevel:  riskLevel,
		RiskColor:  riskColor,
		Breakdown: HealthScoreBreakdown{
			SavingsRate:      ScoreComponent{Score: savingsScore, Weight: 25, Label: "Savings Rate", RawValue: summary.SavingsRate, Unit: "%"},
			DebtToIncome:     ScoreComponent{Score: debtScore, Weight: 20, Label: "Debt-to-Income", RawValue: summary.DebtToIncomeRatio, Unit: "%"},
			EmergencyFund:    ScoreComponent{Score: emergencyScore, Weight: 20, Label: "Emergency Fund", RawValue: summary.EmergencyFundCoverage, Unit: "m"},
			ExpenseStability: ScoreComponent{Score: expenseScore, Weight: 15, Label: "Expense Control", RawValue: summary.ExpenseRatio, Unit: "%"},
			GoalProgress:     ScoreComponent{Score: goalScore, Weight: 20, Label: "Goal Progress", RawValue: float64(goalScore), Unit: "%"},
		},
		Suggestions: suggestions,
	}
}
