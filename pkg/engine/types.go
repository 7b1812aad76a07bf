// Package engine is the analytics core: pure functions that derive summary
// statistics, trend series, a composite health score, anomaly flags, goal
// feasibility and insights from a snapshot of a user's financial records.
//
// Nothing in this package touches storage or the wall clock; callers pass
// the record collections and the processing date in, which keeps every
// derivation deterministic and testable.
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trend is a month-over-month movement of a summary metric.
type Trend struct {
	Value string `json:"value"` // absolute percent change, e.g. "12.5%"
	IsUp  bool   `json:"isUp"`
}

// SummaryTrends holds the four MoM movements reported with a summary.
type SummaryTrends struct {
	NetWorth Trend `json:"netWorth"`
	Income   Trend `json:"income"`
	Expenses Trend `json:"expenses"`
	Surplus  Trend `json:"surplus"`
}

// FinancialSummary is the headline derivation over a record snapshot.
// Ratios are percentages rounded to one decimal; zero denominators yield 0.
type FinancialSummary struct {
	TotalAssets           decimal.Decimal `json:"totalAssets"`
	TotalLiabilities      decimal.Decimal `json:"totalLiabilities"`
	NetWorth              decimal.Decimal `json:"netWorth"`
	MonthlyIncome         decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses       decimal.Decimal `json:"monthlyExpenses"`
	MonthlySurplus        decimal.Decimal `json:"monthlySurplus"`
	SavingsRate           float64         `json:"savingsRate"`
	ExpenseRatio          float64         `json:"expenseRatio"`
	InvestmentRatio       float64         `json:"investmentRatio"`
	EmergencyFundCoverage float64         `json:"emergencyFundCoverage"` // months of expenses
	DebtToIncomeRatio     float64         `json:"debtToIncomeRatio"`
	Trends                SummaryTrends   `json:"trends"`
}

// ExpenseBreakdown is one expense category's share of total spend.
type ExpenseBreakdown struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Color      string          `json:"color"`
}

// AssetAllocation is one asset type's share of total holdings.
type AssetAllocation struct {
	Type       string          `json:"type"`
	Value      decimal.Decimal `json:"value"`
	Percentage float64         `json:"percentage"`
	Color      string          `json:"color"`
}

// IncomeVsExpense is one month of the 6-month flow series.
type IncomeVsExpense struct {
	Month   string          `json:"month"` // short month name, e.g. "Mar"
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// NetWorthTrend is one month of the reconstructed 6-month net-worth series.
// The asset/liability split of historical points is a display estimate, not
// ledger history.
type NetWorthTrend struct {
	Month       string          `json:"month"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetWorth    decimal.Decimal `json:"netWorth"`
}

// RiskLevel is the five-tier classification of a health score.
type RiskLevel string

const (
	RiskExcellent RiskLevel = "excellent"
	RiskGood      RiskLevel = "good"
	RiskFair      RiskLevel = "fair"
	RiskPoor      RiskLevel = "poor"
	RiskCritical  RiskLevel = "critical"
)

// ScoreComponent is one weighted sub-score of the health score.
type ScoreComponent struct {
	Score    int     `json:"score"`  // 0..100
	Weight   int     `json:"weight"` // percent share of the total
	Label    string  `json:"label"`
	RawValue float64 `json:"rawValue"`
	Unit     string  `json:"unit"`
}

// HealthScoreBreakdown lists the five components behind a total score.
type HealthScoreBreakdown struct {
	SavingsRate      ScoreComponent `json:"savingsRate"`
	DebtToIncome     ScoreComponent `json:"debtToIncome"`
	EmergencyFund    ScoreComponent `json:"emergencyFund"`
	ExpenseStability ScoreComponent `json:"expenseStability"`
	GoalProgress     ScoreComponent `json:"goalProgress"`
}

// FinancialHealthScore is the weighted composite of the five sub-scores.
type FinancialHealthScore struct {
	TotalScore  int                  `json:"totalScore"` // 0..100
	RiskLevel   RiskLevel            `json:"riskLevel"`
	RiskColor   string               `json:"riskColor"`
	Breakdown   HealthScoreBreakdown `json:"breakdown"`
	Suggestions []string             `json:"suggestions"`
}

// AnomalySeverity tiers a spending anomaly by magnitude.
type AnomalySeverity string

const (
	SeverityLow    AnomalySeverity = "low"
	SeverityMedium AnomalySeverity = "medium"
	SeverityHigh   AnomalySeverity = "high"
)

// SpendingAnomaly flags a category whose current-month spend deviates from
// its trailing average by at least the detection threshold.
type SpendingAnomaly struct {
	Category      string          `json:"category"`
	CurrentMonth  decimal.Decimal `json:"currentMonth"`
	Average       decimal.Decimal `json:"average"`
	ChangePercent int             `json:"changePercent"`
	IsIncrease    bool            `json:"isIncrease"`
	Severity      AnomalySeverity `json:"severity"`
}

// GoalFeasibility is the required-savings check for one goal.
type GoalFeasibility struct {
	GoalID                 string          `json:"goalId"`
	GoalName               string          `json:"goalName"`
	TargetAmount           decimal.Decimal `json:"targetAmount"`
	CurrentSaved           decimal.Decimal `json:"currentSaved"`
	PercentComplete        float64         `json:"percentComplete"` // clamped to 100
	TimeRemainingMonths    int             `json:"timeRemainingMonths"`
	RequiredMonthlySavings decimal.Decimal `json:"requiredMonthlySavings"`
	IsFeasible             bool            `json:"isFeasible"`
	CurrentSurplus         decimal.Decimal `json:"currentSurplus"`
}

// InsightType tags an insight for presentation.
type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightInfo     InsightType = "info"
	InsightWarning  InsightType = "warning"
	InsightCritical InsightType = "critical"
)

// FinancialInsight is one natural-language observation synthesized from the
// other derivations. ID is stable across recomputations for UI keying.
type FinancialInsight struct {
	ID      string      `json:"id"`
	Type    InsightType `json:"type"`
	Icon    string      `json:"icon"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Metric  string      `json:"metric,omitempty"`
	Change  int         `json:"change,omitempty"`
}

// WealthProjection is one snapshot of the compounding simulation.
type WealthProjection struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	Label           string          `json:"label"`
	ProjectedWealth decimal.Decimal `json:"projectedWealth"`
	TotalInvested   decimal.Decimal `json:"totalInvested"`
	Returns         decimal.Decimal `json:"returns"`
}

// ProjectionMilestone records the first month the simulated wealth crosses
// one rung of the milestone ladder.
type ProjectionMilestone struct {
	Amount        decimal.Decimal `json:"amount"`
	Label         string          `json:"label"`
	EstimatedDate string          `json:"estimatedDate"` // e.g. "Mar 2027"
	MonthsToReach int             `json:"monthsToReach"`
}

// ProjectionResult bundles the simulation output.
type ProjectionResult struct {
	Projections []WealthProjection    `json:"projections"`
	Milestones  []ProjectionMilestone `json:"milestones"`
}

// MonthlySummary is one month of the per-month digest series.
type MonthlySummary struct {
	Month              string          `json:"month"` // full month name
	Year               int             `json:"year"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	Surplus            decimal.Decimal `json:"surplus"`
	SavingsRate        float64         `json:"savingsRate"`
	TopExpenseCategory string          `json:"topExpenseCategory"`
	TopExpenseAmount   decimal.Decimal `json:"topExpenseAmount"`
}

// sameMonth reports whether a and b fall in the same calendar month.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// monthsAgo returns the first day of the month offset months before now.
// time.Date normalizes out-of-range months, so January minus one lands in
// the previous December.
func monthsAgo(now time.Time, offset int) time.Time {
	return time.Date(now.Year(), now.Month()-time.Month(offset), 1, 0, 0, 0, 0, now.Location())
}
