package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/finpulse/finpulse/pkg/currency"
)

// GenerateInsights synthesizes the other derivations into a list of
// natural-language observations. Each rule contributes at most one insight;
// anomalies are capped at the top three by magnitude and goals contribute
// one insight each. IDs are stable so consumers can key on them.
func GenerateInsights(
	summary FinancialSummary,
	anomalies []SpendingAnomaly,
	feasibilities []GoalFeasibility,
	healthScore FinancialHealthScore,
) []FinancialInsight {
	insights := []FinancialInsight{}

	if summary.SavingsRate > 20 {
		insights = append(insights, FinancialInsight{
			ID:      "savings-positive",
			Type:    InsightPositive,
			Icon:    "🎯",
			Title:   "Strong Savings Rate",
			Message: fmt.Sprintf("Your savings rate is %s%% — above the recommended 20%%.", fmtNum(summary.SavingsRate)),
			Metric:  fmtNum(summary.SavingsRate) + "%",
		})
	} else if summary.SavingsRate < 10 {
		insights = append(insights, FinancialInsight{
			ID:      "savings-warning",
			Type:    InsightWarning,
			Icon:    "⚠️",
			Title:   "Low Savings Rate",
			Message: fmt.Sprintf("Your savings rate is %s%%. Aim for at least 20%%.", fmtNum(summary.SavingsRate)),
			Metric:  fmtNum(summary.SavingsRate) + "%",
		})
	}

	fundType, fundIcon := InsightWarning, "🚨"
	if summary.EmergencyFundCoverage >= 3 {
		fundType, fundIcon = InsightPositive, "🛡️"
	}
	insights = append(insights, FinancialInsight{
		ID:      "emergency-fund",
		Type:    fundType,
		Icon:    fundIcon,
		Title:   "Emergency Fund Coverage",
		Message: fmt.Sprintf("Emergency fund covers %s months of expenses.", fmtNum(summary.EmergencyFundCoverage)),
		Metric:  fmtNum(summary.EmergencyFundCoverage) + " months",
	})

	top := anomalies
	if len(top) > 3 {
		top = top[:3]
	}
	for _, anomaly := range top {
		direction := "decreased"
		icon := "📉"
		insightType := InsightInfo
		if anomaly.IsIncrease {
			direction = "increased"
			icon = "📈"
			if anomaly.Severity != SeverityLow {
				insightType = InsightWarning
			}
		}
		insights = append(insights, FinancialInsight{
			ID:    "anomaly-" + anomaly.Category,
			Type:  insightType,
			Icon:  icon,
			Title: fmt.Sprintf("%s Spending %s", capitalize(anomaly.Category), capitalize(direction)),
			Message: fmt.Sprintf("%s spending %s %d%% compared to average.",
				capitalize(anomaly.Category), direction, abs(anomaly.ChangePercent)),
			Change: anomaly.ChangePercent,
		})
	}

	for _, goal := range feasibilities {
		switch {
		case goal.PercentComplete >= 100:
			insights = append(insights, FinancialInsight{
				ID:      "goal-complete-" + goal.GoalID,
				Type:    InsightPositive,
				Icon:    "🏆",
				Title:   "Goal Achieved!",
				Message: fmt.Sprintf("Congratulations! You've reached your %q goal.", goal.GoalName),
				Metric:  "100%",
			})
		case !goal.IsFeasible:
			insights = append(insights, FinancialInsight{
				ID:   "goal-warn-" + goal.GoalID,
				Type: InsightCritical,
				Icon: "🔴",
				Title: "Goal At Risk",
				Message: fmt.Sprintf("%q requires %s/month but surplus is %s.",
					goal.GoalName,
					currency.FormatFull(goal.RequiredMonthlySavings),
					currency.FormatFull(goal.CurrentSurplus)),
				Metric: fmtNum(goal.PercentComplete) + "%",
			})
		case goal.PercentComplete > 0:
			insights = append(insights, FinancialInsight{
				ID:      "goal-progress-" + goal.GoalID,
				Type:    InsightInfo,
				Icon:    "🎯",
				Title:   "Goal Progress",
				Message: fmt.Sprintf("You are %s%% closer to %q.", fmtNum(goal.PercentComplete), goal.GoalName),
				Metric:  fmtNum(goal.PercentComplete) + "%",
			})
		}
	}

	if healthScore.TotalScore >= 80 {
		insights = append(insights, FinancialInsight{
			ID:      "health-excellent",
			Type:    InsightPositive,
			Icon:    "💪",
			Title:   "Excellent Financial Health",
			Message: fmt.Sprintf("Your financial health score is %d/100 — outstanding!", healthScore.TotalScore),
			Metric:  strconv.Itoa(healthScore.TotalScore),
		})
	} else if healthScore.TotalScore < 45 {
		focus := "improving your finances"
		if len(healthScore.Suggestions) > 0 {
			focus = healthScore.Suggestions[0]
		}
		insights = append(insights, FinancialInsight{
			ID:      "health-warning",
			Type:    InsightCritical,
			Icon:    "🏥",
			Title:   "Financial Health Needs Attention",
			Message: fmt.Sprintf("Your financial health score is %d/100. Focus on %s", healthScore.TotalScore, focus),
			Metric:  strconv.Itoa(healthScore.TotalScore),
		})
	}

	return insights
}

// fmtNum prints a float the way a UI shows it: no trailing zeros.
func fmtNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// capitalize upper-cases the first rune and replaces underscores with
// spaces, turning category keys like "mutual_funds" into display text.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToUpper(s[:1]) + strings.ReplaceAll(s[1:], "_", " ")
	return s
}
