package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/finpulse/finpulse/pkg/currency"
	"github.com/finpulse/finpulse/pkg/engine"
	"github.com/finpulse/finpulse/pkg/service/finance"
)

func printOverview(o *finance.Overview) {
	bold := color.New(color.Bold)

	bold.Println("Summary")
	fmt.Printf("  Net Worth:        %s\n", currency.Format(o.Summary.NetWorth))
	fmt.Printf("  Total Assets:     %s\n", currency.Format(o.Summary.TotalAssets))
	fmt.Printf("  Liabilities:      %s\n", currency.Format(o.Summary.TotalLiabilities))
	fmt.Printf("  Monthly Income:   %s\n", currency.Format(o.Summary.MonthlyIncome))
	fmt.Printf("  Monthly Expenses: %s\n", currency.Format(o.Summary.MonthlyExpenses))
	fmt.Printf("  Savings Rate:     %.1f%%\n", o.Summary.SavingsRate)

	bold.Println("Health")
	scoreColor := color.New(color.FgGreen)
	switch o.HealthScore.RiskLevel {
	case engine.RiskFair:
		scoreColor = color.New(color.FgYellow)
	case engine.RiskPoor, engine.RiskCritical:
		scoreColor = color.New(color.FgRed)
	}
	scoreColor.Printf("  Score: %d (%s)\n", o.HealthScore.TotalScore, o.HealthScore.RiskLevel)
	for _, s := range o.HealthScore.Suggestions {
		fmt.Printf("  - %s\n", s)
	}

	if len(o.Anomalies) > 0 {
		bold.Println("Anomalies")
		for _, a := range o.Anomalies {
			direction := "down"
			if a.IsIncrease {
				direction = "up"
			}
			color.Yellow("  %s %s %d%% vs %s average (%s)",
				a.Category, direction, a.ChangePercent, currency.Format(a.Average), a.Severity)
		}
	}

	if len(o.Insights) > 0 {
		bold.Println("Insights")
		for _, in := range o.Insights {
			fmt.Printf("  %s %s: %s\n", in.Icon, in.Title, in.Message)
		}
	}
}
