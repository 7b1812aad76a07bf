package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/infra/initializer"
	"github.com/finpulse/finpulse/pkg/app"
	"github.com/finpulse/finpulse/pkg/config"
	"github.com/finpulse/finpulse/pkg/currency"
)

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands:")
		fmt.Println("  overview <user_id>")
		fmt.Println("  materialize <user_id>")
		fmt.Println("  project <monthly_savings> <annual_return_%> <years> [initial_amount]")
		return
	}
	cmd := os.Args[1]

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		return
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		fmt.Println("Failed to initialize dependencies:", err)
		return
	}
	a := app.New(deps, cfg)
	ctx := context.Background()

	switch cmd {
	case "overview":
		if argsLen < 3 {
			fmt.Println("Usage: overview <user_id>")
			return
		}
		userID, err := uuid.Parse(os.Args[2])
		if err != nil {
			fmt.Println("Invalid user id:", err)
			return
		}
		overview, err := a.FinanceService.GetComprehensiveFinanceData(ctx, userID, time.Now())
		if err != nil {
			fmt.Println("Error loading overview:", err)
			return
		}
		printOverview(overview)
	case "materialize":
		if argsLen < 3 {
			fmt.Println("Usage: materialize <user_id>")
			return
		}
		userID, err := uuid.Parse(os.Args[2])
		if err != nil {
			fmt.Println("Invalid user id:", err)
			return
		}
		if err := a.RecurringService.Process(ctx, userID, time.Now()); err != nil {
			fmt.Println("Error materializing recurring entries:", err)
			return
		}
		color.Green("Recurring entries materialized for %s", userID)
	case "project":
		if argsLen < 5 {
			fmt.Println("Usage: project <monthly_savings> <annual_return_%> <years> [initial_amount]")
			return
		}
		savings, err := decimal.NewFromString(os.Args[2])
		if err != nil {
			fmt.Println("Invalid monthly savings:", err)
			return
		}
		annual, err := strconv.ParseFloat(os.Args[3], 64)
		if err != nil {
			fmt.Println("Invalid annual return:", err)
			return
		}
		years, err := strconv.Atoi(os.Args[4])
		if err != nil {
			fmt.Println("Invalid duration:", err)
			return
		}
		initial := decimal.Zero
		if argsLen > 5 {
			initial, err = decimal.NewFromString(os.Args[5])
			if err != nil {
				fmt.Println("Invalid initial amount:", err)
				return
			}
		}
		result := a.FinanceService.SimulateWealthProjection(savings, annual, years, initial, time.Now())
		for _, p := range result.Projections {
			fmt.Printf("%-8s wealth=%s invested=%s returns=%s\n",
				p.Label,
				currency.Format(p.ProjectedWealth),
				currency.Format(p.TotalInvested),
				currency.Format(p.Returns),
			)
		}
		for _, m := range result.Milestones {
			color.Cyan("%s in %d months (%s)", m.Label, m.MonthsToReach, m.EstimatedDate)
		}
	default:
		fmt.Println("Unknown command:", cmd)
	}
}
