// Package finance is the composite read path real consumers use: it
// materializes the month's recurring entries, refetches the record
// snapshot and runs every engine derivation over it.
package finance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/engine"
	"github.com/finpulse/finpulse/pkg/repository"
	"github.com/finpulse/finpulse/pkg/service/recurring"
)

// Overview is the full analytics bundle for one user at one processing
// date.
type Overview struct {
	Accounts     []*domain.Account       `json:"accounts"`
	Transactions []*domain.Transaction   `json:"transactions"`
	Assets       []*domain.Asset         `json:"assets"`
	Liabilities  []*domain.Liability     `json:"liabilities"`
	Goals        []*domain.FinancialGoal `json:"goals"`

	Summary           engine.FinancialSummary     `json:"summary"`
	ExpenseBreakdown  []engine.ExpenseBreakdown   `json:"expenseBreakdown"`
	AssetAllocation   []engine.AssetAllocation    `json:"assetAllocation"`
	IncomeVsExpense   []engine.IncomeVsExpense    `json:"incomeVsExpense"`
	NetWorthTrend     []engine.NetWorthTrend      `json:"netWorthTrend"`
	HealthScore       engine.FinancialHealthScore `json:"healthScore"`
	Anomalies         []engine.SpendingAnomaly    `json:"anomalies"`
	GoalFeasibilities []engine.GoalFeasibility    `json:"goalFeasibilities"`
	Insights          []engine.FinancialInsight   `json:"insights"`
	MonthlySummaries  []engine.MonthlySummary     `json:"monthlySummaries"`
}

// Service runs the materialize-then-derive pipeline.
type Service struct {
	uow       repository.UnitOfWork
	recurring *recurring.Service
	logger    *slog.Logger
}

// New creates a finance service.
func New(uow repository.UnitOfWork, recurringSvc *recurring.Service, logger *slog.Logger) *Service {
	return &Service{uow: uow, recurring: recurringSvc, logger: logger}
}

// GetComprehensiveFinanceData returns the full bundle for the calendar
// month of now.
//
// Materialization failures are logged and swallowed: analytics over the
// existing data are still worth returning, and the next call retries. A
// failure fetching the snapshot itself is a hard error; a composite built
// on partial inputs cannot be trusted.
func (s *Service) GetComprehensiveFinanceData(ctx context.Context, userID uuid.UUID, now time.Time) (*Overview, error) {
	log := s.logger.With("context", "finance.GetComprehensiveFinanceData", "user_id", userID)

	if err := s.recurring.Process(ctx, userID, now); err != nil {
		log.Error("recurring materialization failed, continuing with existing data", "error", err)
	}

	accounts, err := s.uow.Accounts().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	transactions, err := s.uow.Transactions().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	assets, err := s.uow.Assets().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	liabilities, err := s.uow.Liabilities().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing liabilities: %w", err)
	}
	goals, err := s.uow.Goals().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}

	summary := engine.CalculateFinancialSummary(assets, liabilities, transactions, now)
	healthScore := engine.CalculateHealthScore(summary, goals)
	anomalies := engine.DetectSpendingAnomalies(transactions, engine.DefaultAnomalyThreshold, now)
	feasibilities := engine.AnalyzeGoalFeasibility(goals, summary.MonthlySurplus, now)

	return &Overview{
		Accounts:          accounts,
		Transactions:      transactions,
		Assets:            assets,
		Liabilities:       liabilities,
		Goals:             goals,
		Summary:           summary,
		ExpenseBreakdown:  engine.CalculateExpenseBreakdown(transactions),
		AssetAllocation:   engine.CalculateAssetAllocation(assets),
		IncomeVsExpense:   engine.CalculateIncomeVsExpense(transactions, now),
		NetWorthTrend:     engine.CalculateNetWorthTrend(assets, liabilities, transactions, now),
		HealthScore:       healthScore,
		Anomalies:         anomalies,
		GoalFeasibilities: feasibilities,
		Insights:          engine.GenerateInsights(summary, anomalies, feasibilities, healthScore),
		MonthlySummaries:  engine.GenerateMonthlySummaries(transactions, 6, now),
	}, nil
}

// SimulateWealthProjection is a passthrough to the engine's simulator; it
// reads nothing from the store.
func (s *Service) SimulateWealthProjection(
	monthlySavings decimal.Decimal,
	annualReturnPercent float64,
	durationYears int,
	initialAmount decimal.Decimal,
	now time.Time,
) engine.ProjectionResult {
	return engine.SimulateWealthProjection(monthlySavings, annualReturnPercent, durationYears, initialAmount, now)
}
