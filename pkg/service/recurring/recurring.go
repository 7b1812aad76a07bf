// Package recurring materializes recurring obligations into concrete
// ledger entries: transaction templates, liability EMIs, asset SIPs and
// goal contributions each produce at most one entry per calendar month.
//
// Materialization is best effort. Every failure is logged and skipped so a
// store hiccup never blocks the caller from computing analytics over the
// data that does exist; the next invocation retries whatever was missed.
package recurring

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
	"github.com/finpulse/finpulse/pkg/repository"
)

// Service posts the current month's recurring entries for a user.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a recurring service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Process scans the user's recurring templates and creates the concrete
// entries missing for the calendar month of now. Duplicate suppression is
// heuristic: an entry is considered already posted when a transaction in
// the current month matches the template by name (substring match for
// EMI/SIP/goal entries) and exact amount. Two unrelated entries that
// coincide on name and amount in the same month will therefore suppress a
// legitimate posting; see the repository docs for the accepted trade-off.
//
// Re-running Process within the same month with unchanged inputs creates
// nothing, making it idempotent per month. Only the initial snapshot fetch
// returns an error; individual posting failures are logged and skipped.
func (s *Service) Process(ctx context.Context, userID uuid.UUID, now time.Time) error {
	log := s.logger.With("context", "recurring.Process", "user_id", userID)

	transactions, err := s.uow.Transactions().ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	assets, err := s.uow.Assets().ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	liabilities, err := s.uow.Liabilities().ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	goals, err := s.uow.Goals().ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	s.processTemplates(ctx, log, userID, transactions, now)
	s.processEMIs(ctx, log, userID, transactions, liabilities, now)
	s.processSIPs(ctx, log, userID, transactions, assets, now)
	s.processGoalContributions(ctx, log, userID, transactions, goals, now)
	return nil
}

// processTemplates creates this month's sibling for every recurring
// transaction template whose own date lies strictly before the current
// month. The sibling keeps the template's day-of-month; when that day does
// not exist in the current month the date rolls over into the next month
// (time.Date normalization), matching the engine's naive day injection.
func (s *Service) processTemplates(
	ctx context.Context,
	log *slog.Logger,
	userID uuid.UUID,
	transactions []*domain.Transaction,
	now time.Time,
) {
	for _, template := range transactions {
		if !template.IsRecurring {
			continue
		}
		templateDate := template.EffectiveDate()
		if !beforeMonth(templateDate, now) {
			continue
		}
		if hasExactMatch(transactions, template.Name, template.Amount, now) {
			continue
		}

		date := time.Date(now.Year(), now.Month(), templateDate.Day(), 0, 0, 0, 0, now.Location())
		create := dto.TransactionCreate{
			ID:       uuid.New(),
			UserID:   userID,
			Name:     template.Name,
			Amount:   template.Amount,
			Type:     string(template.Type),
			Category: template.Category,
			Date:     &date,
		}
		if err := s.uow.Transactions().Create(ctx, create); err != nil {
			log.Error("failed to materialize transaction template",
				"template_id", template.ID, "error", err)
			continue
		}
		log.Info("materialized transaction template",
			"template_id", template.ID, "name", template.Name)
	}
}

// processEMIs posts "Loan EMI: <name>" expenses for recurring liabilities,
// dated on the due date's day-of-month. The outstanding amount is left
// untouched; principal paydown is not inferred from EMI postings.
func (s *Service) processEMIs(
	ctx context.Context,
	log *slog.Logger,
	userID uuid.UUID,
	transactions []*domain.Transaction,
	liabilities []*domain.Liability,
	now time.Time,
) {
	for _, liability := range liabilities {
		if !liability.IsRecurring {
			continue
		}
		if hasSubstringMatch(transactions, liability.Name, liability.EMIAmount, now) {
			continue
		}

		date := time.Date(now.Year(), now.Month(), liability.DueDate.Day(), 0, 0, 0, 0, now.Location())
		create := dto.TransactionCreate{
			ID:       uuid.New(),
			UserID:   userID,
			Name:     "Loan EMI: " + liability.Name,
			Amount:   liability.EMIAmount,
			Type:     string(domain.TransactionExpense),
			Category: "emi",
			Date:     &date,
		}
		if err := s.uow.Transactions().Create(ctx, create); err != nil {
			log.Error("failed to post EMI", "liability_id", liability.ID, "error", err)
			continue
		}
		log.Info("posted EMI", "liability_id", liability.ID, "name", liability.Name)
	}
}

// processSIPs posts "SIP Invest: <name>" expenses on the first of the
// month and grows the asset's current value by the contribution. The entry
// and the value update share one transaction so a partial posting cannot
// leave the two out of step.
func (s *Service) processSIPs(
	ctx context.Context,
	log *slog.Logger,
	userID uuid.UUID,
	transactions []*domain.Transaction,
	assets []*domain.Asset,
	now time.Time,
) {
	for _, asset := range assets {
		if !asset.IsRecurring || !asset.RecurringAmount.IsPositive() {
			continue
		}
		if hasSubstringMatch(transactions, asset.AssetName, asset.RecurringAmount, now) {
			continue
		}

		date := firstOfMonth(now)
		create := dto.TransactionCreate{
			ID:       uuid.New(),
			UserID:   userID,
			Name:     "SIP Invest: " + asset.AssetName,
			Amount:   asset.RecurringAmount,
			Type:     string(domain.TransactionExpense),
			Category: "investment",
			Date:     &date,
		}
		newValue := asset.CurrentValue.Add(asset.RecurringAmount)
		err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			if err := uow.Transactions().Create(ctx, create); err != nil {
				return err
			}
			return uow.Assets().Update(ctx, asset.ID, dto.AssetUpdate{CurrentValue: &newValue})
		})
		if err != nil {
			log.Error("failed to post SIP", "asset_id", asset.ID, "error", err)
			continue
		}
		log.Info("posted SIP", "asset_id", asset.ID, "name", asset.AssetName)
	}
}

// processGoalContributions mirrors processSIPs for savings goals, growing
// current_saved instead of the asset value.
func (s *Service) processGoalContributions(
	ctx context.Context,
	log *slog.Logger,
	userID uuid.UUID,
	transactions []*domain.Transaction,
	goals []*domain.FinancialGoal,
	now time.Time,
) {
	for _, goal := range goals {
		if !goal.IsRecurring || !goal.RecurringAmount.IsPositive() {
			continue
		}
		if hasSubstringMatch(transactions, goal.GoalName, goal.RecurringAmount, now) {
			continue
		}

		date := firstOfMonth(now)
		create := dto.TransactionCreate{
			ID:       uuid.New(),
			UserID:   userID,
			Name:     "Goal Save: " + goal.GoalName,
			Amount:   goal.RecurringAmount,
			Type:     string(domain.TransactionExpense),
			Category: "investment",
			Date:     &date,
		}
		newSaved := goal.CurrentSaved.Add(goal.RecurringAmount)
		err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			if err := uow.Transactions().Create(ctx, create); err != nil {
				return err
			}
			return uow.Goals().Update(ctx, goal.ID, dto.GoalUpdate{CurrentSaved: &newSaved})
		})
		if err != nil {
			log.Error("failed to post goal contribution", "goal_id", goal.ID, "error", err)
			continue
		}
		log.Info("posted goal contribution", "goal_id", goal.ID, "name", goal.GoalName)
	}
}

// hasExactMatch reports whether a non-recurring transaction with exactly
// this name and amount already exists in the month of ref.
func hasExactMatch(transactions []*domain.Transaction, name string, amount decimal.Decimal, ref time.Time) bool {
	for _, tx := range transactions {
		if tx.IsRecurring {
			continue
		}
		if tx.Name == name && tx.Amount.Equal(amount) && sameMonth(tx.EffectiveDate(), ref) {
			return true
		}
	}
	return false
}

// hasSubstringMatch reports whether any transaction in the month of ref
// contains name and carries exactly this amount.
func hasSubstringMatch(transactions []*domain.Transaction, name string, amount decimal.Decimal, ref time.Time) bool {
	for _, tx := range transactions {
		if strings.Contains(tx.Name, name) && tx.Amount.Equal(amount) && sameMonth(tx.EffectiveDate(), ref) {
			return true
		}
	}
	return false
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// beforeMonth reports whether t's calendar month is strictly before ref's.
func beforeMonth(t, ref time.Time) bool {
	if t.Year() != ref.Year() {
		return t.Year() < ref.Year()
	}
	return t.Month() < ref.Month()
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
