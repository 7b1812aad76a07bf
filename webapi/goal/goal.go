// Package goal exposes CRUD endpoints for savings goals.
package goal

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/config"
	"github.com/finpulse/finpulse/pkg/dto"
	"github.com/finpulse/finpulse/pkg/middleware"
	authsvc "github.com/finpulse/finpulse/pkg/service/auth"
	"github.com/finpulse/finpulse/pkg/service/ledger"
	"github.com/finpulse/finpulse/webapi/common"
)

// CreateInput is the payload for setting a savings goal. Goals with
// isRecurring and a positive recurringAmount accrue a monthly contribution.
type CreateInput struct {
	GoalName        string          `json:"goalName" validate:"required,max=128"`
	TargetAmount    decimal.Decimal `json:"targetAmount" validate:"required"`
	TargetDate      time.Time       `json:"targetDate" validate:"required"`
	CurrentSaved    decimal.Decimal `json:"currentSaved"`
	GoalCategory    string          `json:"goalCategory" validate:"omitempty,oneof=emergency_fund investment purchase retirement education travel freedom other"`
	IsRecurring     bool            `json:"isRecurring"`
	RecurringAmount decimal.Decimal `json:"recurringAmount"`
	Priority        int             `json:"priority" validate:"gte=0,lte=10"`
	Notes           string          `json:"notes"`
}

// UpdateInput is the partial-update payload.
type UpdateInput struct {
	GoalName        *string          `json:"goalName" validate:"omitempty,max=128"`
	TargetAmount    *decimal.Decimal `json:"targetAmount"`
	TargetDate      *time.Time       `json:"targetDate"`
	CurrentSaved    *decimal.Decimal `json:"currentSaved"`
	GoalCategory    *string          `json:"goalCategory" validate:"omitempty,oneof=emergency_fund investment purchase retirement education travel freedom other"`
	IsRecurring     *bool            `json:"isRecurring"`
	RecurringAmount *decimal.Decimal `json:"recurringAmount"`
	Priority        *int             `json:"priority" validate:"omitempty,gte=0,lte=10"`
	Notes           *string          `json:"notes"`
}

// Routes mounts the goal endpoints behind JWT auth.
func Routes(app *fiber.App, ledgerSvc *ledger.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Jwt)
	app.Get("/goals", protected, List(ledgerSvc, authSvc))
	app.Post("/goals", protected, Create(ledgerSvc, authSvc))
	app.Put("/goals/:id", protected, Update(ledgerSvc, authSvc))
	app.Delete("/goals/:id", protected, Delete(ledgerSvc, authSvc))
}

// List returns the user's goals.
func List(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		goals, err := ledgerSvc.ListGoals(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list goals", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goals", goals)
	}
}

// Create sets a new savings goal.
func Create(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err
		}
		id, err := ledgerSvc.CreateGoal(c.Context(), userID, dto.GoalCreate{
			GoalName:        input.GoalName,
			TargetAmount:    input.TargetAmount,
			TargetDate:      input.TargetDate,
			CurrentSaved:    input.CurrentSaved,
			GoalCategory:    input.GoalCategory,
			IsRecurring:     input.IsRecurring,
			RecurringAmount: input.RecurringAmount,
			Priority:        input.Priority,
			Notes:           input.Notes,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Goal created", fiber.Map{"id": id})
	}
}

// Update applies a partial update to a goal.
func Update(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateInput](c)
		if input == nil {
			return err
		}
		err = ledgerSvc.UpdateGoal(c.Context(), userID, id, dto.GoalUpdate{
			GoalName:        input.GoalName,
			TargetAmount:    input.TargetAmount,
			TargetDate:      input.TargetDate,
			CurrentSaved:    input.CurrentSaved,
			GoalCategory:    input.GoalCategory,
			IsRecurring:     input.IsRecurring,
			RecurringAmount: input.RecurringAmount,
			Priority:        input.Priority,
			Notes:           input.Notes,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal updated", nil)
	}
}

// Delete removes a goal.
func Delete(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid goal id", err, fiber.StatusBadRequest)
		}
		if err := ledgerSvc.DeleteGoal(c.Context(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Goal deleted", nil)
	}
}
