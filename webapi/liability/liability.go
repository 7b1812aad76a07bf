// Package liability exposes CRUD endpoints for debt records.
package liability

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

// CreateInput is the payload for recording a debt. Debts with isRecurring
// and a positive emiAmount post a monthly EMI expense.
type CreateInput struct {
	Type              string          `json:"type" validate:"omitempty,oneof=personal_loan home_loan car_loan education_loan emi credit_card other"`
	Name              string          `json:"name" validate:"required,max=128"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount" validate:"required"`
	OriginalAmount    decimal.Decimal `json:"originalAmount"`
	InterestRate      float64         `json:"interestRate" validate:"gte=0,lte=100"`
	EMIAmount         decimal.Decimal `json:"emiAmount"`
	DueDate           time.Time       `json:"dueDate"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           *time.Time      `json:"endDate"`
	IsRecurring       bool            `json:"isRecurring"`
	Notes             string          `json:"notes"`
}

// UpdateInput is the partial-update payload.
type UpdateInput struct {
	Name              *string          `json:"name" validate:"omitempty,max=128"`
	Type              *string          `json:"type" validate:"omitempty,oneof=personal_loan home_loan car_loan education_loan emi credit_card other"`
	OutstandingAmount *decimal.Decimal `json:"outstandingAmount"`
	InterestRate      *float64         `json:"interestRate" validate:"omitempty,gte=0,lte=100"`
	EMIAmount         *decimal.Decimal `json:"emiAmount"`
	DueDate           *time.Time       `json:"dueDate"`
	IsRecurring       *bool            `json:"isRecurring"`
	Notes             *string          `json:"notes"`
}

// Routes mounts the liability endpoints behind JWT auth.
func Routes(app *fiber.App, ledgerSvc *ledger.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Jwt)
	app.Get("/liabilities", protected, List(ledgerSvc, authSvc))
	app.Post("/liabilities", protected, Create(ledgerSvc, authSvc))
	app.Put("/liabilities/:id", protected, Update(ledgerSvc, authSvc))
	app.Delete("/liabilities/:id", protected, Delete(ledgerSvc, authSvc))
}

// List returns the user's debts.
func List(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		liabilities, err := ledgerSvc.ListLiabilities(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list liabilities", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Liabilities", liabilities)
	}
}

// Create records a new debt.
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
		id, err := ledgerSvc.CreateLiability(c.Context(), userID, dto.LiabilityCreate{
			Type:              input.Type,
			Name:              input.Name,
			OutstandingAmount: input.OutstandingAmount,
			OriginalAmount:    input.OriginalAmount,
			InterestRate:      input.InterestRate,
			EMIAmount:         input.EMIAmount,
			DueDate:           input.DueDate,
			StartDate:         input.StartDate,
			EndDate:           input.EndDate,
			IsRecurring:       input.IsRecurring,
			Notes:             input.Notes,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create liability", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Liability created", fiber.Map{"id": id})
	}
}

// Update applies a partial update to a debt.
func Update(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid liability id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateInput](c)
		if input == nil {
			return err
		}
		err = ledgerSvc.UpdateLiability(c.Context(), userID, id, dto.LiabilityUpdate{
			Name:              input.Name,
			Type:              input.Type,
			OutstandingAmount: input.OutstandingAmount,
			InterestRate:      input.InterestRate,
			EMIAmount:         input.EMIAmount,
			DueDate:           input.DueDate,
			IsRecurring:       input.IsRecurring,
			Notes:             input.Notes,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update liability", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Liability updated", nil)
	}
}

// Delete removes a debt.
func Delete(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid liability id", err, fiber.StatusBadRequest)
		}
		if err := ledgerSvc.DeleteLiability(c.Context(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete liability", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Liability deleted", nil)
	}
}
