// Package transaction exposes CRUD endpoints for ledger entries.
package transaction

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

// CreateInput is the payload for recording a ledger entry. Entries with
// isRecurring set become monthly templates.
type CreateInput struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=income expense transfer"`
	Category    string          `json:"category" validate:"max=64"`
	AccountID   *uuid.UUID      `json:"accountId"`
	Date        *time.Time      `json:"date"`
	IsRecurring bool            `json:"isRecurring"`
	Notes       string          `json:"notes"`
}

// UpdateInput is the partial-update payload.
type UpdateInput struct {
	Name     *string          `json:"name" validate:"omitempty,max=255"`
	Amount   *decimal.Decimal `json:"amount"`
	Type     *string          `json:"type" validate:"omitempty,oneof=income expense transfer"`
	Category *string          `json:"category" validate:"omitempty,max=64"`
	Date     *time.Time       `json:"date"`
	Notes    *string          `json:"notes"`
}

// Routes mounts the transaction endpoints behind JWT auth.
func Routes(app *fiber.App, ledgerSvc *ledger.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Jwt)
	app.Get("/transactions", protected, List(ledgerSvc, authSvc))
	app.Post("/transactions", protected, Create(ledgerSvc, authSvc))
	app.Put("/transactions/:id", protected, Update(ledgerSvc, authSvc))
	app.Delete("/transactions/:id", protected, Delete(ledgerSvc, authSvc))
}

// List returns the user's ledger entries, newest first.
func List(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		transactions, err := ledgerSvc.ListTransactions(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions", transactions)
	}
}

// Create records a new ledger entry.
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
		id, err := ledgerSvc.CreateTransaction(c.Context(), userID, dto.TransactionCreate{
			Name:        input.Name,
			Amount:      input.Amount,
			Type:        input.Type,
			Category:    input.Category,
			AccountID:   input.AccountID,
			Date:        input.Date,
			IsRecurring: input.IsRecurring,
			Notes:       input.Notes,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", fiber.Map{"id": id})
	}
}

// Update applies a partial update to a ledger entry.
func Update(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateInput](c)
		if input == nil {
			return err
		}
		err = ledgerSvc.UpdateTransaction(c.Context(), userID, id, dto.TransactionUpdate{
			Name:     input.Name,
			Amount:   input.Amount,
			Type:     input.Type,
			Category: input.Category,
			Date:     input.Date,
			Notes:    input.Notes,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", nil)
	}
}

// Delete removes a ledger entry.
func Delete(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction id", err, fiber.StatusBadRequest)
		}
		if err := ledgerSvc.DeleteTransaction(c.Context(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}
