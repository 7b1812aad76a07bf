// Package account exposes CRUD endpoints for money accounts.
package account

import (
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

// CreateInput is the payload for opening an account.
type CreateInput struct {
	Name           string          `json:"name" validate:"required,max=128"`
	Type           string          `json:"type" validate:"omitempty,oneof=bank cash wallet investment other"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	BankName       string          `json:"bankName" validate:"max=128"`
}

// UpdateInput is the partial-update payload.
type UpdateInput struct {
	Name     *string          `json:"name" validate:"omitempty,max=128"`
	Type     *string          `json:"type" validate:"omitempty,oneof=bank cash wallet investment other"`
	Balance  *decimal.Decimal `json:"balance"`
	BankName *string          `json:"bankName" validate:"omitempty,max=128"`
}

// Routes mounts the account endpoints behind JWT auth.
func Routes(app *fiber.App, ledgerSvc *ledger.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Jwt)
	app.Get("/accounts", protected, List(ledgerSvc, authSvc))
	app.Post("/accounts", protected, Create(ledgerSvc, authSvc))
	app.Put("/accounts/:id", protected, Update(ledgerSvc, authSvc))
	app.Delete("/accounts/:id", protected, Delete(ledgerSvc, authSvc))
}

// List returns the user's accounts.
func List(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		accounts, err := ledgerSvc.ListAccounts(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts", accounts)
	}
}

// Create opens a new account.
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
		id, err := ledgerSvc.CreateAccount(c.Context(), userID, dto.AccountCreate{
			Name:           input.Name,
			Type:           input.Type,
			OpeningBalance: input.OpeningBalance,
			Balance:        input.OpeningBalance,
			BankName:       input.BankName,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", fiber.Map{"id": id})
	}
}

// Update applies a partial update to an account.
func Update(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateInput](c)
		if input == nil {
			return err
		}
		err = ledgerSvc.UpdateAccount(c.Context(), userID, id, dto.AccountUpdate{
			Name:     input.Name,
			Type:     input.Type,
			Balance:  input.Balance,
			BankName: input.BankName,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", nil)
	}
}

// Delete removes an account.
func Delete(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account id", err, fiber.StatusBadRequest)
		}
		if err := ledgerSvc.DeleteAccount(c.Context(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account deleted", nil)
	}
}
