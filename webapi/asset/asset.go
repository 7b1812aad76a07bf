// Package asset exposes CRUD endpoints for asset holdings.
package asset

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

// CreateInput is the payload for adding a holding. Holdings with
// isRecurring and a positive recurringAmount accrue a monthly SIP.
type CreateInput struct {
	AssetType       string          `json:"assetType" validate:"omitempty,oneof=gold crypto stocks mutual_funds property cash bank fixed_deposit ppf other"`
	AssetName       string          `json:"assetName" validate:"required,max=128"`
	Quantity        decimal.Decimal `json:"quantity"`
	CurrentValue    decimal.Decimal `json:"currentValue" validate:"required"`
	PurchaseValue   decimal.Decimal `json:"purchaseValue"`
	PurchaseDate    *time.Time      `json:"purchaseDate"`
	IsRecurring     bool            `json:"isRecurring"`
	RecurringAmount decimal.Decimal `json:"recurringAmount"`
	Notes           string          `json:"notes"`
}

// UpdateInput is the partial-update payload.
type UpdateInput struct {
	AssetName       *string          `json:"assetName" validate:"omitempty,max=128"`
	AssetType       *string          `json:"assetType" validate:"omitempty,oneof=gold crypto stocks mutual_funds property cash bank fixed_deposit ppf other"`
	Quantity        *decimal.Decimal `json:"quantity"`
	CurrentValue    *decimal.Decimal `json:"currentValue"`
	PurchaseValue   *decimal.Decimal `json:"purchaseValue"`
	IsRecurring     *bool            `json:"isRecurring"`
	RecurringAmount *decimal.Decimal `json:"recurringAmount"`
	Notes           *string          `json:"notes"`
}

// Routes mounts the asset endpoints behind JWT auth.
func Routes(app *fiber.App, ledgerSvc *ledger.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Jwt)
	app.Get("/assets", protected, List(ledgerSvc, authSvc))
	app.Post("/assets", protected, Create(ledgerSvc, authSvc))
	app.Put("/assets/:id", protected, Update(ledgerSvc, authSvc))
	app.Delete("/assets/:id", protected, Delete(ledgerSvc, authSvc))
}

// List returns the user's holdings.
func List(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		assets, err := ledgerSvc.ListAssets(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list assets", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Assets", assets)
	}
}

// Create adds a new holding.
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
		id, err := ledgerSvc.CreateAsset(c.Context(), userID, dto.AssetCreate{
			AssetType:       input.AssetType,
			AssetName:       input.AssetName,
			Quantity:        input.Quantity,
			CurrentValue:    input.CurrentValue,
			PurchaseValue:   input.PurchaseValue,
			PurchaseDate:    input.PurchaseDate,
			IsRecurring:     input.IsRecurring,
			RecurringAmount: input.RecurringAmount,
			Notes:           input.Notes,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create asset", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Asset created", fiber.Map{"id": id})
	}
}

// Update applies a partial update to a holding.
func Update(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid asset id", err, fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[UpdateInput](c)
		if input == nil {
			return err
		}
		err = ledgerSvc.UpdateAsset(c.Context(), userID, id, dto.AssetUpdate{
			AssetName:       input.AssetName,
			AssetType:       input.AssetType,
			Quantity:        input.Quantity,
			CurrentValue:    input.CurrentValue,
			PurchaseValue:   input.PurchaseValue,
			IsRecurring:     input.IsRecurring,
			RecurringAmount: input.RecurringAmount,
			Notes:           input.Notes,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update asset", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Asset updated", nil)
	}
}

// Delete removes a holding.
func Delete(ledgerSvc *ledger.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid asset id", err, fiber.StatusBadRequest)
		}
		if err := ledgerSvc.DeleteAsset(c.Context(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete asset", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Asset deleted", nil)
	}
}
