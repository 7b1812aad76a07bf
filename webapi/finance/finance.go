// Package finance exposes the aggregated overview and the wealth
// projection simulator.
package finance

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"

	"github.com/finpulse/finpulse/pkg/config"
	"github.com/finpulse/finpulse/pkg/middleware"
	authsvc "github.com/finpulse/finpulse/pkg/service/auth"
	financesvc "github.com/finpulse/finpulse/pkg/service/finance"
	"github.com/finpulse/finpulse/webapi/common"
)

// ProjectionInput parametrizes the wealth simulator.
type ProjectionInput struct {
	MonthlySavings      decimal.Decimal `json:"monthlySavings" validate:"required"`
	AnnualReturnPercent float64         `json:"annualReturnPercent" validate:"gte=0,lte=100"`
	DurationYears       int             `json:"durationYears" validate:"required,gte=1,lte=60"`
	InitialAmount       decimal.Decimal `json:"initialAmount"`
}

// Routes mounts the finance endpoints behind JWT auth.
func Routes(app *fiber.App, financeSvc *financesvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Get("/finance/overview", middleware.JwtProtected(cfg.Jwt), Overview(financeSvc, authSvc))
	app.Post("/finance/projection", middleware.JwtProtected(cfg.Jwt), Projection(financeSvc, authSvc))
}

// Overview materializes due recurring entries and returns the raw records
// together with every derived analysis in one payload.
func Overview(financeSvc *financesvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		overview, err := financeSvc.GetComprehensiveFinanceData(c.Context(), userID, time.Now())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load finance overview", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Finance overview", overview)
	}
}

// Projection runs the compound-growth simulator on the posted parameters.
func Projection(financeSvc *financesvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := authSvc.GetCurrentUserID(c.Locals("user").(*jwt.Token)); err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[ProjectionInput](c)
		if input == nil {
			return err
		}
		result := financeSvc.SimulateWealthProjection(
			input.MonthlySavings,
			input.AnnualReturnPercent,
			input.DurationYears,
			input.InitialAmount,
			time.Now(),
		)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Wealth projection", result)
	}
}
