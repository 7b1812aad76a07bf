// Package webapi assembles the HTTP surface. Route packages are organized
// by entity plus the finance package for the derived analytics:
//   - auth: signup and login
//   - account, transaction, asset, liability, goal: user-scoped CRUD
//   - finance: aggregated overview and wealth projection
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/finpulse/finpulse/pkg/app"
	accountweb "github.com/finpulse/finpulse/webapi/account"
	assetweb "github.com/finpulse/finpulse/webapi/asset"
	authweb "github.com/finpulse/finpulse/webapi/auth"
	"github.com/finpulse/finpulse/webapi/common"
	financeweb "github.com/finpulse/finpulse/webapi/finance"
	goalweb "github.com/finpulse/finpulse/webapi/goal"
	liabilityweb "github.com/finpulse/finpulse/webapi/liability"
	transactionweb "github.com/finpulse/finpulse/webapi/transaction"
)

// SetupApp builds the Fiber app with middleware and all routes mounted.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	// Rate limiting keys on X-Forwarded-For behind a proxy, falling back
	// to X-Real-IP, then the direct peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("FinPulse API is running")
	})

	authweb.Routes(fiberApp, a.UserService, a.AuthService)
	accountweb.Routes(fiberApp, a.LedgerService, a.AuthService, a.Config)
	transactionweb.Routes(fiberApp, a.LedgerService, a.AuthService, a.Config)
	assetweb.Routes(fiberApp, a.LedgerService, a.AuthService, a.Config)
	liabilityweb.Routes(fiberApp, a.LedgerService, a.AuthService, a.Config)
	goalweb.Routes(fiberApp, a.LedgerService, a.AuthService, a.Config)
	financeweb.Routes(fiberApp, a.FinanceService, a.AuthService, a.Config)

	return fiberApp
}
