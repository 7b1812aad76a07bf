// Package app wires configuration, the store, and the services into one
// runnable unit shared by the server and the CLI.
package app

import (
	"log/slog"

	"github.com/finpulse/finpulse/pkg/config"
	"github.com/finpulse/finpulse/pkg/repository"
	"github.com/finpulse/finpulse/pkg/service/auth"
	"github.com/finpulse/finpulse/pkg/service/finance"
	"github.com/finpulse/finpulse/pkg/service/ledger"
	"github.com/finpulse/finpulse/pkg/service/recurring"
	"github.com/finpulse/finpulse/pkg/service/user"
)

// Deps carries the infrastructure the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App is the assembled application.
type App struct {
	Deps             *Deps
	Config           *config.App
	AuthService      *auth.Service
	UserService      *user.Service
	LedgerService    *ledger.Service
	RecurringService *recurring.Service
	FinanceService   *finance.Service
}

// New assembles the services on top of deps.
func New(deps *Deps, cfg *config.App) *App {
	recurringSvc := recurring.New(deps.Uow, deps.Logger)
	return &App{
		Deps:             deps,
		Config:           cfg,
		AuthService:      auth.New(deps.Uow, cfg.Jwt, deps.Logger),
		UserService:      user.New(deps.Uow, deps.Logger),
		LedgerService:    ledger.New(deps.Uow, deps.Logger),
		RecurringService: recurringSvc,
		FinanceService:   finance.New(deps.Uow, recurringSvc, deps.Logger),
	}
}
