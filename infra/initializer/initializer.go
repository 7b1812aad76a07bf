// Package initializer boots the application dependencies: logger, database
// connection, schema migration, and the unit of work.
package initializer

import (
	"fmt"

	"github.com/finpulse/finpulse/infra"
	infrarepo "github.com/finpulse/finpulse/infra/repository"
	"github.com/finpulse/finpulse/pkg/app"
	"github.com/finpulse/finpulse/pkg/config"
)

// InitializeDependencies builds everything the app needs from cfg.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	if err := db.AutoMigrate(infrarepo.Models()...); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	deps.Uow = infrarepo.NewUoW(db)
	return deps, nil
}
