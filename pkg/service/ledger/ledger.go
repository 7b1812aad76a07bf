// Package ledger provides user-scoped CRUD over the stored financial
// records. Every mutation verifies the record belongs to the requesting
// user before writing.
package ledger

import (
	"log/slog"

	"github.com/finpulse/finpulse/pkg/repository"
)

// Service manages accounts, transactions, assets, liabilities, and goals.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a ledger service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}
