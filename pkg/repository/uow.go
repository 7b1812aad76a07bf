package repository

import "context"

// UnitOfWork groups the per-entity repositories behind one transaction
// boundary. Do runs fn inside a store transaction and hands it a
// UnitOfWork whose repositories share the transactional session; if fn
// returns an error the transaction is rolled back.
//
// Accessor methods outside a Do callback operate on the base session
// (auto-commit), which is what the read-heavy composite fetch uses.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	Accounts() AccountRepository
	Transactions() TransactionRepository
	Assets() AssetRepository
	Liabilities() LiabilityRepository
	Goals() GoalRepository
	Users() UserRepository
}
