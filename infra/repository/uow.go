package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/finpulse/finpulse/pkg/repository"
)

// UoW implements repository.UnitOfWork on a gorm session. Outside Do the
// accessors run on the base session; inside Do they share the transaction
// gorm opened for the callback.
type UoW struct {
	db *gorm.DB
}

// NewUoW wraps db in a unit of work.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: tx})
	})
}

func (u *UoW) Accounts() repository.AccountRepository {
	return NewAccountRepository(u.db)
}

func (u *UoW) Transactions() repository.TransactionRepository {
	return NewTransactionRepository(u.db)
}

func (u *UoW) Assets() repository.AssetRepository {
	return NewAssetRepository(u.db)
}

func (u *UoW) Liabilities() repository.LiabilityRepository {
	return NewLiabilityRepository(u.db)
}

func (u *UoW) Goals() repository.GoalRepository {
	return NewGoalRepository(u.db)
}

func (u *UoW) Users() repository.UserRepository {
	return NewUserRepository(u.db)
}
