// Package memuow provides an in-memory repository.UnitOfWork for service
// tests. Do snapshots the stored slices and restores them when the
// callback fails, mimicking a rolled-back transaction. Error injection
// fields simulate store failures per operation.
package memuow

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
	"github.com/finpulse/finpulse/pkg/repository"
)

// UoW is an in-memory store. The zero value is ready to use.
type UoW struct {
	mu sync.Mutex

	AccountData     []*domain.Account
	TransactionData []*domain.Transaction
	AssetData       []*domain.Asset
	LiabilityData   []*domain.Liability
	GoalData        []*domain.FinancialGoal
	UserData        []*domain.User

	// Error injection. When set, the corresponding operation fails.
	FailTransactionList   error
	FailTransactionCreate error
	FailAssetUpdate       error
	FailGoalUpdate        error
}

// New creates an empty in-memory unit of work.
func New() *UoW { return &UoW{} }

func (u *UoW) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.mu.Lock()
	accounts := append([]*domain.Account(nil), u.AccountData...)
	transactions := append([]*domain.Transaction(nil), u.TransactionData...)
	assets := append([]*domain.Asset(nil), u.AssetData...)
	liabilities := append([]*domain.Liability(nil), u.LiabilityData...)
	goals := append([]*domain.FinancialGoal(nil), u.GoalData...)
	u.mu.Unlock()

	if err := fn(u); err != nil {
		u.mu.Lock()
		u.AccountData = accounts
		u.TransactionData = transactions
		u.AssetData = assets
		u.LiabilityData = liabilities
		u.GoalData = goals
		u.mu.Unlock()
		return err
	}
	return nil
}

func (u *UoW) Accounts() repository.AccountRepository         { return accountRepo{u} }
func (u *UoW) Transactions() repository.TransactionRepository { return transactionRepo{u} }
func (u *UoW) Assets() repository.AssetRepository             { return assetRepo{u} }
func (u *UoW) Liabilities() repository.LiabilityRepository    { return liabilityRepo{u} }
func (u *UoW) Goals() repository.GoalRepository               { return goalRepo{u} }
func (u *UoW) Users() repository.UserRepository               { return userRepo{u} }

type transactionRepo struct{ u *UoW }

func (r transactionRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	if r.u.FailTransactionList != nil {
		return nil, r.u.FailTransactionList
	}
	out := []*domain.Transaction{}
	for _, tx := range r.u.TransactionData {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r transactionRepo) Get(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for _, tx := range r.u.TransactionData {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r transactionRepo) Create(_ context.Context, create dto.TransactionCreate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	if r.u.FailTransactionCreate != nil {
		return r.u.FailTransactionCreate
	}
	r.u.TransactionData = append(r.u.TransactionData, &domain.Transaction{
		ID:          create.ID,
		UserID:      create.UserID,
		Name:        create.Name,
		Amount:      create.Amount,
		Type:        domain.TransactionType(create.Type),
		Category:    create.Category,
		AccountID:   create.AccountID,
		Date:        create.Date,
		IsRecurring: create.IsRecurring,
		Notes:       create.Notes,
		CreatedAt:   time.Now(),
	})
	return nil
}

func (r transactionRepo) Update(_ context.Context, id uuid.UUID, update dto.TransactionUpdate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for i, tx := range r.u.TransactionData {
		if tx.ID != id {
			continue
		}
		c := *tx
		if update.Name != nil {
			c.Name = *update.Name
		}
		if update.Amount != nil {
			c.Amount = *update.Amount
		}
		if update.Type != nil {
			c.Type = domain.TransactionType(*update.Type)
		}
		if update.Category != nil {
			c.Category = *update.Category
		}
		if update.Date != nil {
			c.Date = update.Date
		}
		if update.Notes != nil {
			c.Notes = *update.Notes
		}
		r.u.TransactionData[i] = &c
		return nil
	}
	return domain.ErrNotFound
}

func (r transactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for i, tx := range r.u.TransactionData {
		if tx.ID == id {
			r.u.TransactionData = append(r.u.TransactionData[:i], r.u.TransactionData[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type assetRepo struct{ u *UoW }

func (r assetRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Asset, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	out := []*domain.Asset{}
	for _, a := range r.u.AssetData {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r assetRepo) Get(_ context.Context, id uuid.UUID) (*domain.Asset, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for _, a := range r.u.AssetData {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r assetRepo) Create(_ context.Context, create dto.AssetCreate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	r.u.AssetData = append(r.u.AssetData, &domain.Asset{
		ID:              create.ID,
		UserID:          create.UserID,
		AssetType:       domain.AssetType(create.AssetType),
		AssetName:       create.AssetName,
		Quantity:        create.Quantity,
		CurrentValue:    create.CurrentValue,
		PurchaseValue:   create.PurchaseValue,
		PurchaseDate:    create.PurchaseDate,
		IsRecurring:     create.IsRecurring,
		RecurringAmount: create.RecurringAmount,
		Notes:           create.Notes,
	})
	return nil
}

func (r assetRepo) Update(_ context.Context, id uuid.UUID, update dto.AssetUpdate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	if r.u.FailAssetUpdate != nil {
		return r.u.FailAssetUpdate
	}
	for i, a := range r.u.AssetData {
		if a.ID != id {
			continue
		}
		c := *a
		if update.AssetName != nil {
			c.AssetName = *update.AssetName
		}
		if update.AssetType != nil {
			c.AssetType = domain.AssetType(*update.AssetType)
		}
		if update.Quantity != nil {
			c.Quantity = *update.Quantity
		}
		if update.CurrentValue != nil {
			c.CurrentValue = *update.CurrentValue
		}
		if update.PurchaseValue != nil {
			c.PurchaseValue = *update.PurchaseValue
		}
		if update.IsRecurring != nil {
			c.IsRecurring = *update.IsRecurring
		}
		if update.RecurringAmount != nil {
			c.RecurringAmount = *update.RecurringAmount
		}
		if update.Notes != nil {
			c.Notes = *update.Notes
		}
		r.u.AssetData[i] = &c
		return nil
	}
	return domain.ErrNotFound
}

func (r assetRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for i, a := range r.u.AssetData {
		if a.ID == id {
			r.u.AssetData = append(r.u.AssetData[:i], r.u.AssetData[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type liabilityRepo struct{ u *UoW }

func (r liabilityRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Liability, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	out := []*domain.Liability{}
	for _, l := range r.u.LiabilityData {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r liabilityRepo) Get(_ context.Context, id uuid.UUID) (*domain.Liability, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for _, l := range r.u.LiabilityData {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r liabilityRepo) Create(_ context.Context, create dto.LiabilityCreate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	r.u.LiabilityData = append(r.u.LiabilityData, &domain.Liability{
		ID:                create.ID,
		UserID:            create.UserID,
		Type:              domain.LiabilityType(create.Type),
		Name:              create.Name,
		OutstandingAmount: create.OutstandingAmount,
		OriginalAmount:    create.OriginalAmount,
		InterestRate:      create.InterestRate,
		EMIAmount:         create.EMIAmount,
		DueDate:           create.DueDate,
		StartDate:         create.StartDate,
		EndDate:           create.EndDate,
		IsRecurring:       create.IsRecurring,
		Notes:             create.Notes,
	})
	return nil
}

func (r liabilityRepo) Update(_ context.Context, id uuid.UUID, update dto.LiabilityUpdate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for i, l := range r.u.LiabilityData {
		if l.ID != id {
			continue
		}
		c := *l
		if update.Name != nil {
			c.Name = *update.Name
		}
		if update.Type != nil {
			c.Type = domain.LiabilityType(*update.Type)
		}
		if update.OutstandingAmount != nil {
			c.OutstandingAmount = *update.OutstandingAmount
		}
		if update.InterestRate != nil {
			c.InterestRate = *update.InterestRate
		}
		if update.EMIAmount != nil {
			c.EMIAmount = *update.EMIAmount
		}
		if update.DueDate != nil {
			c.DueDate = *update.DueDate
		}
		if update.IsRecurring != nil {
			c.IsRecurring = *update.IsRecurring
		}
		if update.Notes != nil {
			c.Notes = *update.Notes
		}
		r.u.LiabilityData[i] = &c
		return nil
	}
	return domain.ErrNotFound
}

func (r liabilityRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for i, l := range r.u.LiabilityData {
		if l.ID == id {
			r.u.LiabilityData = append(r.u.LiabilityData[:i], r.u.LiabilityData[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type goalRepo struct{ u *UoW }

func (r goalRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.FinancialGoal, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	out := []*domain.FinancialGoal{}
	for _, g := range r.u.GoalData {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r goalRepo) Get(_ context.Context, id uuid.UUID) (*domain.FinancialGoal, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for _, g := range r.u.GoalData {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r goalRepo) Create(_ context.Context, create dto.GoalCreate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	r.u.GoalData = append(r.u.GoalData, &domain.FinancialGoal{
		ID:              create.ID,
		UserID:          create.UserID,
		GoalName:        create.GoalName,
		TargetAmount:    create.TargetAmount,
		TargetDate:      create.TargetDate,
		CurrentSaved:    create.CurrentSaved,
		GoalCategory:    domain.GoalCategory(create.GoalCategory),
		IsRecurring:     create.IsRecurring,
		RecurringAmount: create.RecurringAmount,
		Priority:        create.Priority,
		Notes:           create.Notes,
	})
	return nil
}

func (r goalRepo) Update(_ context.Context, id uuid.UUID, update dto.GoalUpdate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	if r.u.FailGoalUpdate != nil {
		return r.u.FailGoalUpdate
	}
	for i, g := range r.u.GoalData {
		if g.ID != id {
			continue
		}
		c := *g
		if update.GoalName != nil {
			c.GoalName = *update.GoalName
		}
		if update.TargetAmount != nil {
			c.TargetAmount = *update.TargetAmount
		}
		if update.TargetDate != nil {
			c.TargetDate = *update.TargetDate
		}
		if update.CurrentSaved != nil {
			c.CurrentSaved = *update.CurrentSaved
		}
		if update.GoalCategory != nil {
			c.GoalCategory = domain.GoalCategory(*update.GoalCategory)
		}
		if update.IsRecurring != nil {
			c.IsRecurring = *update.IsRecurring
		}
		if update.RecurringAmount != nil {
			c.RecurringAmount = *update.RecurringAmount
		}
		if update.Priority != nil {
			c.Priority = *update.Priority
		}
		if update.Notes != nil {
			c.Notes = *update.Notes
		}
		r.u.GoalData[i] = &c
		return nil
	}
	return domain.ErrNotFound
}

func (r goalRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for i, g := range r.u.GoalData {
		if g.ID == id {
			r.u.GoalData = append(r.u.GoalData[:i], r.u.GoalData[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type accountRepo struct{ u *UoW }

func (r accountRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.Account, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	out := []*domain.Account{}
	for _, a := range r.u.AccountData {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r accountRepo) Get(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for _, a := range r.u.AccountData {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r accountRepo) Create(_ context.Context, create dto.AccountCreate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	r.u.AccountData = append(r.u.AccountData, &domain.Account{
		ID:             create.ID,
		UserID:         create.UserID,
		Name:           create.Name,
		Type:           domain.AccountType(create.Type),
		OpeningBalance: create.OpeningBalance,
		Balance:        create.Balance,
		BankName:       create.BankName,
	})
	return nil
}

func (r accountRepo) Update(_ context.Context, id uuid.UUID, update dto.AccountUpdate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for i, a := range r.u.AccountData {
		if a.ID != id {
			continue
		}
		c := *a
		if update.Name != nil {
			c.Name = *update.Name
		}
		if update.Type != nil {
			c.Type = domain.AccountType(*update.Type)
		}
		if update.Balance != nil {
			c.Balance = *update.Balance
		}
		if update.BankName != nil {
			c.BankName = *update.BankName
		}
		r.u.AccountData[i] = &c
		return nil
	}
	return domain.ErrNotFound
}

func (r accountRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for i, a := range r.u.AccountData {
		if a.ID == id {
			r.u.AccountData = append(r.u.AccountData[:i], r.u.AccountData[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type userRepo struct{ u *UoW }

func (r userRepo) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for _, usr := range r.u.UserData {
		if usr.ID == id {
			return usr, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r userRepo) GetByIdentity(_ context.Context, identity string) (*domain.User, error) {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	for _, usr := range r.u.UserData {
		if usr.Username == identity || usr.Email == identity {
			return usr, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r userRepo) Create(_ context.Context, create dto.UserCreate) error {
	r.u.mu.Lock()
	defer r.u.mu.Unlock()
	r.u.UserData = append(r.u.UserData, &domain.User{
		ID:       create.ID,
		Username: create.Username,
		Email:    create.Email,
		Password: create.Password,
	})
	return nil
}
