// Package repository implements the store contract over postgres via gorm.
package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the persisted money account.
type Account struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Name           string    `gorm:"type:varchar(128);not null"`
	Type           string    `gorm:"type:varchar(32);not null;default:'other'"`
	OpeningBalance decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	Balance        decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	BankName       string          `gorm:"type:varchar(128)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Account) TableName() string { return "accounts" }

// Transaction is the persisted ledger entry. Amount is a non-negative
// magnitude; Type carries the direction.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Type        string          `gorm:"type:varchar(16);not null"`
	Category    string          `gorm:"type:varchar(64);not null;default:'other'"`
	AccountID   *uuid.UUID      `gorm:"type:uuid;index"`
	Date        *time.Time
	IsRecurring bool   `gorm:"not null;default:false"`
	Notes       string `gorm:"type:text"`
	CreatedAt   time.Time
}

func (Transaction) TableName() string { return "transactions" }

// Asset is the persisted asset holding.
type Asset struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	AssetType       string          `gorm:"type:varchar(32);not null;default:'other'"`
	AssetName       string          `gorm:"type:varchar(128);not null"`
	Quantity        decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	CurrentValue    decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	PurchaseValue   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	PurchaseDate    *time.Time
	IsRecurring     bool            `gorm:"not null;default:false"`
	RecurringAmount decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Asset) TableName() string { return "assets" }

// Liability is the persisted debt record.
type Liability struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;index;not null"`
	Type              string          `gorm:"type:varchar(32);not null;default:'other'"`
	Name              string          `gorm:"type:varchar(128);not null"`
	OutstandingAmount decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	OriginalAmount    decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	InterestRate      float64         `gorm:"type:numeric(6,3);not null;default:0"`
	EMIAmount         decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	DueDate           time.Time
	StartDate         time.Time
	EndDate           *time.Time
	IsRecurring       bool   `gorm:"not null;default:false"`
	Notes             string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Liability) TableName() string { return "liabilities" }

// FinancialGoal is the persisted savings goal.
type FinancialGoal struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;index;not null"`
	GoalName        string          `gorm:"type:varchar(128);not null"`
	TargetAmount    decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	TargetDate      time.Time
	CurrentSaved    decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	GoalCategory    string          `gorm:"type:varchar(32);not null;default:'other'"`
	IsRecurring     bool            `gorm:"not null;default:false"`
	RecurringAmount decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	Priority        int             `gorm:"not null;default:0"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (FinancialGoal) TableName() string { return "financial_goals" }

// User is the persisted identity record.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }

// Models lists every persisted type for AutoMigrate at boot.
func Models() []any {
	return []any{&User{}, &Account{}, &Transaction{}, &Asset{}, &Liability{}, &FinancialGoal{}}
}
