package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/pkg/dto"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestTransactionRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	create := dto.TransactionCreate{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Name:        "Rent",
		Amount:      decimal.NewFromInt(25_000),
		Type:        "expense",
		Category:    "rent",
		IsRecurring: true,
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(repo.Create(context.Background(), create))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnError(errors.New("create error"))
	mock.ExpectRollback()

	require.Error(repo.Create(context.Background(), create))
	require.NoError(mock.ExpectationsWereMet())
}

func TestTransactionRepository_Get(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	id := uuid.New()
	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "type", "category", "created_at"}).
		AddRow(id, userID, "Rent", "25000", "expense", "rent", time.Now().UTC())
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = \$1 ORDER BY "transactions"\."id" LIMIT \$2`).
		WithArgs(id, 1).WillReturnRows(rows)

	tx, err := repo.Get(context.Background(), id)
	require.NoError(err)
	require.Equal(id, tx.ID)
	assert.Equal(userID, tx.UserID)
	assert.Equal(domain.TransactionExpense, tx.Type)
	assert.True(tx.Amount.Equal(decimal.NewFromInt(25_000)))

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = \$1 ORDER BY "transactions"\."id" LIMIT \$2`).
		WithArgs(sqlmock.AnyArg(), 1).WillReturnError(gorm.ErrRecordNotFound)

	tx, err = repo.Get(context.Background(), uuid.New())
	require.ErrorIs(err, domain.ErrNotFound)
	assert.Nil(tx)
}

func TestTransactionRepository_ListByUser(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "amount", "type", "category"}).
		AddRow(uuid.New(), userID, "Salary", "80000", "income", "salary").
		AddRow(uuid.New(), userID, "Rent", "25000", "expense", "rent")
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(userID).WillReturnRows(rows)

	transactions, err := repo.ListByUser(context.Background(), userID)
	require.NoError(err)
	require.Len(transactions, 2)
	require.Equal("Salary", transactions[0].Name)
}

func TestTransactionRepository_Update(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	id := uuid.New()
	name := "Groceries"
	amount := decimal.NewFromInt(3_200)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "transactions" SET (.+) WHERE id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), id, dto.TransactionUpdate{Name: &name, Amount: &amount})
	require.NoError(err)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "transactions" SET (.+) WHERE id = \$\d`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err = repo.Update(context.Background(), uuid.New(), dto.TransactionUpdate{Name: &name})
	require.ErrorIs(err, domain.ErrNotFound)

	// No fields set means no statement is issued at all.
	require.NoError(repo.Update(context.Background(), id, dto.TransactionUpdate{}))
	require.NoError(mock.ExpectationsWereMet())
}

func TestTransactionRepository_Delete(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "transactions" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(repo.Delete(context.Background(), uuid.New()))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "transactions" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.ErrorIs(repo.Delete(context.Background(), uuid.New()), domain.ErrNotFound)
}

func TestGoalRepository_ListByUser_OrdersByPriority(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewGoalRepository(db)

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "user_id", "goal_name", "target_amount", "current_saved", "priority"}).
		AddRow(uuid.New(), userID, "House", "5000000", "1200000", 2).
		AddRow(uuid.New(), userID, "Vacation", "100000", "40000", 1)
	mock.ExpectQuery(`SELECT \* FROM "financial_goals" WHERE user_id = \$1 ORDER BY priority DESC, created_at ASC`).
		WithArgs(userID).WillReturnRows(rows)

	goals, err := repo.ListByUser(context.Background(), userID)
	require.NoError(err)
	require.Len(goals, 2)
	require.Equal("House", goals[0].GoalName)
	require.True(goals[0].TargetAmount.Equal(decimal.NewFromInt(5_000_000)))
}

func TestUserRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	create := dto.UserCreate{
		ID:       uuid.New(),
		Username: "testuser",
		Email:    "test@example.com",
		Password: "$2a$10$hash",
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(repo.Create(context.Background(), create))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	require.Error(repo.Create(context.Background(), create))
}

func TestUserRepository_GetByIdentity(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password"}).
		AddRow(id, "testuser", "test@example.com", "$2a$10$hash")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1 OR email = \$2 ORDER BY "users"\."id" LIMIT \$3`).
		WithArgs("testuser", "testuser", 1).WillReturnRows(rows)

	user, err := repo.GetByIdentity(context.Background(), "testuser")
	require.NoError(err)
	require.Equal(id, user.ID)
	assert.Equal("test@example.com", user.Email)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnError(gorm.ErrRecordNotFound)

	user, err = repo.GetByIdentity(context.Background(), "ghost")
	require.ErrorIs(err, domain.ErrNotFound)
	assert.Nil(user)
}
