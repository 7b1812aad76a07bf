package finance_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/finpulse/finpulse/pkg/domain"
	"github.com/finpulse/finpulse/webapi/testutils"
)

type FinanceTestSuite struct {
	testutils.APITestSuite
}

func (s *FinanceTestSuite) TestOverview_MissingJWT() {
	resp := s.MakeRequest("GET", "/finance/overview", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *FinanceTestSuite) TestOverview_Success() {
	userID, token := s.AuthenticatedUser()

	date := time.Now()
	s.Uow.AssetData = []*domain.Asset{{
		ID:           uuid.New(),
		UserID:       userID,
		AssetType:    domain.AssetBank,
		AssetName:    "Savings",
		CurrentValue: decimal.NewFromInt(150_000),
	}}
	s.Uow.TransactionData = []*domain.Transaction{
		{
			ID: uuid.New(), UserID: userID, Name: "Salary",
			Amount: decimal.NewFromInt(80_000), Type: domain.TransactionIncome,
			Category: "salary", Date: &date,
		},
		{
			ID: uuid.New(), UserID: userID, Name: "Rent",
			Amount: decimal.NewFromInt(25_000), Type: domain.TransactionExpense,
			Category: "rent", Date: &date,
		},
	}

	resp := s.MakeRequest("GET", "/finance/overview", "", token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	response := s.DecodeResponse(resp)
	data := response.Data.(map[string]any)

	summary := data["summary"].(map[string]any)
	s.Equal("150000", summary["netWorth"])
	s.Equal("80000", summary["monthlyIncome"])

	breakdown := data["expenseBreakdown"].([]any)
	s.Require().Len(breakdown, 1)
	s.Equal("rent", breakdown[0].(map[string]any)["category"])

	s.Len(data["incomeVsExpense"].([]any), 6)
	s.Len(data["netWorthTrend"].([]any), 6)
	s.NotNil(data["healthScore"])
}

func (s *FinanceTestSuite) TestOverview_IsolatedPerUser() {
	userID, _ := s.AuthenticatedUser()
	_, otherToken := s.AuthenticatedUser()

	s.Uow.TransactionData = []*domain.Transaction{{
		ID: uuid.New(), UserID: userID, Name: "Salary",
		Amount: decimal.NewFromInt(80_000), Type: domain.TransactionIncome,
	}}

	resp := s.MakeRequest("GET", "/finance/overview", "", otherToken)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	data := s.DecodeResponse(resp).Data.(map[string]any)
	s.Empty(data["transactions"])
}

func (s *FinanceTestSuite) TestProjection_Success() {
	_, token := s.AuthenticatedUser()

	resp := s.MakeRequest("POST", "/finance/projection",
		`{"monthlySavings":"10000","annualReturnPercent":12,"durationYears":1}`, token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	data := s.DecodeResponse(resp).Data.(map[string]any)

	projections := data["projections"].([]any)
	s.Require().Len(projections, 5)
	last := projections[len(projections)-1].(map[string]any)
	s.Equal("120000", last["totalInvested"])
}

func (s *FinanceTestSuite) TestProjection_InvalidDuration() {
	_, token := s.AuthenticatedUser()
	resp := s.MakeRequest("POST", "/finance/projection",
		`{"monthlySavings":"10000","annualReturnPercent":12,"durationYears":0}`, token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func TestFinanceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceTestSuite))
}
