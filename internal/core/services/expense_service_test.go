package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sidharthsanthos/PKRA/internal/apperrors"
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/core/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockCycleRepo   *MockCycleRepository
	service         portssvc.ExpenseSvcFacade

	cycle *domain.AssociationCycle
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockCycleRepo = new(MockCycleRepository)

	cycleSvc := services.NewCycleService(suite.mockCycleRepo, 10)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, cycleSvc)

	suite.cycle = testCycle("cycle-1", 2025, decimal.NewFromInt(1500))
}

func (suite *ExpenseServiceTestSuite) TestRecordExpense_Success() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		Description: "  Diwali lamps for the gate  ",
		Amount:      decimal.NewFromInt(750),
		SpentAt:     time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC),
	}

	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-1").Return(suite.cycle, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.CycleID == "cycle-1" &&
			e.Description == "Diwali lamps for the gate" &&
			e.Amount.Equal(decimal.NewFromInt(750)) &&
			e.ExpenseID != "" &&
			e.CreatedBy == "treasurer"
	})).Return(nil).Once()

	expense, err := suite.service.RecordExpense(ctx, "cycle-1", req, "treasurer")

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Equal("Diwali lamps for the gate", expense.Description)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestRecordExpense_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		Description: "gate repair",
		Amount:      decimal.Zero,
		SpentAt:     time.Now().UTC(),
	}

	expense, err := suite.service.RecordExpense(ctx, "cycle-1", req, "treasurer")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(expense)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestRecordExpense_BlankDescription() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		Description: "   ",
		Amount:      decimal.NewFromInt(100),
		SpentAt:     time.Now().UTC(),
	}

	_, err := suite.service.RecordExpense(ctx, "cycle-1", req, "treasurer")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestRecordExpense_CycleNotFound() {
	ctx := context.Background()
	req := dto.RecordExpenseRequest{
		Description: "gate repair",
		Amount:      decimal.NewFromInt(100),
		SpentAt:     time.Now().UTC(),
	}

	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-gone").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordExpense(ctx, "cycle-gone", req, "treasurer")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses() {
	ctx := context.Background()
	expenses := []domain.Expense{
		{ExpenseID: "exp-2", CycleID: "cycle-1", Description: "plumber", Amount: decimal.NewFromInt(300)},
		{ExpenseID: "exp-1", CycleID: "cycle-1", Description: "paint", Amount: decimal.NewFromInt(1200)},
	}

	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-1").Return(suite.cycle, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByCycle", ctx, "cycle-1").Return(expenses, nil).Once()

	result, err := suite.service.ListExpenses(ctx, "cycle-1")

	suite.Require().NoError(err)
	suite.Len(result, 2)
	suite.Equal("exp-2", result[0].ExpenseID)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NotFound() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("DeleteExpense", ctx, "exp-gone").
		Return(apperrors.NewNotFoundError("expense exp-gone not found")).Once()

	err := suite.service.DeleteExpense(ctx, "exp-gone")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
