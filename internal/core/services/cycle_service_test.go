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

type CycleServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCycleRepository
	service  portssvc.CycleSvcFacade
}

func (suite *CycleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCycleRepository)
	suite.service = services.NewCycleService(suite.mockRepo, 10)
}

func (suite *CycleServiceTestSuite) TestCurrentCycle_BeforeRollover() {
	ctx := context.Background()
	// September 2026 still belongs to the 2025 collection year.
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	expected := testCycle("cycle-2025", 2025, decimal.NewFromInt(1500))

	suite.mockRepo.On("FindCycleByYear", ctx, 2025).Return(expected, nil).Once()

	cycle, err := suite.service.CurrentCycle(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(2025, cycle.Year)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CycleServiceTestSuite) TestCurrentCycle_AtRollover() {
	ctx := context.Background()
	// October 1st opens the new collection year.
	now := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	expected := testCycle("cycle-2026", 2026, decimal.NewFromInt(1500))

	suite.mockRepo.On("FindCycleByYear", ctx, 2026).Return(expected, nil).Once()

	cycle, err := suite.service.CurrentCycle(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(2026, cycle.Year)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CycleServiceTestSuite) TestCurrentCycle_JanuaryStaysOnPreviousYear() {
	ctx := context.Background()
	now := time.Date(2027, time.January, 10, 8, 0, 0, 0, time.UTC)
	expected := testCycle("cycle-2026", 2026, decimal.NewFromInt(1500))

	suite.mockRepo.On("FindCycleByYear", ctx, 2026).Return(expected, nil).Once()

	cycle, err := suite.service.CurrentCycle(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(2026, cycle.Year)
}

func (suite *CycleServiceTestSuite) TestCurrentCycle_NoneOpened() {
	ctx := context.Background()
	now := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindCycleByYear", ctx, 2026).Return(nil, apperrors.ErrNotFound).Once()

	cycle, err := suite.service.CurrentCycle(ctx, now)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(cycle)
}

func (suite *CycleServiceTestSuite) TestCreateCycle_Success() {
	ctx := context.Background()
	req := dto.CreateCycleRequest{
		Year:      2026,
		AnnualFee: decimal.NewFromInt(1500),
		DueDate:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRepo.On("SaveCycle", ctx, mock.MatchedBy(func(c domain.AssociationCycle) bool {
		return c.Year == 2026 && c.AnnualFee.Equal(req.AnnualFee) && c.CycleID != "" && c.CreatedBy == "admin"
	})).Return(nil).Once()

	cycle, err := suite.service.CreateCycle(ctx, req, "admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(cycle)
	suite.Equal(2026, cycle.Year)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CycleServiceTestSuite) TestCreateCycle_NonPositiveFee() {
	ctx := context.Background()
	req := dto.CreateCycleRequest{
		Year:      2026,
		AnnualFee: decimal.Zero,
		DueDate:   time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	cycle, err := suite.service.CreateCycle(ctx, req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(cycle)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCycle", mock.Anything, mock.Anything)
}

func (suite *CycleServiceTestSuite) TestCreateCycle_DuplicateYear() {
	ctx := context.Background()
	req := dto.CreateCycleRequest{
		Year:      2025,
		AnnualFee: decimal.NewFromInt(1500),
		DueDate:   time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRepo.On("SaveCycle", ctx, mock.AnythingOfType("domain.AssociationCycle")).
		Return(apperrors.NewAppError(409, "cycle for year 2025 already exists", apperrors.ErrDuplicate)).Once()

	cycle, err := suite.service.CreateCycle(ctx, req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(cycle)
}

func (suite *CycleServiceTestSuite) TestUpdateCycle_FeeChangeWithPaymentsKeepsStatuses() {
	ctx := context.Background()
	existing := testCycle("cycle-1", 2025, decimal.NewFromInt(1500))
	newFee := decimal.NewFromInt(2000)
	req := dto.UpdateCycleRequest{AnnualFee: &newFee}

	suite.mockRepo.On("FindCycleByID", ctx, "cycle-1").Return(existing, nil).Once()
	suite.mockRepo.On("CycleHasPayments", ctx, "cycle-1").Return(true, nil).Once()
	suite.mockRepo.On("UpdateCycle", ctx, mock.MatchedBy(func(c domain.AssociationCycle) bool {
		return c.AnnualFee.Equal(newFee) && c.LastUpdatedBy == "admin"
	})).Return(nil).Once()

	cycle, err := suite.service.UpdateCycle(ctx, "cycle-1", req, "admin")

	suite.Require().NoError(err)
	suite.True(cycle.AnnualFee.Equal(newFee))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CycleServiceTestSuite) TestUpdateCycle_NotFound() {
	ctx := context.Background()
	newFee := decimal.NewFromInt(2000)
	req := dto.UpdateCycleRequest{AnnualFee: &newFee}

	suite.mockRepo.On("FindCycleByID", ctx, "cycle-gone").Return(nil, apperrors.ErrNotFound).Once()

	cycle, err := suite.service.UpdateCycle(ctx, "cycle-gone", req, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(cycle)
}

func TestCycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CycleServiceTestSuite))
}
