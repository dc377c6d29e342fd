package services_test

import (
	"context"
	"testing"

	"github.com/sidharthsanthos/PKRA/internal/apperrors"
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockLedgerRepo    *MockLedgerRepository
	mockHouseRepo     *MockHouseRepository
	mockCycleRepo     *MockCycleRepository
	service           portssvc.ReportingSvc

	cycle *domain.AssociationCycle
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockHouseRepo = new(MockHouseRepository)
	suite.mockCycleRepo = new(MockCycleRepository)

	cycleSvc := services.NewCycleService(suite.mockCycleRepo, 10)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockLedgerRepo, suite.mockHouseRepo, cycleSvc)

	suite.cycle = testCycle("cycle-1", 2025, decimal.NewFromInt(1500))
}

func (suite *ReportingServiceTestSuite) TestCycleSummary_Totals() {
	ctx := context.Background()

	// Two houses at a 1500 fee: one paid 1500 in cash, one 500 by UPI.
	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-1").Return(suite.cycle, nil).Once()
	suite.mockHouseRepo.On("CountHouses", ctx).Return(2, nil).Once()
	suite.mockReportingRepo.On("GetModeTotals", ctx, "cycle-1").Return(map[domain.PaymentMode]decimal.Decimal{
		domain.ModeCash: decimal.NewFromInt(1500),
		domain.ModeUPI:  decimal.NewFromInt(500),
	}, nil).Once()
	suite.mockReportingRepo.On("GetDivisionTotals", ctx, "cycle-1").Return(map[domain.Division]decimal.Decimal{
		domain.DivisionA: decimal.NewFromInt(2000),
		domain.DivisionB: decimal.Zero,
		domain.DivisionC: decimal.Zero,
		domain.DivisionD: decimal.Zero,
		domain.DivisionE: decimal.Zero,
	}, nil).Once()
	suite.mockReportingRepo.On("GetExpenseTotal", ctx, "cycle-1").Return(decimal.NewFromInt(300), nil).Once()

	summary, err := suite.service.CycleSummary(ctx, "cycle-1")

	suite.Require().NoError(err)
	suite.Equal(2, summary.HouseCount)
	suite.True(summary.TotalReceived.Equal(decimal.NewFromInt(2000)))
	// Expected 3000, received 2000.
	suite.True(summary.TotalPending.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalSpent.Equal(decimal.NewFromInt(300)))
	suite.True(summary.CashOnHand.Equal(decimal.NewFromInt(1700)))
	suite.True(summary.ByMode[domain.ModeCash].Equal(decimal.NewFromInt(1500)))
	suite.True(summary.ByDivision[domain.DivisionA].Equal(decimal.NewFromInt(2000)))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCycleSummary_PendingNeverNegative() {
	ctx := context.Background()

	// Fee edited down after collection: received exceeds the expected total.
	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-1").Return(suite.cycle, nil).Once()
	suite.mockHouseRepo.On("CountHouses", ctx).Return(1, nil).Once()
	suite.mockReportingRepo.On("GetModeTotals", ctx, "cycle-1").Return(map[domain.PaymentMode]decimal.Decimal{
		domain.ModeCash: decimal.NewFromInt(2000),
		domain.ModeUPI:  decimal.Zero,
	}, nil).Once()
	suite.mockReportingRepo.On("GetDivisionTotals", ctx, "cycle-1").Return(map[domain.Division]decimal.Decimal{}, nil).Once()
	suite.mockReportingRepo.On("GetExpenseTotal", ctx, "cycle-1").Return(decimal.Zero, nil).Once()

	summary, err := suite.service.CycleSummary(ctx, "cycle-1")

	suite.Require().NoError(err)
	suite.True(summary.TotalPending.IsZero())
}

func (suite *ReportingServiceTestSuite) TestCycleSummary_CycleNotFound() {
	ctx := context.Background()

	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-gone").Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.CycleSummary(ctx, "cycle-gone")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(summary)
}

func (suite *ReportingServiceTestSuite) TestListStatuses_FiltersByStatus() {
	ctx := context.Background()
	pending := domain.StatusPending

	rows := []domain.StatusWithHouse{
		{
			House:  domain.House{HouseNumber: "A-1", Division: domain.DivisionA},
			Status: domain.HousePaymentStatus{HouseNumber: "A-1", CycleID: "cycle-1", Status: domain.StatusPending, PaidAmount: decimal.Zero},
		},
	}

	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-1").Return(suite.cycle, nil).Once()
	suite.mockLedgerRepo.On("ListStatusesByCycle", ctx, "cycle-1", &pending).Return(rows, nil).Once()

	result, err := suite.service.ListStatuses(ctx, "cycle-1", &pending)

	suite.Require().NoError(err)
	suite.Len(result, 1)
	suite.Equal("A-1", result[0].House.HouseNumber)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
