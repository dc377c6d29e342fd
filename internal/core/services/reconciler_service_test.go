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

type ReconcilerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockCycleRepo  *MockCycleRepository
	mockHouseRepo  *MockHouseRepository
	service        portssvc.ReconcilerSvc

	cycle *domain.AssociationCycle
	house *domain.House
}

func (suite *ReconcilerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockCycleRepo = new(MockCycleRepository)
	suite.mockHouseRepo = new(MockHouseRepository)

	cycleSvc := services.NewCycleService(suite.mockCycleRepo, 10)
	houseSvc := services.NewHouseService(suite.mockHouseRepo)
	suite.service = services.NewReconcilerService(suite.mockLedgerRepo, cycleSvc, houseSvc)

	suite.cycle = testCycle("cycle-1", 2025, decimal.NewFromInt(1500))
	suite.house = &domain.House{HouseNumber: "B-7", OwnerName: "Meera", Division: domain.DivisionB}
}

func (suite *ReconcilerServiceTestSuite) TestReconcile_RepairsDrift() {
	ctx := context.Background()

	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-1").Return(suite.cycle, nil).Once()
	suite.mockHouseRepo.On("FindHouseByNumber", ctx, "B-7").Return(suite.house, nil).Once()

	repaired := &domain.HousePaymentStatus{
		HouseNumber: "B-7",
		CycleID:     "cycle-1",
		PaidAmount:  decimal.NewFromInt(1500),
		Status:      domain.StatusCompleted,
	}
	suite.mockLedgerRepo.On("RecomputeStatus", ctx, "cycle-1", "B-7", suite.cycle.AnnualFee, "auditor").
		Return(repaired, true, nil).Once()

	status, err := suite.service.Reconcile(ctx, "cycle-1", "B-7", "auditor")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, status.Status)
	suite.True(status.PaidAmount.Equal(decimal.NewFromInt(1500)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReconcilerServiceTestSuite) TestReconcile_SecondCallReportsNoDrift() {
	ctx := context.Background()

	clean := &domain.HousePaymentStatus{
		HouseNumber: "B-7",
		CycleID:     "cycle-1",
		PaidAmount:  decimal.NewFromInt(1500),
		Status:      domain.StatusCompleted,
	}

	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-1").Return(suite.cycle, nil).Twice()
	suite.mockHouseRepo.On("FindHouseByNumber", ctx, "B-7").Return(suite.house, nil).Twice()
	suite.mockLedgerRepo.On("RecomputeStatus", ctx, "cycle-1", "B-7", suite.cycle.AnnualFee, "auditor").
		Return(clean, true, nil).Once()
	suite.mockLedgerRepo.On("RecomputeStatus", ctx, "cycle-1", "B-7", suite.cycle.AnnualFee, "auditor").
		Return(clean, false, nil).Once()

	first, err := suite.service.Reconcile(ctx, "cycle-1", "B-7", "auditor")
	suite.Require().NoError(err)

	second, err := suite.service.Reconcile(ctx, "cycle-1", "B-7", "auditor")
	suite.Require().NoError(err)

	suite.True(first.PaidAmount.Equal(second.PaidAmount))
	suite.Equal(first.Status, second.Status)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *ReconcilerServiceTestSuite) TestReconcile_HouseNotFound() {
	ctx := context.Background()

	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-1").Return(suite.cycle, nil).Once()
	suite.mockHouseRepo.On("FindHouseByNumber", ctx, "Z-1").Return(nil, apperrors.ErrNotFound).Once()

	status, err := suite.service.Reconcile(ctx, "cycle-1", "Z-1", "auditor")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(status)
}

func (suite *ReconcilerServiceTestSuite) TestSweepCycle_CountsRepairedRows() {
	ctx := context.Background()

	suite.mockCycleRepo.On("FindCycleByID", ctx, "cycle-1").Return(suite.cycle, nil).Once()

	houses := []domain.StatusWithHouse{
		{House: domain.House{HouseNumber: "A-1", Division: domain.DivisionA}},
		{House: domain.House{HouseNumber: "B-2", Division: domain.DivisionB}},
		{House: domain.House{HouseNumber: "C-3", Division: domain.DivisionC}},
	}
	suite.mockLedgerRepo.On("ListStatusesByCycle", ctx, "cycle-1", (*domain.PaymentStatus)(nil)).
		Return(houses, nil).Once()

	clean := &domain.HousePaymentStatus{CycleID: "cycle-1", Status: domain.StatusPending, PaidAmount: decimal.Zero}
	suite.mockLedgerRepo.On("RecomputeStatus", ctx, "cycle-1", "A-1", suite.cycle.AnnualFee, "drift-sweeper").
		Return(clean, false, nil).Once()
	suite.mockLedgerRepo.On("RecomputeStatus", ctx, "cycle-1", "B-2", suite.cycle.AnnualFee, "drift-sweeper").
		Return(clean, true, nil).Once()
	suite.mockLedgerRepo.On("RecomputeStatus", ctx, "cycle-1", "C-3", suite.cycle.AnnualFee, "drift-sweeper").
		Return(clean, false, nil).Once()

	repaired, err := suite.service.SweepCycle(ctx, "cycle-1", "drift-sweeper")

	suite.Require().NoError(err)
	suite.Equal(1, repaired)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestReconcilerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerServiceTestSuite))
}
