package services_test

import (
	"context"
	"time"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CycleRepository ---
type MockCycleRepository struct {
	mock.Mock
}

func (m *MockCycleRepository) FindCycleByID(ctx context.Context, cycleID string) (*domain.AssociationCycle, error) {
	args := m.Called(ctx, cycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssociationCycle), args.Error(1)
}

func (m *MockCycleRepository) FindCycleByYear(ctx context.Context, year int) (*domain.AssociationCycle, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssociationCycle), args.Error(1)
}

func (m *MockCycleRepository) ListCycles(ctx context.Context) ([]domain.AssociationCycle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssociationCycle), args.Error(1)
}

func (m *MockCycleRepository) CycleHasPayments(ctx context.Context, cycleID string) (bool, error) {
	args := m.Called(ctx, cycleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCycleRepository) SaveCycle(ctx context.Context, cycle domain.AssociationCycle) error {
	args := m.Called(ctx, cycle)
	return args.Error(0)
}

func (m *MockCycleRepository) UpdateCycle(ctx context.Context, cycle domain.AssociationCycle) error {
	args := m.Called(ctx, cycle)
	return args.Error(0)
}

// --- Mock HouseRepository ---
type MockHouseRepository struct {
	mock.Mock
}

func (m *MockHouseRepository) FindHouseByNumber(ctx context.Context, houseNumber string) (*domain.House, error) {
	args := m.Called(ctx, houseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.House), args.Error(1)
}

func (m *MockHouseRepository) ListHouses(ctx context.Context, filter portsrepo.HouseListFilter) ([]domain.House, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.House), args.Error(1)
}

func (m *MockHouseRepository) CountHouses(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockHouseRepository) SaveHouse(ctx context.Context, house domain.House) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}

func (m *MockHouseRepository) UpdateHouse(ctx context.Context, house domain.House) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListPaymentsByHouseAndCycle(ctx context.Context, cycleID, houseNumber string, limit int, nextToken *string) ([]domain.PaymentRecord, *string, error) {
	args := m.Called(ctx, cycleID, houseNumber, limit, nextToken)
	var payments []domain.PaymentRecord
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.PaymentRecord)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return payments, token, args.Error(2)
}

func (m *MockLedgerRepository) ListPaymentsByCycle(ctx context.Context, cycleID string, mode *domain.PaymentMode, limit int, nextToken *string) ([]domain.PaymentRecord, *string, error) {
	args := m.Called(ctx, cycleID, mode, limit, nextToken)
	var payments []domain.PaymentRecord
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.PaymentRecord)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return payments, token, args.Error(2)
}

func (m *MockLedgerRepository) FindStatus(ctx context.Context, cycleID, houseNumber string) (*domain.HousePaymentStatus, error) {
	args := m.Called(ctx, cycleID, houseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HousePaymentStatus), args.Error(1)
}

func (m *MockLedgerRepository) ListStatusesByCycle(ctx context.Context, cycleID string, status *domain.PaymentStatus) ([]domain.StatusWithHouse, error) {
	args := m.Called(ctx, cycleID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusWithHouse), args.Error(1)
}

func (m *MockLedgerRepository) SavePayment(ctx context.Context, payment domain.PaymentRecord, annualFee decimal.Decimal) (*domain.HousePaymentStatus, error) {
	args := m.Called(ctx, payment, annualFee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HousePaymentStatus), args.Error(1)
}

func (m *MockLedgerRepository) RecomputeStatus(ctx context.Context, cycleID, houseNumber string, annualFee decimal.Decimal, updatedBy string) (*domain.HousePaymentStatus, bool, error) {
	args := m.Called(ctx, cycleID, houseNumber, annualFee, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.HousePaymentStatus), args.Bool(1), args.Error(2)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetModeTotals(ctx context.Context, cycleID string) (map[domain.PaymentMode]decimal.Decimal, error) {
	args := m.Called(ctx, cycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.PaymentMode]decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetDivisionTotals(ctx context.Context, cycleID string) (map[domain.Division]decimal.Decimal, error) {
	args := m.Called(ctx, cycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Division]decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) GetExpenseTotal(ctx context.Context, cycleID string) (decimal.Decimal, error) {
	args := m.Called(ctx, cycleID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByCycle(ctx context.Context, cycleID string) ([]domain.Expense, error) {
	args := m.Called(ctx, cycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// testCycle builds a cycle fixture with the given year and fee.
func testCycle(cycleID string, year int, fee decimal.Decimal) *domain.AssociationCycle {
	now := time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC)
	return &domain.AssociationCycle{
		CycleID:   cycleID,
		Year:      year,
		AnnualFee: fee,
		DueDate:   now.AddDate(0, 2, 0),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "admin",
			LastUpdatedAt: now,
			LastUpdatedBy: "admin",
		},
	}
}
