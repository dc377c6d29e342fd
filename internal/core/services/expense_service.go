package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sidharthsanthos/PKRA/internal/apperrors"
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	portssvc "github.com/sidharthsanthos/PKRA/internal/core/ports/services"
	"github.com/sidharthsanthos/PKRA/internal/dto"
	"github.com/shopspring/decimal"
)

// expenseService manages the association's expense book.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	cycleSvc    portssvc.CycleReaderSvc
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, cycleSvc portssvc.CycleReaderSvc) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		cycleSvc:    cycleSvc,
	}
}

// Ensure expenseService implements the portssvc.ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// RecordExpense persists a new expense against a cycle.
func (s *expenseService) RecordExpense(ctx context.Context, cycleID string, req dto.RecordExpenseRequest, operatorID string) (*domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("expense amount must be positive: %w", apperrors.ErrValidation)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("expense description is required: %w", apperrors.ErrValidation)
	}

	cycle, err := s.cycleSvc.GetCycleByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		CycleID:     cycle.CycleID,
		Description: description,
		Amount:      req.Amount,
		SpentAt:     req.SpentAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("cycle_id", cycleID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("cycle_id", expense.CycleID),
		slog.String("amount", expense.Amount.String()),
	)
	return &expense, nil
}

// ListExpenses retrieves a cycle's expenses, newest first.
func (s *expenseService) ListExpenses(ctx context.Context, cycleID string) ([]domain.Expense, error) {
	if _, err := s.cycleSvc.GetCycleByID(ctx, cycleID); err != nil {
		return nil, err
	}

	return s.expenseRepo.ListExpensesByCycle(ctx, cycleID)
}

// DeleteExpense removes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
