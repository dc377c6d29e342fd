package services

import (
	"context"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/sidharthsanthos/PKRA/internal/dto"
)

// ExpenseSvcFacade manages the association's expense book.
type ExpenseSvcFacade interface {
	// RecordExpense persists a new expense against a cycle.
	RecordExpense(ctx context.Context, cycleID string, req dto.RecordExpenseRequest, operatorID string) (*domain.Expense, error)

	// ListExpenses retrieves a cycle's expenses, newest first.
	ListExpenses(ctx context.Context, cycleID string) ([]domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}
