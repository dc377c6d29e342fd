package dto

import (
	"time"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordExpenseRequest defines the data needed to record an expense.
type RecordExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	SpentAt     time.Time       `json:"spentAt" binding:"required"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	CycleID     string          `json:"cycleID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	SpentAt     time.Time       `json:"spentAt"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain Expense to an ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		CycleID:     e.CycleID,
		Description: e.Description,
		Amount:      e.Amount,
		SpentAt:     e.SpentAt,
		CreatedAt:   e.CreatedAt,
	}
}

// ListExpensesResponse wraps a cycle's expense list.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToListExpensesResponse converts domain expenses to the list DTO
func ToListExpensesResponse(expenses []domain.Expense) ListExpensesResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{Expenses: res}
}
