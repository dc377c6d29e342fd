package pgsql

import (
	"context"
	"errors"

	"github.com/sidharthsanthos/PKRA/internal/apperrors"
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	"github.com/sidharthsanthos/PKRA/internal/models"
	"github.com/sidharthsanthos/PKRA/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExpense := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (expense_id, cycle_id, description, amount, spent_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.CycleID,
		modelExpense.Description,
		modelExpense.Amount,
		modelExpense.SpentAt,
		modelExpense.CreatedAt,
		modelExpense.CreatedBy,
		modelExpense.LastUpdatedAt,
		modelExpense.LastUpdatedBy,
	)

	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.NewAppError(409, "expense "+modelExpense.ExpenseID+" already exists", apperrors.ErrDuplicate)
		}
		return newStorageError("failed to save expense "+modelExpense.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT expense_id, cycle_id, description, amount, spent_at, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE expense_id = $1;
	`
	var modelExpense models.Expense
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&modelExpense.ExpenseID,
		&modelExpense.CycleID,
		&modelExpense.Description,
		&modelExpense.Amount,
		&modelExpense.SpentAt,
		&modelExpense.CreatedAt,
		&modelExpense.CreatedBy,
		&modelExpense.LastUpdatedAt,
		&modelExpense.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, newStorageError("failed to find expense "+expenseID, err)
	}

	domainExpense := mapping.ToDomainExpense(modelExpense)
	return &domainExpense, nil
}

// ListExpensesByCycle retrieves a cycle's expenses, newest first.
func (r *PgxExpenseRepository) ListExpensesByCycle(ctx context.Context, cycleID string) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, cycle_id, description, amount, spent_at, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE cycle_id = $1
		ORDER BY spent_at DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, cycleID)
	if err != nil {
		return nil, newStorageError("failed to query expenses for cycle "+cycleID, err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		var e models.Expense
		err := row.Scan(
			&e.ExpenseID,
			&e.CycleID,
			&e.Description,
			&e.Amount,
			&e.SpentAt,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		)
		return e, err
	})
	if err != nil {
		return nil, newStorageError("failed to scan expense rows for cycle "+cycleID, err)
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return newStorageError("failed to delete expense "+expenseID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("expense " + expenseID + " not found for delete")
	}

	return nil
}
