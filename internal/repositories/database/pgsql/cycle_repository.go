package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/sidharthsanthos/PKRA/internal/apperrors"
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	"github.com/sidharthsanthos/PKRA/internal/models"
	"github.com/sidharthsanthos/PKRA/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCycleRepository struct {
	BaseRepository
}

// newPgxCycleRepository creates a new repository for association cycle data.
func newPgxCycleRepository(pool *pgxpool.Pool) portsrepo.CycleRepositoryFacade {
	return &PgxCycleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CycleRepositoryFacade = (*PgxCycleRepository)(nil)

// SaveCycle inserts a new cycle. The year unique constraint is the guard
// against two cycles for the same collection year.
func (r *PgxCycleRepository) SaveCycle(ctx context.Context, cycle domain.AssociationCycle) error {
	modelCycle := mapping.ToModelCycle(cycle)

	query := `
		INSERT INTO association_cycles (cycle_id, year, annual_fee, due_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCycle.CycleID,
		modelCycle.Year,
		modelCycle.AnnualFee,
		modelCycle.DueDate,
		modelCycle.CreatedAt,
		modelCycle.CreatedBy,
		modelCycle.LastUpdatedAt,
		modelCycle.LastUpdatedBy,
	)

	if err != nil {
		if isUniqueViolation(err, "") {
			return apperrors.NewAppError(409, "cycle for year "+strconv.Itoa(modelCycle.Year)+" already exists", apperrors.ErrDuplicate)
		}
		return newStorageError("failed to save cycle "+modelCycle.CycleID, err)
	}
	return nil
}

// FindCycleByID retrieves a cycle by its ID.
func (r *PgxCycleRepository) FindCycleByID(ctx context.Context, cycleID string) (*domain.AssociationCycle, error) {
	query := `
		SELECT cycle_id, year, annual_fee, due_date, created_at, created_by, last_updated_at, last_updated_by
		FROM association_cycles
		WHERE cycle_id = $1;
	`
	return r.findCycle(ctx, query, cycleID)
}

// FindCycleByYear retrieves the cycle for a collection year.
func (r *PgxCycleRepository) FindCycleByYear(ctx context.Context, year int) (*domain.AssociationCycle, error) {
	query := `
		SELECT cycle_id, year, annual_fee, due_date, created_at, created_by, last_updated_at, last_updated_by
		FROM association_cycles
		WHERE year = $1;
	`
	return r.findCycle(ctx, query, year)
}

func (r *PgxCycleRepository) findCycle(ctx context.Context, query string, arg any) (*domain.AssociationCycle, error) {
	var modelCycle models.AssociationCycle
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelCycle.CycleID,
		&modelCycle.Year,
		&modelCycle.AnnualFee,
		&modelCycle.DueDate,
		&modelCycle.CreatedAt,
		&modelCycle.CreatedBy,
		&modelCycle.LastUpdatedAt,
		&modelCycle.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, newStorageError("failed to find cycle", err)
	}

	domainCycle := mapping.ToDomainCycle(modelCycle)
	return &domainCycle, nil
}

// ListCycles retrieves all cycles, newest year first.
func (r *PgxCycleRepository) ListCycles(ctx context.Context) ([]domain.AssociationCycle, error) {
	query := `
		SELECT cycle_id, year, annual_fee, due_date, created_at, created_by, last_updated_at, last_updated_by
		FROM association_cycles
		ORDER BY year DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, newStorageError("failed to query cycles", err)
	}
	defer rows.Close()

	modelCycles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AssociationCycle, error) {
		var c models.AssociationCycle
		err := row.Scan(
			&c.CycleID,
			&c.Year,
			&c.AnnualFee,
			&c.DueDate,
			&c.CreatedAt,
			&c.CreatedBy,
			&c.LastUpdatedAt,
			&c.LastUpdatedBy,
		)
		return c, err
	})
	if err != nil {
		return nil, newStorageError("failed to scan cycle rows", err)
	}

	return mapping.ToDomainCycleSlice(modelCycles), nil
}

// CycleHasPayments reports whether any ledger entry exists for the cycle.
func (r *PgxCycleRepository) CycleHasPayments(ctx context.Context, cycleID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE cycle_id = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, cycleID).Scan(&exists); err != nil {
		return false, newStorageError("failed to check payments for cycle "+cycleID, err)
	}
	return exists, nil
}

// UpdateCycle persists a fee/due-date correction. Statuses are never touched
// here; an edited fee changes future derivations only.
func (r *PgxCycleRepository) UpdateCycle(ctx context.Context, cycle domain.AssociationCycle) error {
	modelCycle := mapping.ToModelCycle(cycle)

	query := `
		UPDATE association_cycles
		SET annual_fee = $2,
		    due_date = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE cycle_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelCycle.CycleID,
		modelCycle.AnnualFee,
		modelCycle.DueDate,
		modelCycle.LastUpdatedAt,
		modelCycle.LastUpdatedBy,
	)

	if err != nil {
		return newStorageError("failed to update cycle "+modelCycle.CycleID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cycle " + modelCycle.CycleID + " not found for update")
	}

	return nil
}
