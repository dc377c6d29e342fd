package pgsql

import (
	"context"

	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new repository for ledger aggregation queries.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

// GetModeTotals sums ledger amounts per payment mode for a cycle. Modes with
// no payments map to zero.
func (r *ReportingRepository) GetModeTotals(ctx context.Context, cycleID string) (map[domain.PaymentMode]decimal.Decimal, error) {
	query := `
		SELECT mode, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE cycle_id = $1
		GROUP BY mode;
	`
	rows, err := r.Pool.Query(ctx, query, cycleID)
	if err != nil {
		return nil, newStorageError("failed to query mode totals for cycle "+cycleID, err)
	}
	defer rows.Close()

	totals := map[domain.PaymentMode]decimal.Decimal{
		domain.ModeCash: decimal.Zero,
		domain.ModeUPI:  decimal.Zero,
	}
	for rows.Next() {
		var mode string
		var total decimal.Decimal
		if err := rows.Scan(&mode, &total); err != nil {
			return nil, newStorageError("failed to scan mode total row for cycle "+cycleID, err)
		}
		totals[domain.PaymentMode(mode)] = total
	}

	if err := rows.Err(); err != nil {
		return nil, newStorageError("error iterating mode total rows for cycle "+cycleID, err)
	}

	return totals, nil
}

// GetDivisionTotals sums ledger amounts per division for a cycle, joining
// houses to their payments. Divisions with no payments map to zero.
func (r *ReportingRepository) GetDivisionTotals(ctx context.Context, cycleID string) (map[domain.Division]decimal.Decimal, error) {
	query := `
		SELECT h.division, COALESCE(SUM(p.amount), 0)
		FROM payments p
		JOIN houses h ON p.house_number = h.house_number
		WHERE p.cycle_id = $1
		GROUP BY h.division;
	`
	rows, err := r.Pool.Query(ctx, query, cycleID)
	if err != nil {
		return nil, newStorageError("failed to query division totals for cycle "+cycleID, err)
	}
	defer rows.Close()

	totals := make(map[domain.Division]decimal.Decimal, len(domain.Divisions))
	for _, division := range domain.Divisions {
		totals[division] = decimal.Zero
	}
	for rows.Next() {
		var division string
		var total decimal.Decimal
		if err := rows.Scan(&division, &total); err != nil {
			return nil, newStorageError("failed to scan division total row for cycle "+cycleID, err)
		}
		totals[domain.Division(division)] = total
	}

	if err := rows.Err(); err != nil {
		return nil, newStorageError("error iterating division total rows for cycle "+cycleID, err)
	}

	return totals, nil
}

// GetExpenseTotal sums the recorded expenses for a cycle.
func (r *ReportingRepository) GetExpenseTotal(ctx context.Context, cycleID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE cycle_id = $1;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, cycleID).Scan(&total); err != nil {
		return decimal.Zero, newStorageError("failed to sum expenses for cycle "+cycleID, err)
	}
	return total, nil
}
