package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sidharthsanthos/PKRA/internal/apperrors"
	"github.com/sidharthsanthos/PKRA/internal/core/domain"
	portsrepo "github.com/sidharthsanthos/PKRA/internal/core/ports/repositories"
	"github.com/sidharthsanthos/PKRA/internal/models"
	"github.com/sidharthsanthos/PKRA/internal/utils/mapping"
	"github.com/sidharthsanthos/PKRA/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the payment ledger and
// the materialized house payment statuses.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// SavePayment appends a ledger entry and moves the (house, cycle) status row
// in the same database transaction. The status row is locked FOR UPDATE so
// concurrent appends for the same pair serialize; the paid amount is re-summed
// from the ledger under that lock rather than incremented, so a drifted row
// can never compound.
func (r *PgxLedgerRepository) SavePayment(ctx context.Context, payment domain.PaymentRecord, annualFee decimal.Decimal) (*domain.HousePaymentStatus, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	modelPayment := mapping.ToModelPayment(payment)
	now := modelPayment.CreatedAt
	userID := modelPayment.CreatedBy

	// 1. Ensure the status row exists so there is something to lock. The
	// zeroed insert loses to any existing row.
	seedQuery := `
		INSERT INTO house_payment_status (house_number, cycle_id, paid_amount, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, 0, 'PENDING', $3, $4, $3, $4)
		ON CONFLICT (house_number, cycle_id) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, seedQuery, modelPayment.HouseNumber, modelPayment.CycleID, now, userID); err != nil {
		return nil, newStorageError("failed to seed status row for house "+modelPayment.HouseNumber, err)
	}

	// 2. Lock the status row. This is the serialization point for all writes
	// touching the same (house, cycle) pair.
	lockQuery := `
		SELECT paid_amount
		FROM house_payment_status
		WHERE house_number = $1 AND cycle_id = $2
		FOR UPDATE;
	`
	var lockedPaid decimal.Decimal
	if err := tx.QueryRow(ctx, lockQuery, modelPayment.HouseNumber, modelPayment.CycleID).Scan(&lockedPaid); err != nil {
		return nil, newStorageError("failed to lock status row for house "+modelPayment.HouseNumber, err)
	}

	// 3. Re-derive the paid amount from the ledger. The ledger, not the locked
	// row, is the source of truth.
	currentPaid, err := sumLedgerInTx(ctx, tx, modelPayment.CycleID, modelPayment.HouseNumber)
	if err != nil {
		return nil, err
	}

	// 4. Enforce the overpayment cap before anything is written.
	newPaid := currentPaid.Add(modelPayment.Amount)
	if newPaid.GreaterThan(annualFee) {
		remaining := annualFee.Sub(currentPaid)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		return nil, apperrors.NewAppError(422, "payment of "+modelPayment.Amount.String()+" exceeds remaining balance "+remaining.String(), apperrors.ErrOverpayment)
	}

	// 5. Append the ledger entry. The partial unique index on
	// (cycle_id, receipt_number) decides receipt races.
	insertQuery := `
		INSERT INTO payments (payment_id, house_number, cycle_id, amount, mode, receipt_number, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		modelPayment.PaymentID,
		modelPayment.HouseNumber,
		modelPayment.CycleID,
		modelPayment.Amount,
		modelPayment.Mode,
		modelPayment.ReceiptNumber,
		modelPayment.Notes,
		modelPayment.CreatedAt,
		modelPayment.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "payments_cycle_receipt_key") {
			return nil, apperrors.NewAppError(409, "receipt number already used in cycle "+modelPayment.CycleID, apperrors.ErrDuplicateReceipt)
		}
		if isUniqueViolation(err, "") {
			return nil, apperrors.NewAppError(409, "payment "+modelPayment.PaymentID+" already exists", apperrors.ErrDuplicate)
		}
		return nil, newStorageError("failed to insert payment "+modelPayment.PaymentID, err)
	}

	// 6. Move the aggregate in lock-step with the append.
	newStatus := domain.DeriveStatus(newPaid, annualFee)
	updateQuery := `
		UPDATE house_payment_status
		SET paid_amount = $3,
		    status = $4,
		    last_updated_at = $5,
		    last_updated_by = $6
		WHERE house_number = $1 AND cycle_id = $2;
	`
	if _, err := tx.Exec(ctx, updateQuery, modelPayment.HouseNumber, modelPayment.CycleID, newPaid, string(newStatus), now, userID); err != nil {
		return nil, newStorageError("failed to update status row for house "+modelPayment.HouseNumber, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	status := domain.HousePaymentStatus{
		HouseNumber: payment.HouseNumber,
		CycleID:     payment.CycleID,
		PaidAmount:  newPaid,
		Status:      newStatus,
	}
	status.LastUpdatedAt = now
	status.LastUpdatedBy = userID
	return &status, nil
}

// RecomputeStatus rebuilds the status row for a (house, cycle) pair from the
// ledger, reporting whether the stored row disagreed with the recomputed
// values. Runs under the same row lock as SavePayment so a repair never races
// an append.
func (r *PgxLedgerRepository) RecomputeStatus(ctx context.Context, cycleID, houseNumber string, annualFee decimal.Decimal, updatedBy string) (*domain.HousePaymentStatus, bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer r.Rollback(ctx, tx)

	now := time.Now().UTC()

	seedQuery := `
		INSERT INTO house_payment_status (house_number, cycle_id, paid_amount, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, 0, 'PENDING', $3, $4, $3, $4)
		ON CONFLICT (house_number, cycle_id) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, seedQuery, houseNumber, cycleID, now, updatedBy); err != nil {
		return nil, false, newStorageError("failed to seed status row for house "+houseNumber, err)
	}

	lockQuery := `
		SELECT paid_amount, status, last_updated_at, last_updated_by
		FROM house_payment_status
		WHERE house_number = $1 AND cycle_id = $2
		FOR UPDATE;
	`
	var storedPaid decimal.Decimal
	var storedStatus string
	var lastUpdatedAt time.Time
	var lastUpdatedBy string
	if err := tx.QueryRow(ctx, lockQuery, houseNumber, cycleID).Scan(&storedPaid, &storedStatus, &lastUpdatedAt, &lastUpdatedBy); err != nil {
		return nil, false, newStorageError("failed to lock status row for house "+houseNumber, err)
	}

	ledgerPaid, err := sumLedgerInTx(ctx, tx, cycleID, houseNumber)
	if err != nil {
		return nil, false, err
	}
	derivedStatus := domain.DeriveStatus(ledgerPaid, annualFee)

	drifted := !storedPaid.Equal(ledgerPaid) || storedStatus != string(derivedStatus)
	if drifted {
		updateQuery := `
			UPDATE house_payment_status
			SET paid_amount = $3,
			    status = $4,
			    last_updated_at = $5,
			    last_updated_by = $6
			WHERE house_number = $1 AND cycle_id = $2;
		`
		if _, err := tx.Exec(ctx, updateQuery, houseNumber, cycleID, ledgerPaid, string(derivedStatus), now, updatedBy); err != nil {
			return nil, false, newStorageError("failed to repair status row for house "+houseNumber, err)
		}
		lastUpdatedAt = now
		lastUpdatedBy = updatedBy
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, false, err
	}

	status := domain.HousePaymentStatus{
		HouseNumber: houseNumber,
		CycleID:     cycleID,
		PaidAmount:  ledgerPaid,
		Status:      derivedStatus,
	}
	status.LastUpdatedAt = lastUpdatedAt
	status.LastUpdatedBy = lastUpdatedBy
	return &status, drifted, nil
}

// sumLedgerInTx sums a house's ledger entries for a cycle inside a transaction.
func sumLedgerInTx(ctx context.Context, tx pgx.Tx, cycleID, houseNumber string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE cycle_id = $1 AND house_number = $2;
	`
	var total decimal.Decimal
	if err := tx.QueryRow(ctx, query, cycleID, houseNumber).Scan(&total); err != nil {
		return decimal.Zero, newStorageError("failed to sum ledger for house "+houseNumber, err)
	}
	return total, nil
}

// FindStatus retrieves the materialized status row for a (house, cycle) pair.
func (r *PgxLedgerRepository) FindStatus(ctx context.Context, cycleID, houseNumber string) (*domain.HousePaymentStatus, error) {
	query := `
		SELECT house_number, cycle_id, paid_amount, status, created_at, created_by, last_updated_at, last_updated_by
		FROM house_payment_status
		WHERE cycle_id = $1 AND house_number = $2;
	`
	var modelStatus models.HousePaymentStatus
	err := r.Pool.QueryRow(ctx, query, cycleID, houseNumber).Scan(
		&modelStatus.HouseNumber,
		&modelStatus.CycleID,
		&modelStatus.PaidAmount,
		&modelStatus.Status,
		&modelStatus.CreatedAt,
		&modelStatus.CreatedBy,
		&modelStatus.LastUpdatedAt,
		&modelStatus.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, newStorageError("failed to find status for house "+houseNumber, err)
	}

	domainStatus := mapping.ToDomainStatus(modelStatus)
	return &domainStatus, nil
}

// ListStatusesByCycle retrieves all status rows for a cycle joined with their
// houses, optionally filtered by status, ordered by house number.
func (r *PgxLedgerRepository) ListStatusesByCycle(ctx context.Context, cycleID string, status *domain.PaymentStatus) ([]domain.StatusWithHouse, error) {
	query := `
		SELECT h.house_number, h.owner_name, h.division, h.phone, h.created_at, h.created_by, h.last_updated_at, h.last_updated_by,
		       s.paid_amount, s.status, s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
		FROM house_payment_status s
		JOIN houses h ON s.house_number = h.house_number
		WHERE s.cycle_id = $1
	`
	args := []interface{}{cycleID}
	if status != nil {
		query += ` AND s.status = $2`
		args = append(args, string(*status))
	}
	query += ` ORDER BY h.house_number;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, newStorageError("failed to query statuses for cycle "+cycleID, err)
	}
	defer rows.Close()

	results := []domain.StatusWithHouse{}
	for rows.Next() {
		var h models.House
		var s models.HousePaymentStatus
		err := rows.Scan(
			&h.HouseNumber,
			&h.OwnerName,
			&h.Division,
			&h.Phone,
			&h.CreatedAt,
			&h.CreatedBy,
			&h.LastUpdatedAt,
			&h.LastUpdatedBy,
			&s.PaidAmount,
			&s.Status,
			&s.CreatedAt,
			&s.CreatedBy,
			&s.LastUpdatedAt,
			&s.LastUpdatedBy,
		)
		if err != nil {
			return nil, newStorageError("failed to scan status row for cycle "+cycleID, err)
		}
		s.HouseNumber = h.HouseNumber
		s.CycleID = cycleID
		results = append(results, domain.StatusWithHouse{
			House:  mapping.ToDomainHouse(h),
			Status: mapping.ToDomainStatus(s),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, newStorageError("error iterating status rows for cycle "+cycleID, err)
	}

	return results, nil
}

// ListPaymentsByHouseAndCycle retrieves a house's ledger entries for a cycle,
// most recent first, using token-based pagination.
func (r *PgxLedgerRepository) ListPaymentsByHouseAndCycle(ctx context.Context, cycleID, houseNumber string, limit int, nextToken *string) ([]domain.PaymentRecord, *string, error) {
	baseQuery := `
		SELECT payment_id, house_number, cycle_id, amount, mode, receipt_number, notes, created_at, created_by
		FROM payments
		WHERE cycle_id = $1 AND house_number = $2
	`
	return r.listPayments(ctx, baseQuery, []interface{}{cycleID, houseNumber}, limit, nextToken)
}

// ListPaymentsByCycle retrieves a cycle's ledger entries, most recent first,
// optionally filtered by mode, using token-based pagination.
func (r *PgxLedgerRepository) ListPaymentsByCycle(ctx context.Context, cycleID string, mode *domain.PaymentMode, limit int, nextToken *string) ([]domain.PaymentRecord, *string, error) {
	baseQuery := `
		SELECT payment_id, house_number, cycle_id, amount, mode, receipt_number, notes, created_at, created_by
		FROM payments
		WHERE cycle_id = $1
	`
	args := []interface{}{cycleID}
	if mode != nil {
		baseQuery += ` AND mode = $2`
		args = append(args, string(*mode))
	}
	return r.listPayments(ctx, baseQuery, args, limit, nextToken)
}

// listPayments runs a ledger listing with stable ordering and cursor
// pagination shared by both listing variants.
func (r *PgxLedgerRepository) listPayments(ctx context.Context, baseQuery string, args []interface{}, limit int, nextToken *string) ([]domain.PaymentRecord, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	// Ordering is crucial and must be stable.
	// created_at DESC with payment_id DESC as a tie-breaker.
	orderByClause := `ORDER BY created_at DESC, payment_id DESC`

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastPaymentID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		// Tuple comparison is concise and efficient in Postgres
		cursorClause := `AND (created_at, payment_id) < ($` + strconv.Itoa(len(args)+1) + `, $` + strconv.Itoa(len(args)+2) + `)`
		args = append(args, lastCreatedAt, lastPaymentID)
		baseQuery += " " + cursorClause
	}

	query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, newStorageError("failed to query payments", err)
	}
	defer rows.Close()

	modelPayments := make([]models.Payment, 0, fetchLimit)
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(
			&p.PaymentID,
			&p.HouseNumber,
			&p.CycleID,
			&p.Amount,
			&p.Mode,
			&p.ReceiptNumber,
			&p.Notes,
			&p.CreatedAt,
			&p.CreatedBy,
		)
		if err != nil {
			return nil, nil, newStorageError("failed to scan payment row", err)
		}
		modelPayments = append(modelPayments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, newStorageError("error iterating payment rows", err)
	}

	// Determine the next token
	var nextTokenVal *string
	results := modelPayments
	if len(modelPayments) > limit {
		// The token points to the last item included in this page; the next
		// query starts after it.
		lastPayment := modelPayments[limit-1]
		token := pagination.EncodeToken(lastPayment.CreatedAt, lastPayment.PaymentID)
		nextTokenVal = &token
		results = modelPayments[:limit]
	}

	return mapping.ToDomainPaymentSlice(results), nextTokenVal, nil
}
