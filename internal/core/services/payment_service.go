package services

import (
	"context"
	"errors"
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

// paymentService is the single write path into the dues ledger, plus the
// read views derived from it.
type paymentService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
	cycleSvc   portssvc.CycleReaderSvc
	houseSvc   portssvc.HouseReaderSvc
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(ledgerRepo portsrepo.LedgerRepositoryFacade, cycleSvc portssvc.CycleReaderSvc, houseSvc portssvc.HouseReaderSvc) portssvc.PaymentSvcFacade {
	return &paymentService{
		ledgerRepo: ledgerRepo,
		cycleSvc:   cycleSvc,
		houseSvc:   houseSvc,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment validates a payment and hands it to the repository, which
// appends it and moves the house status in one transaction. Any rejection
// leaves both untouched.
func (s *paymentService) RecordPayment(ctx context.Context, cycleID string, req dto.RecordPaymentRequest, operatorID string) (*domain.PaymentRecord, *domain.HousePaymentStatus, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}
	if !req.Mode.IsValid() {
		return nil, nil, fmt.Errorf("unknown payment mode %q: %w", req.Mode, apperrors.ErrValidation)
	}

	// The house must be onboarded before any money is taken against it.
	if _, err := s.houseSvc.GetHouseByNumber(ctx, req.HouseNumber); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError("house " + req.HouseNumber + " not found")
		}
		return nil, nil, err
	}

	cycle, err := s.cycleSvc.GetCycleByID(ctx, cycleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError("cycle " + cycleID + " not found")
		}
		return nil, nil, err
	}

	// A blank receipt means "no receipt", stored as NULL so it never trips
	// the per-cycle uniqueness index.
	receipt := req.ReceiptNumber
	if receipt != nil {
		trimmed := strings.TrimSpace(*receipt)
		if trimmed == "" {
			receipt = nil
		} else {
			receipt = &trimmed
		}
	}

	payment := domain.PaymentRecord{
		PaymentID:     uuid.NewString(),
		HouseNumber:   req.HouseNumber,
		CycleID:       cycle.CycleID,
		Amount:        req.Amount,
		Mode:          req.Mode,
		ReceiptNumber: receipt,
		Notes:         strings.TrimSpace(req.Notes),
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     operatorID,
	}

	status, err := s.ledgerRepo.SavePayment(ctx, payment, cycle.AnnualFee)
	if err != nil {
		s.LogError(ctx, err, "Failed to record payment",
			slog.String("house_number", payment.HouseNumber),
			slog.String("cycle_id", payment.CycleID),
			slog.String("amount", payment.Amount.String()),
		)
		return nil, nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("house_number", payment.HouseNumber),
		slog.String("cycle_id", payment.CycleID),
		slog.String("amount", payment.Amount.String()),
		slog.String("status", string(status.Status)),
	)
	return &payment, status, nil
}

// ListPaymentsByHouse retrieves a house's payment history for a cycle,
// most recent first.
func (s *paymentService) ListPaymentsByHouse(ctx context.Context, cycleID, houseNumber string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if _, err := s.houseSvc.GetHouseByNumber(ctx, houseNumber); err != nil {
		return nil, err
	}

	payments, nextToken, err := s.ledgerRepo.ListPaymentsByHouseAndCycle(ctx, cycleID, houseNumber, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments),
		NextToken: nextToken,
	}, nil
}

// ListPaymentsByCycle retrieves a cycle's payments, optionally filtered by mode.
func (s *paymentService) ListPaymentsByCycle(ctx context.Context, cycleID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if _, err := s.cycleSvc.GetCycleByID(ctx, cycleID); err != nil {
		return nil, err
	}

	var mode *domain.PaymentMode
	if params.Mode != "" {
		m := domain.PaymentMode(params.Mode)
		if !m.IsValid() {
			return nil, fmt.Errorf("unknown payment mode %q: %w", params.Mode, apperrors.ErrValidation)
		}
		mode = &m
	}

	payments, nextToken, err := s.ledgerRepo.ListPaymentsByCycle(ctx, cycleID, mode, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments),
		NextToken: nextToken,
	}, nil
}

// GetHouseStatus retrieves the paid/pending/status view for one house in a
// cycle. A pair no payment has touched yet reads as a zeroed Pending status.
func (s *paymentService) GetHouseStatus(ctx context.Context, cycleID, houseNumber string) (*dto.HouseStatusResponse, error) {
	if _, err := s.houseSvc.GetHouseByNumber(ctx, houseNumber); err != nil {
		return nil, err
	}
	cycle, err := s.cycleSvc.GetCycleByID(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	status, err := s.ledgerRepo.FindStatus(ctx, cycleID, houseNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.HouseStatusResponse{
				HouseNumber:   houseNumber,
				CycleID:       cycleID,
				AnnualFee:     cycle.AnnualFee,
				PaidAmount:    decimal.Zero,
				PendingAmount: cycle.AnnualFee,
				Status:        domain.StatusPending,
			}, nil
		}
		return nil, err
	}

	return &dto.HouseStatusResponse{
		HouseNumber:   status.HouseNumber,
		CycleID:       status.CycleID,
		AnnualFee:     cycle.AnnualFee,
		PaidAmount:    status.PaidAmount,
		PendingAmount: status.Remaining(cycle.AnnualFee),
		Status:        status.Status,
	}, nil
}
