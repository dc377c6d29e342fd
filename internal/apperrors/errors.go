package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDuplicateReceipt indicates that a receipt number was already used in the same cycle.
var ErrDuplicateReceipt = errors.New("receipt number already used this cycle")

// ErrOverpayment indicates that a payment would push a house's paid amount above the annual fee.
var ErrOverpayment = errors.New("payment exceeds remaining balance for the cycle")

// ErrAggregateDrift indicates that a stored paid amount disagrees with the sum
// recomputed from the ledger. Internal only; never surfaced to callers.
var ErrAggregateDrift = errors.New("aggregate paid amount disagrees with ledger")

// ErrStorageUnavailable indicates a transient storage failure. Callers may retry
// reads freely; retrying a mutation is their call, not the engine's.
var ErrStorageUnavailable = errors.New("storage unavailable")

// AppError wraps a lower-level error with an HTTP-ish status code and context message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
