package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. Each maps to one of the named
// failure conditions the ledger surfaces to callers; none of them implies
// partial state. Every failing operation leaves the ledger untouched
// (TransferFailed after a full rollback included).
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")

	ErrEventNotFound   = errors.New("event not found")
	ErrIndexOutOfRange = errors.New("milestone index out of range")

	ErrNotCreator = errors.New("caller is not the event creator")

	ErrNotActive      = errors.New("event is not active")
	ErrAlreadyClosed  = errors.New("event already closed")
	ErrGoalReached    = errors.New("funding goal already reached")
	ErrNotCompleted   = errors.New("event is not completed")
	ErrGoalNotReached = errors.New("funding goal not reached")

	ErrNoContribution         = errors.New("no contribution to withdraw")
	ErrNoMilestones           = errors.New("event has no milestones")
	ErrMilestoneLimitExceeded = errors.New("milestone limit exceeded")

	ErrTransferFailed = errors.New("outbound transfer failed")

	// ErrOperationInProgress is returned when a guarded operation is
	// re-entered while a transfer-performing operation is still executing.
	ErrOperationInProgress = errors.New("operation already in progress")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
