package booking

import (
	"errors"
	"fmt"
)

// ErrSlotUnavailableAfterPayment is raised when a payment was verified as
// PAID but the chosen slot filled up in the meantime. The payment is never
// reverted; the condition is escalated for manual reassignment or refund.
var ErrSlotUnavailableAfterPayment = errors.New("slot became unavailable after payment")

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
