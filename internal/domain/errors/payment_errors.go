package errors

import "fmt"

// ValidationError is returned for missing or malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a new ValidationError
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError is returned when a student, educator, resource or payment
// record does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// InvalidPriceError is returned when a resource resolves to a non-positive
// price; free resources are not sold through the payment flow.
type InvalidPriceError struct {
	Price int64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price for this resource: %d", e.Price)
}

// SignatureMismatchError is returned when a checkout or webhook signature
// fails verification. For checkout signatures the payment is marked failed
// before this error surfaces, so the rejection is durable.
type SignatureMismatchError struct {
	OrderID string
}

func (e *SignatureMismatchError) Error() string {
	return fmt.Sprintf("signature verification failed for order %s", e.OrderID)
}

// GatewayError wraps a failure from the payment gateway API.
type GatewayError struct {
	Code    string
	Message string
	Details string
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("gateway error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("gateway error: %s", e.Message)
}

// SettlementConflictReason distinguishes why a settlement was refused.
type SettlementConflictReason string

const (
	SettlementNotSettleable  SettlementConflictReason = "not_settleable"
	SettlementAlreadySettled SettlementConflictReason = "already_settled"
)

// SettlementConflictError is returned when a payment cannot be settled in
// its current state.
type SettlementConflictError struct {
	PaymentID int64
	Reason    SettlementConflictReason
}

func (e *SettlementConflictError) Error() string {
	switch e.Reason {
	case SettlementAlreadySettled:
		return fmt.Sprintf("payment %d already settled", e.PaymentID)
	default:
		return fmt.Sprintf("payment %d is not settleable", e.PaymentID)
	}
}
