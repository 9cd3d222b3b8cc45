package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/padhaihub/payment-service/internal/domain/model"
)

// ListFilters narrows and pages payment listings.
type ListFilters struct {
	Status    *model.PaymentStatus
	IsSettled *bool
	Page      int
	Limit     int
}

// RevenueSummary aggregates an educator's successful payments.
type RevenueSummary struct {
	TotalRevenue  int64 `json:"total_revenue"`
	PendingAmount int64 `json:"pending_amount"`
	SettledAmount int64 `json:"settled_amount"`
}

// PaymentRepository persists payment intents. The MarkX methods are
// conditional single-statement transitions; the returned bool reports whether
// this call performed the transition (false means another handler got there
// first, which callers treat as a no-op, not an error).
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*model.Payment, error)
	GetByID(ctx context.Context, id int64) (*model.Payment, error)

	MarkPending(ctx context.Context, orderID, paymentID string) (bool, error)
	MarkSuccess(ctx context.Context, orderID, paymentID, signature string) (bool, error)
	MarkFailed(ctx context.Context, orderID, reason string) (bool, error)
	MarkRefunded(ctx context.Context, orderID string) (bool, error)
	MarkSettled(ctx context.Context, id int64) (bool, error)

	// StoreWebhookPayload keeps the raw body of the last gateway
	// notification on the intent for audit, regardless of whether the
	// notification caused a transition.
	StoreWebhookPayload(ctx context.Context, orderID string, payload model.JSONB) error

	ListByStudent(ctx context.Context, studentID uuid.UUID, filters ListFilters) ([]*model.Payment, int64, error)
	ListByEducator(ctx context.Context, educatorID uuid.UUID, filters ListFilters) ([]*model.Payment, int64, error)
	RevenueSummary(ctx context.Context, educatorID uuid.UUID) (*RevenueSummary, error)
}
