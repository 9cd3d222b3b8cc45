package repository

import (
	"context"

	"github.com/google/uuid"
)

// RevenueRepository mutates educator revenue aggregates. Every method is a
// single atomic SQL update so concurrent confirmations cannot interleave a
// read-then-write.
type RevenueRepository interface {
	// AddPending credits a fresh successful payment: total income and
	// pending amount both grow by amount.
	AddPending(ctx context.Context, educatorID uuid.UUID, amount int64) error

	// ReleasePending removes refunded revenue from the pending amount,
	// clamped at zero.
	ReleasePending(ctx context.Context, educatorID uuid.UUID, amount int64) error

	// Settle moves amount from pending (clamped at zero) to settled.
	Settle(ctx context.Context, educatorID uuid.UUID, amount int64) error
}
