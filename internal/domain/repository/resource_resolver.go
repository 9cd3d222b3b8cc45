package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/padhaihub/payment-service/internal/domain/model"
)

// ResolvedResource is the two-field shape every resource kind exposes to the
// payment flow, whatever its own schema looks like.
type ResolvedResource struct {
	Price      int64
	EducatorID uuid.UUID
}

// ResourceResolver hides how each resource kind stores price and ownership.
// Resolve returns (nil, nil) when the resource does not exist. Enroll mirrors
// a granted enrollment onto the resource's own member list and must be
// idempotent.
type ResourceResolver interface {
	Resolve(ctx context.Context, kind model.ResourceKind, id uuid.UUID) (*ResolvedResource, error)
	Enroll(ctx context.Context, kind model.ResourceKind, id uuid.UUID, studentID uuid.UUID) error
}
