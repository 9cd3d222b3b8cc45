package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/padhaihub/payment-service/internal/domain/model"
)

// EnrollmentRepository records resource access grants. Grant returns true
// when this call created the record and false when the (student, kind,
// resource) triple was already enrolled; the uniqueness constraint makes the
// check-and-insert atomic under concurrent confirmations.
type EnrollmentRepository interface {
	Grant(ctx context.Context, studentID uuid.UUID, kind model.ResourceKind, resourceID uuid.UUID) (bool, error)
}
