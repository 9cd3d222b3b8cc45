package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/padhaihub/payment-service/internal/domain/model"
	"github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
)

// EnrollmentService grants resource access after a successful payment. It is
// invoked from both confirmation paths and must stay idempotent under
// concurrent calls for the same triple.
type EnrollmentService struct {
	enrollments repository.EnrollmentRepository
	resources   repository.ResourceResolver
	logger      *zap.Logger
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	enrollments repository.EnrollmentRepository,
	resources repository.ResourceResolver,
	logger *zap.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		enrollments: enrollments,
		resources:   resources,
		logger:      logger,
	}
}

// Grant creates the enrollment record and mirrors it onto the resource's
// member list. Returns false when the student was already enrolled. The
// membership write runs on every call so a retry can heal a grant whose
// mirror write was lost.
func (s *EnrollmentService) Grant(ctx context.Context, studentID uuid.UUID, kind model.ResourceKind, resourceID uuid.UUID) (bool, error) {
	created, err := s.enrollments.Grant(ctx, studentID, kind, resourceID)
	if err != nil {
		return false, err
	}

	if err := s.resources.Enroll(ctx, kind, resourceID, studentID); err != nil {
		// The enrollment record is the source of truth and is already in
		// place; a failed mirror write is retried on the next confirmation.
		s.logger.Warn("Membership mirror write failed",
			zap.String("student_id", studentID.String()),
			zap.String("resource_kind", string(kind)),
			zap.String("resource_id", resourceID.String()),
			zap.Error(err))
	}

	if created {
		s.logger.Info("Student enrolled",
			zap.String("student_id", studentID.String()),
			zap.String("resource_kind", string(kind)),
			zap.String("resource_id", resourceID.String()))
	}

	return created, nil
}
