package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/padhaihub/payment-service/internal/domain/model"
	domainRepo "github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type enrollmentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewEnrollmentRepository creates a new enrollment repository instance
func NewEnrollmentRepository(db *gorm.DB, logger *zap.Logger) domainRepo.EnrollmentRepository {
	return &enrollmentRepository{
		db:     db,
		logger: logger,
	}
}

// Grant inserts an enrollment for the (student, kind, resource) triple. The
// insert rides on the composite unique index with ON CONFLICT DO NOTHING, so
// two concurrent confirmations both calling Grant produce exactly one row;
// the loser sees RowsAffected == 0 and reports already-enrolled.
func (r *enrollmentRepository) Grant(ctx context.Context, studentID uuid.UUID, kind model.ResourceKind, resourceID uuid.UUID) (bool, error) {
	enrollment := &model.Enrollment{
		StudentID:    studentID,
		ResourceKind: kind,
		ResourceID:   resourceID,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(enrollment)

	if result.Error != nil {
		r.logger.Error("Failed to grant enrollment",
			zap.String("student_id", studentID.String()),
			zap.String("resource_kind", string(kind)),
			zap.String("resource_id", resourceID.String()),
			zap.Error(result.Error))
		return false, fmt.Errorf("failed to grant enrollment: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Info("Enrollment already exists",
			zap.String("student_id", studentID.String()),
			zap.String("resource_kind", string(kind)),
			zap.String("resource_id", resourceID.String()))
		return false, nil
	}

	return true, nil
}
