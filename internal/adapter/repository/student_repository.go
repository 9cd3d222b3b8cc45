package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/padhaihub/payment-service/internal/domain/model"
	domainRepo "github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type studentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStudentRepository creates a new student repository instance
func NewStudentRepository(db *gorm.DB, logger *zap.Logger) domainRepo.StudentRepository {
	return &studentRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a student account. Returns (nil, nil) when absent.
func (r *studentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	var student model.Student

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&student).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get student",
			zap.String("student_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return &student, nil
}
