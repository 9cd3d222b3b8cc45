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
	"gorm.io/gorm/clause"
)

// kindHandler is one entry in the resource dispatch table. Every purchasable
// kind exposes the same two operations regardless of how its own table stores
// price and ownership; adding a kind means adding a table entry, not a new
// branch in the payment flow.
type kindHandler interface {
	resolve(ctx context.Context, db *gorm.DB, id uuid.UUID) (*domainRepo.ResolvedResource, error)
	enroll(ctx context.Context, db *gorm.DB, id, studentID uuid.UUID) error
}

type resourceRepository struct {
	db       *gorm.DB
	logger   *zap.Logger
	handlers map[model.ResourceKind]kindHandler
}

// NewResourceRepository creates a resolver over the known resource kinds.
func NewResourceRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ResourceResolver {
	return &resourceRepository{
		db:     db,
		logger: logger,
		handlers: map[model.ResourceKind]kindHandler{
			model.ResourceKindCourse:     courseHandler{},
			model.ResourceKindTestSeries: testSeriesHandler{},
			model.ResourceKindLiveClass:  liveClassHandler{},
			model.ResourceKindWebinar:    webinarHandler{},
		},
	}
}

// Resolve returns the price and owning educator for a resource, or (nil, nil)
// when the resource does not exist.
func (r *resourceRepository) Resolve(ctx context.Context, kind model.ResourceKind, id uuid.UUID) (*domainRepo.ResolvedResource, error) {
	handler, ok := r.handlers[kind]
	if !ok {
		return nil, fmt.Errorf("unknown resource kind: %s", kind)
	}

	resolved, err := handler.resolve(ctx, r.db, id)
	if err != nil {
		r.logger.Error("Failed to resolve resource",
			zap.String("resource_kind", string(kind)),
			zap.String("resource_id", id.String()),
			zap.Error(err))
		return nil, err
	}

	return resolved, nil
}

// Enroll mirrors a granted enrollment onto the resource's own member list.
// Conflict-guarded, so repeated calls for the same pair are no-ops.
func (r *resourceRepository) Enroll(ctx context.Context, kind model.ResourceKind, id uuid.UUID, studentID uuid.UUID) error {
	handler, ok := r.handlers[kind]
	if !ok {
		return fmt.Errorf("unknown resource kind: %s", kind)
	}

	if err := handler.enroll(ctx, r.db, id, studentID); err != nil {
		r.logger.Error("Failed to record resource membership",
			zap.String("resource_kind", string(kind)),
			zap.String("resource_id", id.String()),
			zap.String("student_id", studentID.String()),
			zap.Error(err))
		return err
	}

	return nil
}

func insertMember(ctx context.Context, db *gorm.DB, member interface{}) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(member).Error
}

type courseHandler struct{}

func (courseHandler) resolve(ctx context.Context, db *gorm.DB, id uuid.UUID) (*domainRepo.ResolvedResource, error) {
	var course model.Course
	err := db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve course: %w", err)
	}
	return &domainRepo.ResolvedResource{Price: course.Fees, EducatorID: course.EducatorID}, nil
}

func (courseHandler) enroll(ctx context.Context, db *gorm.DB, id, studentID uuid.UUID) error {
	return insertMember(ctx, db, &model.CourseMember{CourseID: id, StudentID: studentID})
}

type testSeriesHandler struct{}

func (testSeriesHandler) resolve(ctx context.Context, db *gorm.DB, id uuid.UUID) (*domainRepo.ResolvedResource, error) {
	var series model.TestSeries
	err := db.WithContext(ctx).Where("id = ?", id).First(&series).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve test series: %w", err)
	}
	return &domainRepo.ResolvedResource{Price: series.Price, EducatorID: series.EducatorID}, nil
}

func (testSeriesHandler) enroll(ctx context.Context, db *gorm.DB, id, studentID uuid.UUID) error {
	return insertMember(ctx, db, &model.TestSeriesMember{TestSeriesID: id, StudentID: studentID})
}

// liveClassHandler inherits price and ownership from the parent course; a
// class has no fee of its own. A class without a parent resolves to price 0.
type liveClassHandler struct{}

func (liveClassHandler) resolve(ctx context.Context, db *gorm.DB, id uuid.UUID) (*domainRepo.ResolvedResource, error) {
	var class model.LiveClass
	err := db.WithContext(ctx).Where("id = ?", id).First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve live class: %w", err)
	}

	if class.CourseID == nil {
		return &domainRepo.ResolvedResource{Price: 0}, nil
	}

	var course model.Course
	err = db.WithContext(ctx).Where("id = ?", *class.CourseID).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domainRepo.ResolvedResource{Price: 0}, nil
		}
		return nil, fmt.Errorf("failed to resolve parent course: %w", err)
	}

	return &domainRepo.ResolvedResource{Price: course.Fees, EducatorID: course.EducatorID}, nil
}

func (liveClassHandler) enroll(ctx context.Context, db *gorm.DB, id, studentID uuid.UUID) error {
	return insertMember(ctx, db, &model.LiveClassMember{LiveClassID: id, StudentID: studentID})
}

type webinarHandler struct{}

func (webinarHandler) resolve(ctx context.Context, db *gorm.DB, id uuid.UUID) (*domainRepo.ResolvedResource, error) {
	var webinar model.Webinar
	err := db.WithContext(ctx).Where("id = ?", id).First(&webinar).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve webinar: %w", err)
	}
	return &domainRepo.ResolvedResource{Price: webinar.Fees, EducatorID: webinar.EducatorID}, nil
}

func (webinarHandler) enroll(ctx context.Context, db *gorm.DB, id, studentID uuid.UUID) error {
	return insertMember(ctx, db, &model.WebinarMember{WebinarID: id, StudentID: studentID})
}
