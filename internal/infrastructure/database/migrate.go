package database

import (
	"github.com/padhaihub/payment-service/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	// Auto-migrate all models
	err := db.AutoMigrate(
		&model.Student{},
		&model.Educator{},
		&model.Course{},
		&model.TestSeries{},
		&model.LiveClass{},
		&model.Webinar{},
		&model.Payment{},
		&model.Enrollment{},
		&model.CourseMember{},
		&model.TestSeriesMember{},
		&model.LiveClassMember{},
		&model.WebinarMember{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	// Create custom indexes and constraints
	if err := createCustomIndexes(db); err != nil {
		logger.Error("Failed to create custom indexes", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates indexes that GORM doesn't handle automatically
func createCustomIndexes(db *gorm.DB) error {
	// Settlement queries scan an educator's unsettled successes.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_payments_unsettled ON payments (educator_id, created_at) WHERE status = 'success' AND is_settled = false`).Error; err != nil {
		return err
	}

	return nil
}
