package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/padhaihub/payment-service/internal/domain/model"
	domainRepo "github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type revenueRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRevenueRepository creates a new revenue repository instance
func NewRevenueRepository(db *gorm.DB, logger *zap.Logger) domainRepo.RevenueRepository {
	return &revenueRepository{
		db:     db,
		logger: logger,
	}
}

// AddPending credits a fresh successful payment to the educator's totals.
// Single UPDATE with SQL expressions; two concurrent credits both land.
func (r *revenueRepository) AddPending(ctx context.Context, educatorID uuid.UUID, amount int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Educator{}).
		Where("id = ?", educatorID).
		Updates(map[string]interface{}{
			"total_income":   gorm.Expr("total_income + ?", amount),
			"pending_amount": gorm.Expr("pending_amount + ?", amount),
			"updated_at":     gorm.Expr("now()"),
		})

	if result.Error != nil {
		r.logger.Error("Failed to add pending revenue",
			zap.String("educator_id", educatorID.String()),
			zap.Int64("amount", amount),
			zap.Error(result.Error))
		return fmt.Errorf("failed to add pending revenue: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("educator not found: %s", educatorID)
	}

	r.logger.Info("Pending revenue credited",
		zap.String("educator_id", educatorID.String()),
		zap.Int64("amount", amount))

	return nil
}

// ReleasePending removes refunded revenue from the pending amount, clamped
// at zero so a refund can never drive the aggregate negative.
func (r *revenueRepository) ReleasePending(ctx context.Context, educatorID uuid.UUID, amount int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Educator{}).
		Where("id = ?", educatorID).
		Updates(map[string]interface{}{
			"pending_amount": gorm.Expr("GREATEST(pending_amount - ?, 0)", amount),
			"updated_at":     gorm.Expr("now()"),
		})

	if result.Error != nil {
		r.logger.Error("Failed to release pending revenue",
			zap.String("educator_id", educatorID.String()),
			zap.Int64("amount", amount),
			zap.Error(result.Error))
		return fmt.Errorf("failed to release pending revenue: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("educator not found: %s", educatorID)
	}

	r.logger.Info("Pending revenue released",
		zap.String("educator_id", educatorID.String()),
		zap.Int64("amount", amount))

	return nil
}

// Settle moves amount from pending to settled in one statement.
func (r *revenueRepository) Settle(ctx context.Context, educatorID uuid.UUID, amount int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.Educator{}).
		Where("id = ?", educatorID).
		Updates(map[string]interface{}{
			"pending_amount": gorm.Expr("GREATEST(pending_amount - ?, 0)", amount),
			"settled_amount": gorm.Expr("settled_amount + ?", amount),
			"updated_at":     gorm.Expr("now()"),
		})

	if result.Error != nil {
		r.logger.Error("Failed to settle revenue",
			zap.String("educator_id", educatorID.String()),
			zap.Int64("amount", amount),
			zap.Error(result.Error))
		return fmt.Errorf("failed to settle revenue: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("educator not found: %s", educatorID)
	}

	r.logger.Info("Revenue settled",
		zap.String("educator_id", educatorID.String()),
		zap.Int64("amount", amount))

	return nil
}
