package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/padhaihub/payment-service/internal/domain/model"
	domainRepo "github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PaymentRepository {
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new payment intent
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		r.logger.Error("Failed to create payment",
			zap.String("gateway_order_id", payment.GatewayOrderID),
			zap.Error(err))
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByOrderID retrieves a payment by its gateway order id. Returns
// (nil, nil) when no payment exists for the order.
func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Payment, error) {
	var payment model.Payment

	err := r.db.WithContext(ctx).
		Where("gateway_order_id = ?", orderID).
		First(&payment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get payment by order id",
			zap.String("gateway_order_id", orderID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

// GetByID retrieves a payment by its primary key. Returns (nil, nil) when
// the payment does not exist.
func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	var payment model.Payment

	err := r.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to get payment",
			zap.Int64("payment_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

// transition runs a conditional status update. RowsAffected tells the caller
// whether this invocation won the transition; zero rows means another handler
// already moved the payment on, which is a no-op here.
func (r *paymentRepository) transition(ctx context.Context, orderID string, fromStatuses []model.PaymentStatus, updates map[string]interface{}) (bool, error) {
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("gateway_order_id = ? AND status IN ?", orderID, fromStatuses).
		Updates(updates)

	if result.Error != nil {
		r.logger.Error("Failed to transition payment status",
			zap.String("gateway_order_id", orderID),
			zap.Any("updates", updates),
			zap.Error(result.Error))
		return false, fmt.Errorf("failed to transition payment status: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// MarkPending records that the gateway has authorized (but not captured)
// the payment.
func (r *paymentRepository) MarkPending(ctx context.Context, orderID, paymentID string) (bool, error) {
	return r.transition(ctx, orderID, []model.PaymentStatus{model.PaymentStatusCreated}, map[string]interface{}{
		"status":             model.PaymentStatusPending,
		"gateway_payment_id": paymentID,
	})
}

// MarkSuccess moves a created or pending payment to success. The returned
// bool gates the ledger increment and enrollment grant: only the caller that
// performed this transition runs them.
func (r *paymentRepository) MarkSuccess(ctx context.Context, orderID, paymentID, signature string) (bool, error) {
	updates := map[string]interface{}{
		"status":             model.PaymentStatusSuccess,
		"gateway_payment_id": paymentID,
	}
	if signature != "" {
		updates["gateway_signature"] = signature
	}
	return r.transition(ctx, orderID,
		[]model.PaymentStatus{model.PaymentStatusCreated, model.PaymentStatusPending}, updates)
}

// MarkFailed moves a created or pending payment to failed. A failure arriving
// after success is stale and does not transition.
func (r *paymentRepository) MarkFailed(ctx context.Context, orderID, reason string) (bool, error) {
	return r.transition(ctx, orderID,
		[]model.PaymentStatus{model.PaymentStatusCreated, model.PaymentStatusPending}, map[string]interface{}{
			"status":         model.PaymentStatusFailed,
			"failure_reason": reason,
		})
}

// MarkRefunded moves a successful payment to refunded.
func (r *paymentRepository) MarkRefunded(ctx context.Context, orderID string) (bool, error) {
	return r.transition(ctx, orderID, []model.PaymentStatus{model.PaymentStatusSuccess}, map[string]interface{}{
		"status":      model.PaymentStatusRefunded,
		"refunded_at": time.Now(),
	})
}

// StoreWebhookPayload keeps the raw last notification on the payment for
// audit. Runs outside the status CAS so no-op events still leave a trace.
func (r *paymentRepository) StoreWebhookPayload(ctx context.Context, orderID string, payload model.JSONB) error {
	err := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("gateway_order_id = ?", orderID).
		Update("webhook_data", payload).Error

	if err != nil {
		r.logger.Error("Failed to store webhook payload",
			zap.String("gateway_order_id", orderID),
			zap.Error(err))
		return fmt.Errorf("failed to store webhook payload: %w", err)
	}

	return nil
}

// MarkSettled flips the settled flag on a successful, unsettled payment.
func (r *paymentRepository) MarkSettled(ctx context.Context, id int64) (bool, error) {
	now := time.Now()

	result := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ? AND status = ? AND is_settled = ?", id, model.PaymentStatusSuccess, false).
		Updates(map[string]interface{}{
			"is_settled": true,
			"settled_at": &now,
			"updated_at": now,
		})

	if result.Error != nil {
		r.logger.Error("Failed to mark payment settled",
			zap.Int64("payment_id", id),
			zap.Error(result.Error))
		return false, fmt.Errorf("failed to mark payment settled: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func applyFilters(query *gorm.DB, filters domainRepo.ListFilters) *gorm.DB {
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.IsSettled != nil {
		query = query.Where("is_settled = ?", *filters.IsSettled)
	}
	return query
}

func (r *paymentRepository) list(ctx context.Context, column string, id uuid.UUID, filters domainRepo.ListFilters) ([]*model.Payment, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where(column+" = ?", id)
	base = applyFilters(base, filters)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		r.logger.Error("Failed to count payments",
			zap.String("filter_column", column),
			zap.String("id", id.String()),
			zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit <= 0 {
		limit = 10
	}

	var payments []*model.Payment
	err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&payments).Error
	if err != nil {
		r.logger.Error("Failed to list payments",
			zap.String("filter_column", column),
			zap.String("id", id.String()),
			zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, total, nil
}

// ListByStudent returns a page of a student's payments, newest first.
func (r *paymentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, filters domainRepo.ListFilters) ([]*model.Payment, int64, error) {
	return r.list(ctx, "student_id", studentID, filters)
}

// ListByEducator returns a page of an educator's payments, newest first.
func (r *paymentRepository) ListByEducator(ctx context.Context, educatorID uuid.UUID, filters domainRepo.ListFilters) ([]*model.Payment, int64, error) {
	return r.list(ctx, "educator_id", educatorID, filters)
}

// RevenueSummary derives total/pending/settled revenue from the educator's
// successful payments, mirroring how the aggregate columns are maintained.
func (r *paymentRepository) RevenueSummary(ctx context.Context, educatorID uuid.UUID) (*domainRepo.RevenueSummary, error) {
	var summary domainRepo.RevenueSummary

	err := r.db.WithContext(ctx).
		Model(&model.Payment{}).
		Select(`COALESCE(SUM(educator_revenue), 0) AS total_revenue,
			COALESCE(SUM(CASE WHEN is_settled = false THEN educator_revenue ELSE 0 END), 0) AS pending_amount,
			COALESCE(SUM(CASE WHEN is_settled = true THEN educator_revenue ELSE 0 END), 0) AS settled_amount`).
		Where("educator_id = ? AND status = ?", educatorID, model.PaymentStatusSuccess).
		Scan(&summary).Error

	if err != nil {
		r.logger.Error("Failed to compute revenue summary",
			zap.String("educator_id", educatorID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to compute revenue summary: %w", err)
	}

	return &summary, nil
}
