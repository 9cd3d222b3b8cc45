package usecase

import (
	"context"
	"strconv"

	domainErrors "github.com/padhaihub/payment-service/internal/domain/errors"
	"github.com/padhaihub/payment-service/internal/domain/model"
	"github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
)

// SettlementService moves an individual payment's educator revenue from
// pending to paid out.
type SettlementService struct {
	payments repository.PaymentRepository
	revenue  repository.RevenueRepository
	logger   *zap.Logger
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	payments repository.PaymentRepository,
	revenue repository.RevenueRepository,
	logger *zap.Logger,
) *SettlementService {
	return &SettlementService{
		payments: payments,
		revenue:  revenue,
		logger:   logger,
	}
}

// Settle marks a successful, unsettled payment as settled and moves its
// educator revenue from pending to settled. The settled flag flips through a
// conditional update, so two concurrent settle calls move the revenue once.
func (s *SettlementService) Settle(ctx context.Context, paymentID int64) error {
	payment, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return domainErrors.NewNotFoundError("payment", strconv.FormatInt(paymentID, 10))
	}

	if payment.Status != model.PaymentStatusSuccess {
		return &domainErrors.SettlementConflictError{
			PaymentID: paymentID,
			Reason:    domainErrors.SettlementNotSettleable,
		}
	}
	if payment.IsSettled {
		return &domainErrors.SettlementConflictError{
			PaymentID: paymentID,
			Reason:    domainErrors.SettlementAlreadySettled,
		}
	}

	settled, err := s.payments.MarkSettled(ctx, paymentID)
	if err != nil {
		return err
	}
	if !settled {
		// Lost a race with another settle call between the read and the
		// conditional update.
		return &domainErrors.SettlementConflictError{
			PaymentID: paymentID,
			Reason:    domainErrors.SettlementAlreadySettled,
		}
	}

	if err := s.revenue.Settle(ctx, payment.EducatorID, payment.EducatorRevenue); err != nil {
		s.logger.Error("Failed to move revenue to settled",
			zap.Int64("payment_id", paymentID),
			zap.String("educator_id", payment.EducatorID.String()),
			zap.Error(err))
		return err
	}

	s.logger.Info("Payment settled",
		zap.Int64("payment_id", paymentID),
		zap.String("educator_id", payment.EducatorID.String()),
		zap.Int64("educator_revenue", payment.EducatorRevenue))

	return nil
}
