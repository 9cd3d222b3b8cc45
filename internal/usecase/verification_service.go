package usecase

import (
	"context"

	domainErrors "github.com/padhaihub/payment-service/internal/domain/errors"
	"github.com/padhaihub/payment-service/internal/domain/gateway"
	"github.com/padhaihub/payment-service/internal/domain/model"
	"github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
)

// VerificationService is the synchronous confirmation path: the purchasing
// client calls it with the signature the gateway checkout handed back.
type VerificationService struct {
	payments   repository.PaymentRepository
	revenue    repository.RevenueRepository
	enrollment *EnrollmentService
	verifier   gateway.SignatureVerifier
	logger     *zap.Logger
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	payments repository.PaymentRepository,
	revenue repository.RevenueRepository,
	enrollment *EnrollmentService,
	verifier gateway.SignatureVerifier,
	logger *zap.Logger,
) *VerificationService {
	return &VerificationService{
		payments:   payments,
		revenue:    revenue,
		enrollment: enrollment,
		verifier:   verifier,
		logger:     logger,
	}
}

// VerifyResult reports the payment's status after verification.
type VerifyResult struct {
	PaymentID int64               `json:"payment_id"`
	Status    model.PaymentStatus `json:"status"`
}

// Verify checks the checkout signature and advances the payment. If the
// webhook path already resolved the payment, this returns the current status
// without repeating the ledger increment or the enrollment grant.
func (s *VerificationService) Verify(ctx context.Context, orderID, paymentID, signature string) (*VerifyResult, error) {
	payment, err := s.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domainErrors.NewNotFoundError("payment", orderID)
	}

	// Already resolved by the other path; nothing left to do.
	if payment.Status.Terminal() {
		s.logger.Info("Verify call on resolved payment",
			zap.String("gateway_order_id", orderID),
			zap.String("status", string(payment.Status)))
		return &VerifyResult{PaymentID: payment.ID, Status: payment.Status}, nil
	}

	if !s.verifier.VerifyCheckoutSignature(orderID, paymentID, signature) {
		// Record the rejection so the failed state is durable, then fail
		// closed. A lost race here means the payment already resolved,
		// which the transition no-ops on.
		if _, err := s.payments.MarkFailed(ctx, orderID, "Invalid signature"); err != nil {
			return nil, err
		}
		s.logger.Warn("Checkout signature mismatch",
			zap.String("gateway_order_id", orderID),
			zap.String("gateway_payment_id", paymentID))
		return nil, &domainErrors.SignatureMismatchError{OrderID: orderID}
	}

	fresh, err := s.payments.MarkSuccess(ctx, orderID, paymentID, signature)
	if err != nil {
		return nil, err
	}

	if fresh {
		s.completeSideEffects(ctx, payment)
	} else {
		s.logger.Info("Payment already resolved, skipping side effects",
			zap.String("gateway_order_id", orderID))
	}

	return &VerifyResult{PaymentID: payment.ID, Status: model.PaymentStatusSuccess}, nil
}

// completeSideEffects runs the ledger increment and enrollment grant after a
// fresh transition into success. Both are idempotent; failures are logged and
// left for the webhook retry or the reconciliation job to heal, because the
// payment status is already the durable source of truth.
func (s *VerificationService) completeSideEffects(ctx context.Context, payment *model.Payment) {
	if err := s.revenue.AddPending(ctx, payment.EducatorID, payment.EducatorRevenue); err != nil {
		s.logger.Error("Failed to credit educator revenue",
			zap.String("gateway_order_id", payment.GatewayOrderID),
			zap.String("educator_id", payment.EducatorID.String()),
			zap.Error(err))
	}

	if _, err := s.enrollment.Grant(ctx, payment.StudentID, payment.ResourceKind, payment.ResourceID); err != nil {
		s.logger.Error("Failed to grant enrollment",
			zap.String("gateway_order_id", payment.GatewayOrderID),
			zap.String("student_id", payment.StudentID.String()),
			zap.Error(err))
	}
}
