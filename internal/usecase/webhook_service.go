package usecase

import (
	"context"
	"encoding/json"

	domainErrors "github.com/padhaihub/payment-service/internal/domain/errors"
	"github.com/padhaihub/payment-service/internal/domain/gateway"
	"github.com/padhaihub/payment-service/internal/domain/model"
	"github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
)

// Gateway webhook event names.
const (
	eventPaymentAuthorized = "payment.authorized"
	eventPaymentCaptured   = "payment.captured"
	eventPaymentFailed     = "payment.failed"
	eventRefundCreated     = "refund.created"
)

// WebhookOutcome summarizes what a delivery did, for the response body and
// logs. Deliveries that change nothing still succeed so the gateway stops
// retrying.
type WebhookOutcome string

const (
	OutcomeProcessed WebhookOutcome = "processed"
	OutcomeIgnored   WebhookOutcome = "ignored"
)

// webhookEnvelope is the gateway's notification shape. The payment entity is
// present on every event this service handles, including refunds.
type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string `json:"id"`
				OrderID          string `json:"order_id"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// WebhookService is the asynchronous confirmation path, invoked by the
// gateway's servers. Every transition is re-entrant, so redelivery of the
// same notification is a pure no-op.
type WebhookService struct {
	payments   repository.PaymentRepository
	revenue    repository.RevenueRepository
	enrollment *EnrollmentService
	verifier   gateway.SignatureVerifier
	logger     *zap.Logger
}

// NewWebhookService creates a new webhook service
func NewWebhookService(
	payments repository.PaymentRepository,
	revenue repository.RevenueRepository,
	enrollment *EnrollmentService,
	verifier gateway.SignatureVerifier,
	logger *zap.Logger,
) *WebhookService {
	return &WebhookService{
		payments:   payments,
		revenue:    revenue,
		enrollment: enrollment,
		verifier:   verifier,
		logger:     logger,
	}
}

// HandleEvent validates the whole-body signature and applies the event's
// status transition. Storage failures are the only errors worth a non-2xx
// response; everything else resolves to processed or ignored.
func (s *WebhookService) HandleEvent(ctx context.Context, body []byte, signature string) (WebhookOutcome, error) {
	if !s.verifier.VerifyWebhookSignature(body, signature) {
		s.logger.Warn("Webhook signature mismatch")
		return "", &domainErrors.SignatureMismatchError{}
	}

	var envelope webhookEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", domainErrors.NewValidationError("malformed webhook payload: %v", err)
	}

	entity := envelope.Payload.Payment.Entity
	if entity.OrderID == "" {
		return "", domainErrors.NewValidationError("webhook payload missing order id")
	}

	payment, err := s.payments.GetByOrderID(ctx, entity.OrderID)
	if err != nil {
		return "", err
	}
	if payment == nil {
		// Not an order this service issued. Acknowledge so the gateway
		// does not keep retrying.
		s.logger.Warn("Webhook for unknown order",
			zap.String("event", envelope.Event),
			zap.String("gateway_order_id", entity.OrderID))
		return OutcomeIgnored, nil
	}

	// Keep the raw notification on the intent for audit, whatever the
	// event does.
	var raw model.JSONB
	if err := json.Unmarshal(body, &raw); err == nil {
		if err := s.payments.StoreWebhookPayload(ctx, entity.OrderID, raw); err != nil {
			return "", err
		}
	}

	s.logger.Info("Processing webhook event",
		zap.String("event", envelope.Event),
		zap.String("gateway_order_id", entity.OrderID),
		zap.String("gateway_payment_id", entity.ID))

	switch envelope.Event {
	case eventPaymentAuthorized:
		return s.handleAuthorized(ctx, entity.OrderID, entity.ID)
	case eventPaymentCaptured:
		return s.handleCaptured(ctx, payment, entity.ID)
	case eventPaymentFailed:
		return s.handleFailed(ctx, entity.OrderID, entity.ErrorDescription)
	case eventRefundCreated:
		return s.handleRefund(ctx, payment)
	default:
		s.logger.Warn("Unhandled webhook event type",
			zap.String("event", envelope.Event))
		return OutcomeIgnored, nil
	}
}

func (s *WebhookService) handleAuthorized(ctx context.Context, orderID, paymentID string) (WebhookOutcome, error) {
	moved, err := s.payments.MarkPending(ctx, orderID, paymentID)
	if err != nil {
		return "", err
	}
	if !moved {
		return OutcomeIgnored, nil
	}
	return OutcomeProcessed, nil
}

func (s *WebhookService) handleCaptured(ctx context.Context, payment *model.Payment, paymentID string) (WebhookOutcome, error) {
	fresh, err := s.payments.MarkSuccess(ctx, payment.GatewayOrderID, paymentID, "")
	if err != nil {
		return "", err
	}
	if !fresh {
		s.logger.Info("Capture already processed",
			zap.String("gateway_order_id", payment.GatewayOrderID))
		return OutcomeIgnored, nil
	}

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

	return OutcomeProcessed, nil
}

func (s *WebhookService) handleFailed(ctx context.Context, orderID, reason string) (WebhookOutcome, error) {
	if reason == "" {
		reason = "Payment failed"
	}

	moved, err := s.payments.MarkFailed(ctx, orderID, reason)
	if err != nil {
		return "", err
	}
	if !moved {
		// Stale failure after a success, or redelivery. Either way done.
		s.logger.Info("Failure notification ignored",
			zap.String("gateway_order_id", orderID))
		return OutcomeIgnored, nil
	}
	return OutcomeProcessed, nil
}

func (s *WebhookService) handleRefund(ctx context.Context, payment *model.Payment) (WebhookOutcome, error) {
	moved, err := s.payments.MarkRefunded(ctx, payment.GatewayOrderID)
	if err != nil {
		return "", err
	}
	if !moved {
		return OutcomeIgnored, nil
	}

	if payment.IsSettled {
		// Already paid out. Reconciling a settled payout is an
		// operational process; the refunded status is the flag for it.
		s.logger.Warn("Refund on settled payment",
			zap.Int64("payment_id", payment.ID),
			zap.String("gateway_order_id", payment.GatewayOrderID))
		return OutcomeProcessed, nil
	}

	if err := s.revenue.ReleasePending(ctx, payment.EducatorID, payment.EducatorRevenue); err != nil {
		s.logger.Error("Failed to release pending revenue",
			zap.String("gateway_order_id", payment.GatewayOrderID),
			zap.String("educator_id", payment.EducatorID.String()),
			zap.Error(err))
	}

	return OutcomeProcessed, nil
}
