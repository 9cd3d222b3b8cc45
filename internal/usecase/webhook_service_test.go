package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	domainErrors "github.com/padhaihub/payment-service/internal/domain/errors"
	"github.com/padhaihub/payment-service/internal/domain/model"
	"github.com/padhaihub/payment-service/internal/usecase"
)

func webhookBody(event, orderID, paymentID string) []byte {
	return []byte(fmt.Sprintf(
		`{"event":%q,"payload":{"payment":{"entity":{"id":%q,"order_id":%q}}}}`,
		event, paymentID, orderID))
}

func TestWebhookService_HandleEvent(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	studentID := uuid.New()
	educatorID := uuid.New()
	resourceID := uuid.New()

	const (
		orderID   = "order_MkpPpPJqJxd8Nk"
		paymentID = "pay_29QQoUBi66xm2f"
		signature = "webhook_signature"
	)

	payment := func() *model.Payment {
		return &model.Payment{
			ID:              42,
			GatewayOrderID:  orderID,
			StudentID:       studentID,
			EducatorID:      educatorID,
			Amount:          1000,
			EducatorRevenue: 950,
			Status:          model.PaymentStatusPending,
			ResourceKind:    model.ResourceKindTestSeries,
			ResourceID:      resourceID,
		}
	}

	newService := func() (*usecase.WebhookService, *MockPaymentRepository, *MockRevenueRepository, *MockEnrollmentRepository, *MockResourceResolver, *MockSignatureVerifier) {
		mockPayments := new(MockPaymentRepository)
		mockRevenue := new(MockRevenueRepository)
		mockEnrollments := new(MockEnrollmentRepository)
		mockResources := new(MockResourceResolver)
		mockVerifier := new(MockSignatureVerifier)
		enrollment := usecase.NewEnrollmentService(mockEnrollments, mockResources, logger)
		service := usecase.NewWebhookService(mockPayments, mockRevenue, enrollment, mockVerifier, logger)
		return service, mockPayments, mockRevenue, mockEnrollments, mockResources, mockVerifier
	}

	t.Run("invalid body signature is rejected", func(t *testing.T) {
		service, mockPayments, _, _, _, mockVerifier := newService()

		body := webhookBody("payment.captured", orderID, paymentID)
		mockVerifier.On("VerifyWebhookSignature", body, "bad").Return(false)

		outcome, err := service.HandleEvent(ctx, body, "bad")

		assert.Error(t, err)
		assert.Empty(t, outcome)
		var sigErr *domainErrors.SignatureMismatchError
		assert.ErrorAs(t, err, &sigErr)
		mockPayments.AssertNotCalled(t, "GetByOrderID")
	})

	t.Run("captured event completes the payment once", func(t *testing.T) {
		service, mockPayments, mockRevenue, mockEnrollments, mockResources, mockVerifier := newService()

		body := webhookBody("payment.captured", orderID, paymentID)
		mockVerifier.On("VerifyWebhookSignature", body, signature).Return(true)
		mockPayments.On("GetByOrderID", ctx, orderID).Return(payment(), nil)
		mockPayments.On("StoreWebhookPayload", ctx, orderID, mock.Anything).Return(nil)
		mockPayments.On("MarkSuccess", ctx, orderID, paymentID, "").Return(true, nil)
		mockRevenue.On("AddPending", ctx, educatorID, int64(950)).Return(nil)
		mockEnrollments.On("Grant", ctx, studentID, model.ResourceKindTestSeries, resourceID).Return(true, nil)
		mockResources.On("Enroll", ctx, model.ResourceKindTestSeries, resourceID, studentID).Return(nil)

		outcome, err := service.HandleEvent(ctx, body, signature)

		assert.NoError(t, err)
		assert.Equal(t, usecase.OutcomeProcessed, outcome)
		mockRevenue.AssertNumberOfCalls(t, "AddPending", 1)
		mockEnrollments.AssertNumberOfCalls(t, "Grant", 1)
	})

	t.Run("captured redelivery is ignored without side effects", func(t *testing.T) {
		service, mockPayments, mockRevenue, mockEnrollments, _, mockVerifier := newService()

		body := webhookBody("payment.captured", orderID, paymentID)
		mockVerifier.On("VerifyWebhookSignature", body, signature).Return(true)
		mockPayments.On("GetByOrderID", ctx, orderID).Return(payment(), nil)
		mockPayments.On("StoreWebhookPayload", ctx, orderID, mock.Anything).Return(nil)
		mockPayments.On("MarkSuccess", ctx, orderID, paymentID, "").Return(false, nil)

		outcome, err := service.HandleEvent(ctx, body, signature)

		assert.NoError(t, err)
		assert.Equal(t, usecase.OutcomeIgnored, outcome)
		mockRevenue.AssertNotCalled(t, "AddPending")
		mockEnrollments.AssertNotCalled(t, "Grant")
	})

	t.Run("authorized event moves payment to pending", func(t *testing.T) {
		service, mockPayments, _, _, _, mockVerifier := newService()

		body := webhookBody("payment.authorized", orderID, paymentID)
		mockVerifier.On("VerifyWebhookSignature", body, signature).Return(true)
		mockPayments.On("GetByOrderID", ctx, orderID).Return(payment(), nil)
		mockPayments.On("StoreWebhookPayload", ctx, orderID, mock.Anything).Return(nil)
		mockPayments.On("MarkPending", ctx, orderID, paymentID).Return(true, nil)

		outcome, err := service.HandleEvent(ctx, body, signature)

		assert.NoError(t, err)
		assert.Equal(t, usecase.OutcomeProcessed, outcome)
	})

	t.Run("stale failure after success is ignored", func(t *testing.T) {
		service, mockPayments, _, _, _, mockVerifier := newService()

		succeeded := payment()
		succeeded.Status = model.PaymentStatusSuccess
		body := webhookBody("payment.failed", orderID, paymentID)
		mockVerifier.On("VerifyWebhookSignature", body, signature).Return(true)
		mockPayments.On("GetByOrderID", ctx, orderID).Return(succeeded, nil)
		mockPayments.On("StoreWebhookPayload", ctx, orderID, mock.Anything).Return(nil)
		mockPayments.On("MarkFailed", ctx, orderID, "Payment failed").Return(false, nil)

		outcome, err := service.HandleEvent(ctx, body, signature)

		assert.NoError(t, err)
		assert.Equal(t, usecase.OutcomeIgnored, outcome)
	})

	t.Run("refund on unsettled payment releases pending revenue", func(t *testing.T) {
		service, mockPayments, mockRevenue, _, _, mockVerifier := newService()

		succeeded := payment()
		succeeded.Status = model.PaymentStatusSuccess
		body := webhookBody("refund.created", orderID, paymentID)
		mockVerifier.On("VerifyWebhookSignature", body, signature).Return(true)
		mockPayments.On("GetByOrderID", ctx, orderID).Return(succeeded, nil)
		mockPayments.On("StoreWebhookPayload", ctx, orderID, mock.Anything).Return(nil)
		mockPayments.On("MarkRefunded", ctx, orderID).Return(true, nil)
		mockRevenue.On("ReleasePending", ctx, educatorID, int64(950)).Return(nil)

		outcome, err := service.HandleEvent(ctx, body, signature)

		assert.NoError(t, err)
		assert.Equal(t, usecase.OutcomeProcessed, outcome)
		mockRevenue.AssertExpectations(t)
	})

	t.Run("refund on settled payment keeps the ledger untouched", func(t *testing.T) {
		service, mockPayments, mockRevenue, _, _, mockVerifier := newService()

		settled := payment()
		settled.Status = model.PaymentStatusSuccess
		settled.IsSettled = true
		body := webhookBody("refund.created", orderID, paymentID)
		mockVerifier.On("VerifyWebhookSignature", body, signature).Return(true)
		mockPayments.On("GetByOrderID", ctx, orderID).Return(settled, nil)
		mockPayments.On("StoreWebhookPayload", ctx, orderID, mock.Anything).Return(nil)
		mockPayments.On("MarkRefunded", ctx, orderID).Return(true, nil)

		outcome, err := service.HandleEvent(ctx, body, signature)

		assert.NoError(t, err)
		assert.Equal(t, usecase.OutcomeProcessed, outcome)
		mockRevenue.AssertNotCalled(t, "ReleasePending")
	})

	t.Run("unknown order is acknowledged as ignored", func(t *testing.T) {
		service, mockPayments, _, _, _, mockVerifier := newService()

		body := webhookBody("payment.captured", "order_foreign", paymentID)
		mockVerifier.On("VerifyWebhookSignature", body, signature).Return(true)
		mockPayments.On("GetByOrderID", ctx, "order_foreign").Return(nil, nil)

		outcome, err := service.HandleEvent(ctx, body, signature)

		assert.NoError(t, err)
		assert.Equal(t, usecase.OutcomeIgnored, outcome)
		mockPayments.AssertNotCalled(t, "StoreWebhookPayload")
	})

	t.Run("payload missing order id is a validation error", func(t *testing.T) {
		service, _, _, _, _, mockVerifier := newService()

		body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_x"}}}}`)
		mockVerifier.On("VerifyWebhookSignature", body, signature).Return(true)

		outcome, err := service.HandleEvent(ctx, body, signature)

		assert.Error(t, err)
		assert.Empty(t, outcome)
		var valErr *domainErrors.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("unhandled event type is ignored", func(t *testing.T) {
		service, mockPayments, _, _, _, mockVerifier := newService()

		body := webhookBody("payment.downtime.started", orderID, paymentID)
		mockVerifier.On("VerifyWebhookSignature", body, signature).Return(true)
		mockPayments.On("GetByOrderID", ctx, orderID).Return(payment(), nil)
		mockPayments.On("StoreWebhookPayload", ctx, orderID, mock.Anything).Return(nil)

		outcome, err := service.HandleEvent(ctx, body, signature)

		assert.NoError(t, err)
		assert.Equal(t, usecase.OutcomeIgnored, outcome)
	})
}
