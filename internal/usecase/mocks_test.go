package usecase_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/padhaihub/payment-service/internal/domain/gateway"
	"github.com/padhaihub/payment-service/internal/domain/model"
	"github.com/padhaihub/payment-service/internal/domain/repository"
)

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) MarkPending(ctx context.Context, orderID, paymentID string) (bool, error) {
	args := m.Called(ctx, orderID, paymentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) MarkSuccess(ctx context.Context, orderID, paymentID, signature string) (bool, error) {
	args := m.Called(ctx, orderID, paymentID, signature)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) MarkFailed(ctx context.Context, orderID, reason string) (bool, error) {
	args := m.Called(ctx, orderID, reason)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) MarkRefunded(ctx context.Context, orderID string) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) MarkSettled(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) StoreWebhookPayload(ctx context.Context, orderID string, payload model.JSONB) error {
	args := m.Called(ctx, orderID, payload)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, filters repository.ListFilters) ([]*model.Payment, int64, error) {
	args := m.Called(ctx, studentID, filters)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) ListByEducator(ctx context.Context, educatorID uuid.UUID, filters repository.ListFilters) ([]*model.Payment, int64, error) {
	args := m.Called(ctx, educatorID, filters)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) RevenueSummary(ctx context.Context, educatorID uuid.UUID) (*repository.RevenueSummary, error) {
	args := m.Called(ctx, educatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RevenueSummary), args.Error(1)
}

// MockEnrollmentRepository is a mock implementation of EnrollmentRepository
type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Grant(ctx context.Context, studentID uuid.UUID, kind model.ResourceKind, resourceID uuid.UUID) (bool, error) {
	args := m.Called(ctx, studentID, kind, resourceID)
	return args.Bool(0), args.Error(1)
}

// MockRevenueRepository is a mock implementation of RevenueRepository
type MockRevenueRepository struct {
	mock.Mock
}

func (m *MockRevenueRepository) AddPending(ctx context.Context, educatorID uuid.UUID, amount int64) error {
	args := m.Called(ctx, educatorID, amount)
	return args.Error(0)
}

func (m *MockRevenueRepository) ReleasePending(ctx context.Context, educatorID uuid.UUID, amount int64) error {
	args := m.Called(ctx, educatorID, amount)
	return args.Error(0)
}

func (m *MockRevenueRepository) Settle(ctx context.Context, educatorID uuid.UUID, amount int64) error {
	args := m.Called(ctx, educatorID, amount)
	return args.Error(0)
}

// MockStudentRepository is a mock implementation of StudentRepository
type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Student), args.Error(1)
}

// MockResourceResolver is a mock implementation of ResourceResolver
type MockResourceResolver struct {
	mock.Mock
}

func (m *MockResourceResolver) Resolve(ctx context.Context, kind model.ResourceKind, id uuid.UUID) (*repository.ResolvedResource, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ResolvedResource), args.Error(1)
}

func (m *MockResourceResolver) Enroll(ctx context.Context, kind model.ResourceKind, id uuid.UUID, studentID uuid.UUID) error {
	args := m.Called(ctx, kind, id, studentID)
	return args.Error(0)
}

// MockGatewayClient is a mock implementation of gateway.Client
type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) CreateOrder(ctx context.Context, req *gateway.CreateOrderRequest) (*gateway.CreateOrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.CreateOrderResponse), args.Error(1)
}

func (m *MockGatewayClient) KeyID() string {
	args := m.Called()
	return args.String(0)
}

// MockSignatureVerifier is a mock implementation of gateway.SignatureVerifier
type MockSignatureVerifier struct {
	mock.Mock
}

func (m *MockSignatureVerifier) VerifyCheckoutSignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

func (m *MockSignatureVerifier) VerifyWebhookSignature(body []byte, signature string) bool {
	args := m.Called(body, signature)
	return args.Bool(0)
}
