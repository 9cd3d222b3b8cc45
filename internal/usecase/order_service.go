package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	domainErrors "github.com/padhaihub/payment-service/internal/domain/errors"
	"github.com/padhaihub/payment-service/internal/domain/gateway"
	"github.com/padhaihub/payment-service/internal/domain/model"
	"github.com/padhaihub/payment-service/internal/domain/repository"
	"go.uber.org/zap"
)

// commissionRate is the platform's cut of every sale.
var commissionRate = decimal.NewFromFloat(0.05)

// SplitAmount computes the platform commission and educator revenue for an
// amount in whole currency units. Commission is rounded half away from zero;
// the educator gets the exact remainder, so the parts always sum to amount.
func SplitAmount(amount int64) (commission, educatorRevenue int64) {
	commission = decimal.NewFromInt(amount).Mul(commissionRate).Round(0).IntPart()
	educatorRevenue = amount - commission
	return commission, educatorRevenue
}

// OrderService opens gateway orders and persists payment intents.
type OrderService struct {
	payments  repository.PaymentRepository
	students  repository.StudentRepository
	resources repository.ResourceResolver
	gateway   gateway.Client
	currency  string
	logger    *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	payments repository.PaymentRepository,
	students repository.StudentRepository,
	resources repository.ResourceResolver,
	gatewayClient gateway.Client,
	currency string,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		payments:  payments,
		students:  students,
		resources: resources,
		gateway:   gatewayClient,
		currency:  currency,
		logger:    logger,
	}
}

// CreateOrderResult carries everything the purchasing client needs to open
// the gateway checkout.
type CreateOrderResult struct {
	PaymentID     int64     `json:"payment_id"`
	OrderID       string    `json:"order_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	KeyID         string    `json:"key_id"`
	EducatorID    uuid.UUID `json:"educator_id"`
	StudentName   string    `json:"student_name"`
	StudentEmail  string    `json:"student_email"`
	StudentMobile string    `json:"student_mobile"`
}

// CreateOrder validates the purchase, opens a gateway order and persists the
// intent in state created. Nothing is persisted when the gateway call fails,
// so the caller may retry safely.
func (s *OrderService) CreateOrder(ctx context.Context, studentID uuid.UUID, kind model.ResourceKind, resourceID uuid.UUID) (*CreateOrderResult, error) {
	if !kind.Valid() {
		return nil, domainErrors.NewValidationError("invalid resource kind: %s", kind)
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, domainErrors.NewNotFoundError("student", studentID.String())
	}

	resolved, err := s.resources.Resolve(ctx, kind, resourceID)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, domainErrors.NewNotFoundError("resource", resourceID.String())
	}

	if resolved.Price <= 0 {
		return nil, &domainErrors.InvalidPriceError{Price: resolved.Price}
	}

	commission, educatorRevenue := SplitAmount(resolved.Price)

	// Gateway amounts are in paise; notes are echoed back on webhooks for
	// reconciliation.
	order, err := s.gateway.CreateOrder(ctx, &gateway.CreateOrderRequest{
		Amount:   resolved.Price * 100,
		Currency: s.currency,
		Receipt:  fmt.Sprintf("rcpt_%s", uuid.NewString()),
		Notes: map[string]string{
			"studentId":    studentID.String(),
			"educatorId":   resolved.EducatorID.String(),
			"resourceType": string(kind),
			"resourceId":   resourceID.String(),
		},
	})
	if err != nil {
		s.logger.Error("Failed to create gateway order",
			zap.String("student_id", studentID.String()),
			zap.String("resource_kind", string(kind)),
			zap.String("resource_id", resourceID.String()),
			zap.Error(err))
		return nil, err
	}

	payment := &model.Payment{
		GatewayOrderID:     order.OrderID,
		StudentID:          studentID,
		EducatorID:         resolved.EducatorID,
		Amount:             resolved.Price,
		PlatformCommission: commission,
		EducatorRevenue:    educatorRevenue,
		Status:             model.PaymentStatusCreated,
		ResourceKind:       kind,
		ResourceID:         resourceID,
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment order created",
		zap.Int64("payment_id", payment.ID),
		zap.String("gateway_order_id", order.OrderID),
		zap.Int64("amount", resolved.Price),
		zap.Int64("commission", commission),
		zap.Int64("educator_revenue", educatorRevenue))

	return &CreateOrderResult{
		PaymentID:     payment.ID,
		OrderID:       order.OrderID,
		Amount:        resolved.Price,
		Currency:      s.currency,
		KeyID:         s.gateway.KeyID(),
		EducatorID:    resolved.EducatorID,
		StudentName:   fmt.Sprintf("%s %s", student.FirstName, student.LastName),
		StudentEmail:  student.Email,
		StudentMobile: student.MobileNumber,
	}, nil
}
