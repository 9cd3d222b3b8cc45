package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	domainErrors "github.com/padhaihub/payment-service/internal/domain/errors"
	"github.com/padhaihub/payment-service/internal/domain/gateway"
	"github.com/padhaihub/payment-service/internal/domain/model"
	"github.com/padhaihub/payment-service/internal/domain/repository"
	"github.com/padhaihub/payment-service/internal/usecase"
)

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		name            string
		amount          int64
		commission      int64
		educatorRevenue int64
	}{
		{"typical course fee", 1000, 50, 950},
		{"rounds half up", 1010, 51, 959},
		{"rounds down below half", 1009, 50, 959},
		{"small amount", 10, 1, 9},
		{"single unit", 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commission, revenue := usecase.SplitAmount(tt.amount)
			assert.Equal(t, tt.commission, commission)
			assert.Equal(t, tt.educatorRevenue, revenue)
			assert.Equal(t, tt.amount, commission+revenue)
		})
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	studentID := uuid.New()
	educatorID := uuid.New()
	resourceID := uuid.New()

	student := &model.Student{
		ID:           studentID,
		FirstName:    "Asha",
		LastName:     "Verma",
		Email:        "asha@example.com",
		MobileNumber: "9876543210",
	}

	t.Run("successful order creation", func(t *testing.T) {
		mockPayments := new(MockPaymentRepository)
		mockStudents := new(MockStudentRepository)
		mockResources := new(MockResourceResolver)
		mockGateway := new(MockGatewayClient)

		service := usecase.NewOrderService(mockPayments, mockStudents, mockResources, mockGateway, "INR", logger)

		mockStudents.On("GetByID", ctx, studentID).Return(student, nil)
		mockResources.On("Resolve", ctx, model.ResourceKindCourse, resourceID).
			Return(&repository.ResolvedResource{Price: 1000, EducatorID: educatorID}, nil)
		mockGateway.On("CreateOrder", ctx, mock.MatchedBy(func(req *gateway.CreateOrderRequest) bool {
			return req.Amount == 100000 && // paise
				req.Currency == "INR" &&
				req.Notes["studentId"] == studentID.String() &&
				req.Notes["educatorId"] == educatorID.String() &&
				req.Notes["resourceType"] == "course" &&
				req.Notes["resourceId"] == resourceID.String()
		})).Return(&gateway.CreateOrderResponse{OrderID: "order_MkpPpPJqJxd8Nk", Amount: 100000, Currency: "INR", Status: "created"}, nil)
		mockGateway.On("KeyID").Return("rzp_test_key")
		mockPayments.On("Create", ctx, mock.MatchedBy(func(p *model.Payment) bool {
			return p.GatewayOrderID == "order_MkpPpPJqJxd8Nk" &&
				p.Status == model.PaymentStatusCreated &&
				p.Amount == 1000 &&
				p.PlatformCommission == 50 &&
				p.EducatorRevenue == 950
		})).Return(nil)

		result, err := service.CreateOrder(ctx, studentID, model.ResourceKindCourse, resourceID)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "order_MkpPpPJqJxd8Nk", result.OrderID)
		assert.Equal(t, int64(1000), result.Amount)
		assert.Equal(t, "INR", result.Currency)
		assert.Equal(t, "rzp_test_key", result.KeyID)
		assert.Equal(t, educatorID, result.EducatorID)
		assert.Equal(t, "Asha Verma", result.StudentName)
		assert.Equal(t, "asha@example.com", result.StudentEmail)
		mockPayments.AssertExpectations(t)
		mockGateway.AssertExpectations(t)
	})

	t.Run("invalid resource kind", func(t *testing.T) {
		mockPayments := new(MockPaymentRepository)
		mockStudents := new(MockStudentRepository)
		mockResources := new(MockResourceResolver)
		mockGateway := new(MockGatewayClient)

		service := usecase.NewOrderService(mockPayments, mockStudents, mockResources, mockGateway, "INR", logger)

		result, err := service.CreateOrder(ctx, studentID, model.ResourceKind("podcast"), resourceID)

		assert.Error(t, err)
		assert.Nil(t, result)
		var valErr *domainErrors.ValidationError
		assert.ErrorAs(t, err, &valErr)
		mockStudents.AssertNotCalled(t, "GetByID")
	})

	t.Run("student not found", func(t *testing.T) {
		mockPayments := new(MockPaymentRepository)
		mockStudents := new(MockStudentRepository)
		mockResources := new(MockResourceResolver)
		mockGateway := new(MockGatewayClient)

		service := usecase.NewOrderService(mockPayments, mockStudents, mockResources, mockGateway, "INR", logger)

		mockStudents.On("GetByID", ctx, studentID).Return(nil, nil)

		result, err := service.CreateOrder(ctx, studentID, model.ResourceKindCourse, resourceID)

		assert.Error(t, err)
		assert.Nil(t, result)
		var nfErr *domainErrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "student", nfErr.Entity)
	})

	t.Run("resource not found", func(t *testing.T) {
		mockPayments := new(MockPaymentRepository)
		mockStudents := new(MockStudentRepository)
		mockResources := new(MockResourceResolver)
		mockGateway := new(MockGatewayClient)

		service := usecase.NewOrderService(mockPayments, mockStudents, mockResources, mockGateway, "INR", logger)

		mockStudents.On("GetByID", ctx, studentID).Return(student, nil)
		mockResources.On("Resolve", ctx, model.ResourceKindTestSeries, resourceID).Return(nil, nil)

		result, err := service.CreateOrder(ctx, studentID, model.ResourceKindTestSeries, resourceID)

		assert.Error(t, err)
		assert.Nil(t, result)
		var nfErr *domainErrors.NotFoundError
		assert.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "resource", nfErr.Entity)
	})

	t.Run("free resource is rejected", func(t *testing.T) {
		mockPayments := new(MockPaymentRepository)
		mockStudents := new(MockStudentRepository)
		mockResources := new(MockResourceResolver)
		mockGateway := new(MockGatewayClient)

		service := usecase.NewOrderService(mockPayments, mockStudents, mockResources, mockGateway, "INR", logger)

		mockStudents.On("GetByID", ctx, studentID).Return(student, nil)
		mockResources.On("Resolve", ctx, model.ResourceKindWebinar, resourceID).
			Return(&repository.ResolvedResource{Price: 0, EducatorID: educatorID}, nil)

		result, err := service.CreateOrder(ctx, studentID, model.ResourceKindWebinar, resourceID)

		assert.Error(t, err)
		assert.Nil(t, result)
		var priceErr *domainErrors.InvalidPriceError
		assert.ErrorAs(t, err, &priceErr)
		mockGateway.AssertNotCalled(t, "CreateOrder")
	})

	t.Run("gateway failure persists nothing", func(t *testing.T) {
		mockPayments := new(MockPaymentRepository)
		mockStudents := new(MockStudentRepository)
		mockResources := new(MockResourceResolver)
		mockGateway := new(MockGatewayClient)

		service := usecase.NewOrderService(mockPayments, mockStudents, mockResources, mockGateway, "INR", logger)

		mockStudents.On("GetByID", ctx, studentID).Return(student, nil)
		mockResources.On("Resolve", ctx, model.ResourceKindCourse, resourceID).
			Return(&repository.ResolvedResource{Price: 1000, EducatorID: educatorID}, nil)
		mockGateway.On("CreateOrder", ctx, mock.Anything).
			Return(nil, &domainErrors.GatewayError{Code: "BAD_REQUEST_ERROR", Message: "order amount exceeds limit"})

		result, err := service.CreateOrder(ctx, studentID, model.ResourceKindCourse, resourceID)

		assert.Error(t, err)
		assert.Nil(t, result)
		var gwErr *domainErrors.GatewayError
		assert.ErrorAs(t, err, &gwErr)
		mockPayments.AssertNotCalled(t, "Create")
	})
}
