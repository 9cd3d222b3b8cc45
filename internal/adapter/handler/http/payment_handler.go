package http

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/padhaihub/payment-service/internal/domain/model"
	"github.com/padhaihub/payment-service/internal/domain/repository"
	"github.com/padhaihub/payment-service/internal/usecase"
	"go.uber.org/zap"
)

// PaymentHandler serves order creation, verification and payment listings.
type PaymentHandler struct {
	orders       *usecase.OrderService
	verification *usecase.VerificationService
	listing      *usecase.ListingService
	logger       *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(
	orders *usecase.OrderService,
	verification *usecase.VerificationService,
	listing *usecase.ListingService,
	logger *zap.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		orders:       orders,
		verification: verification,
		listing:      listing,
		logger:       logger,
	}
}

// CreateOrderRequest is the purchase request body.
type CreateOrderRequest struct {
	StudentID    string `json:"student_id" validate:"required,uuid"`
	ResourceKind string `json:"resource_kind" validate:"required"`
	ResourceID   string `json:"resource_id" validate:"required,uuid"`
}

// CreateOrder opens a gateway order for a resource purchase.
// POST /api/v1/payments/orders
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "student_id, resource_kind and resource_id are required",
			"code":  "VALIDATION_ERROR",
		})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	resourceID, _ := uuid.Parse(req.ResourceID)

	result, err := h.orders.CreateOrder(c.Request().Context(), studentID, model.ResourceKind(req.ResourceKind), resourceID)
	if err != nil {
		h.logger.Warn("Order creation failed",
			zap.String("student_id", req.StudentID),
			zap.String("resource_kind", req.ResourceKind),
			zap.String("resource_id", req.ResourceID),
			zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// VerifyRequest carries the checkout result the gateway handed the client.
type VerifyRequest struct {
	OrderID   string `json:"gateway_order_id" validate:"required"`
	PaymentID string `json:"gateway_payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// Verify confirms a payment from the client side.
// POST /api/v1/payments/verify
func (h *PaymentHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Missing payment verification details",
			"code":  "VALIDATION_ERROR",
		})
	}

	result, err := h.verification.Verify(c.Request().Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// parseListFilters reads status/settled/page/limit query parameters.
func parseListFilters(c echo.Context) repository.ListFilters {
	filters := repository.ListFilters{Page: 1, Limit: 10}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page > 0 {
		filters.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		filters.Limit = limit
	}
	if status := c.QueryParam("status"); status != "" {
		s := model.PaymentStatus(status)
		filters.Status = &s
	}
	if settled := c.QueryParam("settled"); settled != "" {
		v := settled == "true"
		filters.IsSettled = &v
	}

	return filters
}

// GetStudentPayments lists a student's payment history.
// GET /api/v1/payments/student/:studentId
func (h *PaymentHandler) GetStudentPayments(c echo.Context) error {
	studentID, err := uuid.Parse(c.Param("studentId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid student id",
			"code":  "INVALID_ID",
		})
	}

	result, err := h.listing.StudentPayments(c.Request().Context(), studentID, parseListFilters(c))
	if err != nil {
		h.logger.Error("Failed to list student payments",
			zap.String("student_id", studentID.String()),
			zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetEducatorPayments lists an educator's sales with a revenue summary.
// GET /api/v1/payments/educator/:educatorId
func (h *PaymentHandler) GetEducatorPayments(c echo.Context) error {
	educatorID, err := uuid.Parse(c.Param("educatorId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid educator id",
			"code":  "INVALID_ID",
		})
	}

	result, err := h.listing.EducatorPayments(c.Request().Context(), educatorID, parseListFilters(c))
	if err != nil {
		h.logger.Error("Failed to list educator payments",
			zap.String("educator_id", educatorID.String()),
			zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
