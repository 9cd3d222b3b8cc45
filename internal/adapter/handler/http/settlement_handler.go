package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/padhaihub/payment-service/internal/usecase"
	"go.uber.org/zap"
)

// SettlementHandler serves the operational payout endpoint.
type SettlementHandler struct {
	settlements *usecase.SettlementService
	logger      *zap.Logger
}

// NewSettlementHandler creates a new SettlementHandler instance
func NewSettlementHandler(settlements *usecase.SettlementService, logger *zap.Logger) *SettlementHandler {
	return &SettlementHandler{
		settlements: settlements,
		logger:      logger,
	}
}

// Settle marks a successful payment as paid out to its educator.
// POST /api/v1/payments/:id/settle
func (h *SettlementHandler) Settle(c echo.Context) error {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid payment id",
			"code":  "INVALID_ID",
		})
	}

	if err := h.settlements.Settle(c.Request().Context(), paymentID); err != nil {
		h.logger.Warn("Settlement refused",
			zap.Int64("payment_id", paymentID),
			zap.Error(err))
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"settled": true,
	})
}
