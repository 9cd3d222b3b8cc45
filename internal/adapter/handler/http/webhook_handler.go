package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/padhaihub/payment-service/internal/usecase"
	"go.uber.org/zap"
)

// signatureHeader carries the gateway's whole-body HMAC.
const signatureHeader = "X-Razorpay-Signature"

// WebhookHandler receives asynchronous gateway notifications. It answers
// quickly and only returns non-2xx for a bad signature or a storage failure,
// so business no-ops never trigger the gateway's retry storm.
type WebhookHandler struct {
	webhooks *usecase.WebhookService
	logger   *zap.Logger
}

// NewWebhookHandler creates a new WebhookHandler instance
func NewWebhookHandler(webhooks *usecase.WebhookService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhooks: webhooks,
		logger:   logger,
	}
}

// HandleWebhook processes one gateway notification.
// POST /webhook
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("Failed to read webhook body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Failed to read request body",
			"code":  "INVALID_REQUEST",
		})
	}

	signature := c.Request().Header.Get(signatureHeader)

	outcome, err := h.webhooks.HandleEvent(c.Request().Context(), body, signature)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"received": true,
		"outcome":  string(outcome),
	})
}
