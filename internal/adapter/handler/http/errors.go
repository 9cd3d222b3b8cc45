package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	domainErrors "github.com/padhaihub/payment-service/internal/domain/errors"
)

// writeError maps the domain error taxonomy onto HTTP responses. Gateway
// failures are the upstream's fault (502); anything unrecognized is ours
// (500).
func writeError(c echo.Context, err error) error {
	var validationErr *domainErrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": validationErr.Message,
			"code":  "VALIDATION_ERROR",
		})
	}

	var notFoundErr *domainErrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": notFoundErr.Error(),
			"code":  "NOT_FOUND",
		})
	}

	var priceErr *domainErrors.InvalidPriceError
	if errors.As(err, &priceErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid price for this resource",
			"code":  "INVALID_PRICE",
		})
	}

	var signatureErr *domainErrors.SignatureMismatchError
	if errors.As(err, &signatureErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Signature verification failed",
			"code":  "SIGNATURE_MISMATCH",
		})
	}

	var settlementErr *domainErrors.SettlementConflictError
	if errors.As(err, &settlementErr) {
		return c.JSON(http.StatusConflict, echo.Map{
			"error": settlementErr.Error(),
			"code":  "SETTLEMENT_CONFLICT",
		})
	}

	var gatewayErr *domainErrors.GatewayError
	if errors.As(err, &gatewayErr) {
		return c.JSON(http.StatusBadGateway, echo.Map{
			"error": "Payment gateway request failed",
			"code":  "GATEWAY_ERROR",
		})
	}

	return c.JSON(http.StatusInternalServerError, echo.Map{
		"error": "Internal server error",
		"code":  "INTERNAL_ERROR",
	})
}
