package razorpay

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domainErrors "github.com/padhaihub/payment-service/internal/domain/errors"
	"github.com/padhaihub/payment-service/internal/domain/gateway"
	"go.uber.org/zap"
)

const (
	apiBaseURL = "https://api.razorpay.com"
	apiVersion = "v1"
)

// Client talks to the Razorpay REST API. Requests carry the caller's context
// and a fixed timeout; failed requests are not retried here — retry policy
// belongs to the caller.
type Client struct {
	keyID     string
	keySecret string
	client    *http.Client
	logger    *zap.Logger
}

// NewClient creates a Razorpay API client.
func NewClient(keyID, keySecret string, logger *zap.Logger) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}
}

// KeyID returns the public key for the checkout widget.
func (c *Client) KeyID() string {
	return c.keyID
}

// CreateOrder opens an order with the gateway.
// POST /v1/orders
func (c *Client) CreateOrder(ctx context.Context, req *gateway.CreateOrderRequest) (*gateway.CreateOrderResponse, error) {
	body := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}
	if len(req.Notes) > 0 {
		body["notes"] = req.Notes
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, &domainErrors.GatewayError{
			Code:    "MARSHAL_ERROR",
			Message: "Failed to prepare request",
			Details: err.Error(),
		}
	}

	url := fmt.Sprintf("%s/%s/orders", apiBaseURL, apiVersion)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, &domainErrors.GatewayError{
			Code:    "REQUEST_ERROR",
			Message: "Failed to create request",
			Details: err.Error(),
		}
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.keyID + ":" + c.keySecret))
	httpReq.Header.Set("Authorization", "Basic "+auth)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Error("Razorpay: order create request failed", zap.Error(err))
		return nil, &domainErrors.GatewayError{
			Code:    "API_ERROR",
			Message: "Razorpay API request failed",
			Details: err.Error(),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domainErrors.GatewayError{
			Code:    "RESPONSE_ERROR",
			Message: "Failed to read response",
			Details: err.Error(),
		}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Razorpay: order create failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(respBody)))

		code, message := parseAPIError(respBody)
		return nil, &domainErrors.GatewayError{
			Code:    code,
			Message: message,
			Details: string(respBody),
		}
	}

	var orderResp struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
		Status   string `json:"status"`
	}
	if err := json.Unmarshal(respBody, &orderResp); err != nil {
		return nil, &domainErrors.GatewayError{
			Code:    "PARSE_ERROR",
			Message: "Failed to parse response",
			Details: err.Error(),
		}
	}

	c.logger.Info("Razorpay: order created",
		zap.String("order_id", orderResp.ID),
		zap.Int64("amount", orderResp.Amount),
		zap.String("currency", orderResp.Currency))

	return &gateway.CreateOrderResponse{
		OrderID:  orderResp.ID,
		Amount:   orderResp.Amount,
		Currency: orderResp.Currency,
		Status:   orderResp.Status,
	}, nil
}

// parseAPIError extracts the error envelope Razorpay wraps failures in.
func parseAPIError(body []byte) (code, message string) {
	var envelope struct {
		Error struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "UNKNOWN", "Unrecognized gateway error"
	}
	return envelope.Error.Code, envelope.Error.Description
}
