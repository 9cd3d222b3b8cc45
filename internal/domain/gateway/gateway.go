package gateway

import "context"

// CreateOrderRequest asks the gateway to open an order. Amount is in the
// gateway's minor unit (paise); Notes are echoed back on webhooks for
// reconciliation.
type CreateOrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// CreateOrderResponse is the gateway's view of the opened order.
type CreateOrderResponse struct {
	OrderID  string
	Amount   int64
	Currency string
	Status   string
}

// Client is the payment gateway API surface this service consumes. It is
// injected into the services at startup; there is no package-level client.
type Client interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error)

	// KeyID is the public key the purchasing client needs to open the
	// gateway checkout for an order created by this service.
	KeyID() string
}

// SignatureVerifier checks the two gateway signature schemes: the checkout
// signature over "orderID|paymentID" and the webhook signature over the whole
// request body.
type SignatureVerifier interface {
	VerifyCheckoutSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}
