package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Verifier implements the gateway's two signature schemes: the checkout
// signature signs "orderID|paymentID" under the key secret, the webhook
// signature signs the whole request body under the webhook secret. Both are
// hex-encoded HMAC-SHA256 and compared in constant time.
type Verifier struct {
	keySecret     string
	webhookSecret string
}

// NewVerifier creates a signature verifier for both schemes.
func NewVerifier(keySecret, webhookSecret string) *Verifier {
	return &Verifier{
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}
}

// VerifyCheckoutSignature checks the signature the checkout widget hands the
// purchasing client after payment.
func (v *Verifier) VerifyCheckoutSignature(orderID, paymentID, signature string) bool {
	expected := computeHMAC([]byte(orderID+"|"+paymentID), v.keySecret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against the
// raw notification body.
func (v *Verifier) VerifyWebhookSignature(body []byte, signature string) bool {
	expected := computeHMAC(body, v.webhookSecret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func computeHMAC(message []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}
