package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/ecomall/ecomall-backend/config"
	razorpay "github.com/razorpay/razorpay-go"
)

// Client is the process-wide payment gateway handle. It is set once at
// startup and is safe for concurrent use; tests swap in a mock.
var Client Gateway

// OrderRef is the provider-side order created before the user pays
type OrderRef struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// Gateway wraps the payment provider operations the storefront needs
type Gateway interface {
	// CreateOrder registers an order with the provider. Amount is in minor
	// units (paise) with payment capture enabled.
	CreateOrder(amountPaise int64, currency, receipt string) (*OrderRef, error)
	// VerifyPaymentSignature checks the checkout callback signature over
	// "order_id|payment_id" using the key secret.
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	// VerifyWebhookSignature checks the webhook signature over the raw body
	// using the webhook secret.
	VerifyWebhookSignature(body []byte, signature string) bool
}

type razorpayGateway struct {
	client        *razorpay.Client
	keySecret     string
	webhookSecret string
}

// Init builds the Razorpay-backed gateway from configuration
func Init(cfg *config.Config) {
	Client = &razorpayGateway{
		client:        razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret),
		keySecret:     cfg.RazorpaySecret,
		webhookSecret: cfg.RazorpayWebhookSecret,
	}
}

func (g *razorpayGateway) CreateOrder(amountPaise int64, currency, receipt string) (*OrderRef, error) {
	orderData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	rzOrder, err := g.client.Order.Create(orderData, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	return &OrderRef{
		ID:       fmt.Sprintf("%v", rzOrder["id"]),
		Amount:   amountPaise,
		Currency: currency,
		Receipt:  receipt,
	}, nil
}

func (g *razorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return verifyHMAC([]byte(orderID+"|"+paymentID), g.keySecret, signature)
}

func (g *razorpayGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	if g.webhookSecret == "" {
		return false
	}
	return verifyHMAC(body, g.webhookSecret, signature)
}

func verifyHMAC(data []byte, secret, signature string) bool {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignPayment computes the signature the provider would send for the given
// order and payment ids. Used by tests and the simulator tooling.
func SignPayment(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}
