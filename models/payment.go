package models

import (
	"time"
)

// Payment status constants
const (
	PaymentStatusCreated    = "created"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusCaptured   = "captured"
	PaymentStatusFailed     = "failed"
	PaymentStatusRefunded   = "refunded"
	PaymentStatusPending    = "pending"
)

// Payment is one gateway attempt for an order. An order may accumulate
// several attempts but at most one should end captured. ProviderOrderID and
// Receipt are unique per attempt so callback lookups are never ambiguous.
type Payment struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	OrderID           uint      `json:"order_id"`
	Order             Order     `gorm:"foreignKey:OrderID" json:"-"`
	Provider          string    `gorm:"default:razorpay" json:"provider"`
	ProviderOrderID   string    `gorm:"uniqueIndex" json:"provider_order_id"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	Receipt           string    `gorm:"uniqueIndex" json:"receipt"`
	Amount            float64   `json:"amount"`
	Currency          string    `gorm:"default:INR" json:"currency"`
	Status            string    `json:"status"`
	Method            string    `json:"method,omitempty"`
	UpiVpa            string    `json:"upi_vpa,omitempty"`
	CardLast4         string    `json:"card_last4,omitempty"`
	CardNetwork       string    `json:"card_network,omitempty"`
	Bank              string    `json:"bank,omitempty"`
	Captured          bool      `gorm:"default:false" json:"captured"`
	ErrorCode         string    `json:"error_code,omitempty"`
	ErrorDescription  string    `json:"error_description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RazorpayWebhookLog is an audit record of a provider-pushed event. Rows are
// written by the webhook endpoint and never read back into the payment flow.
type RazorpayWebhookLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	EventType   string    `json:"event_type"`
	PayloadText string    `gorm:"type:text" json:"payload_text"`
	Headers     string    `gorm:"type:text" json:"headers,omitempty"`
	Signature   string    `json:"signature,omitempty"`
	Verified    bool      `gorm:"default:false" json:"verified"`
	Processed   bool      `gorm:"default:false" json:"processed"`
	CreatedAt   time.Time `json:"created_at"`
}
