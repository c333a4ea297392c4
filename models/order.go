package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusFailed    = "failed"
)

// orderTransitions is the allowed status transition table. Confirmed is
// terminal unless the force-override flag is enabled at the call site.
var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusPending, OrderStatusConfirmed, OrderStatusFailed},
	OrderStatusFailed:    {OrderStatusPending, OrderStatusConfirmed, OrderStatusFailed},
	OrderStatusConfirmed: {OrderStatusConfirmed},
}

// CanTransition reports whether an order may move from one status to another.
// Unknown source statuses are treated as open so legacy rows stay writable.
func CanTransition(from, to string) bool {
	allowed, ok := orderTransitions[from]
	if !ok {
		return true
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"order_id"`
	UserID          uint        `json:"user_id"`
	User            User        `gorm:"foreignKey:UserID" json:"-"`
	TotalPrice      float64     `json:"total_price"`
	Status          string      `gorm:"column:order_status;default:pending" json:"order_status"`
	BookedReference string      `json:"booked_reference,omitempty"`
	OrderedDate     time.Time   `gorm:"autoCreateTime" json:"ordered_date"`
	CreatedAt       time.Time   `json:"created_at"`
	OrderItems      []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payments        []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// OrderItem carries a quantity and a price snapshot taken at order creation.
// The snapshot is independent of the item's current selling price and is
// never reconciled against Order.TotalPrice.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"order_item_id"`
	OrderID  uint    `json:"order_id"`
	ItemID   uint    `json:"item_id"`
	Item     Item    `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Quantity int     `gorm:"default:1" json:"quantity"`
	Price    float64 `json:"price"`
}
