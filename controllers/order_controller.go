package controllers

import (
	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/gateway"
	"github.com/ecomall/ecomall-backend/models"
	"github.com/ecomall/ecomall-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderItemRequest is one input line of a new order
type OrderItemRequest struct {
	ItemID   uint        `json:"item_id" binding:"required"`
	Quantity int         `json:"quantity"`
	Price    utils.Money `json:"price"`
}

// CreateOrderRequest represents the create-order request body
type CreateOrderRequest struct {
	UserID      uint               `json:"user_id" binding:"required"`
	Items       []OrderItemRequest `json:"items" binding:"required"`
	TotalAmount *utils.Money       `json:"total_amount" binding:"required"`
}

// CreateOrder persists an order with its line items, registers a gateway
// order for the total in paise and records the payment attempt.
//
// The local rows are committed before the gateway call. If the gateway call
// fails the order is marked failed instead of being left pending.
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid create-order request: %v", err)
		utils.BadRequest(c, "user_id, items and total_amount are required", err.Error())
		return
	}
	if len(req.Items) == 0 {
		utils.BadRequest(c, "items must not be empty", nil)
		return
	}
	totalAmount := req.TotalAmount.Float64()
	if totalAmount < 0 {
		utils.BadRequest(c, "total_amount must not be negative", nil)
		return
	}

	order := models.Order{
		UserID:     req.UserID,
		TotalPrice: totalAmount,
		Status:     models.OrderStatusPending,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.ServiceUnavailable(c, "Database unavailable", nil)
		return
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order for user %d: %v", req.UserID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	for _, line := range req.Items {
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		orderItem := models.OrderItem{
			OrderID:  order.ID,
			ItemID:   line.ItemID,
			Quantity: quantity,
			Price:    line.Price.Float64(),
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to create order item for order %d: %v", order.ID, err)
			utils.ServiceUnavailable(c, "Database unavailable", err.Error())
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit order %d: %v", order.ID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	utils.LogInfo("Created order %d for user %d, total %.2f", order.ID, req.UserID, totalAmount)

	receipt := uuid.New().String()
	rzOrder, err := gateway.Client.CreateOrder(utils.ToPaise(totalAmount), "INR", receipt)
	if err != nil {
		// Compensating action: the order was already committed, so mark it
		// failed rather than leaving it pending forever.
		utils.LogError("Gateway order creation failed for order %d: %v", order.ID, err)
		if dbErr := config.DB.Model(&order).Update("order_status", models.OrderStatusFailed).Error; dbErr != nil {
			utils.LogError("Failed to mark order %d failed after gateway error: %v", order.ID, dbErr)
		}
		utils.ServiceUnavailable(c, "Failed to create payment gateway order", err.Error())
		return
	}

	payment := models.Payment{
		OrderID:         order.ID,
		Provider:        "razorpay",
		ProviderOrderID: rzOrder.ID,
		Receipt:         receipt,
		Amount:          totalAmount,
		Currency:        "INR",
		Status:          models.PaymentStatusCreated,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to record payment for order %d: %v", order.ID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	utils.LogInfo("Created gateway order %s for order %d", rzOrder.ID, order.ID)
	utils.Created(c, "Order created successfully", gin.H{
		"order_id":          order.ID,
		"razorpay_order_id": rzOrder.ID,
		"amount":            totalAmount,
		"currency":          "INR",
	})
}
