package controllers

import (
	"encoding/json"
	"fmt"

	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/gateway"
	"github.com/ecomall/ecomall-backend/models"
	"github.com/ecomall/ecomall-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateRazorpayOrder registers a fresh gateway order for an order that
// already exists, e.g. to retry after a failed attempt. Every call records a
// new payment attempt with its own receipt; nothing is deduplicated.
func CreateRazorpayOrder(c *gin.Context) {
	utils.LogInfo("CreateRazorpayOrder called")

	var req struct {
		OrderID uint         `json:"order_id" binding:"required"`
		Amount  *utils.Money `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid create-razorpay-order request: %v", err)
		utils.BadRequest(c, "order_id and amount are required", err.Error())
		return
	}
	amount := req.Amount.Float64()
	if amount < 0 {
		utils.BadRequest(c, "amount must not be negative", nil)
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		utils.LogError("Order not found: %d", req.OrderID)
		utils.NotFound(c, "Order not found")
		return
	}

	receipt := uuid.New().String()
	rzOrder, err := gateway.Client.CreateOrder(utils.ToPaise(amount), "INR", receipt)
	if err != nil {
		utils.LogError("Gateway order creation failed for order %d: %v", order.ID, err)
		utils.ServiceUnavailable(c, "Failed to create payment gateway order", err.Error())
		return
	}

	payment := models.Payment{
		OrderID:         order.ID,
		Provider:        "razorpay",
		ProviderOrderID: rzOrder.ID,
		Receipt:         receipt,
		Amount:          amount,
		Currency:        "INR",
		Status:          models.PaymentStatusCreated,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to record payment for order %d: %v", order.ID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	utils.LogInfo("Created gateway order %s for existing order %d", rzOrder.ID, order.ID)
	utils.Success(c, "Razorpay order created successfully", gin.H{
		"order_id":          order.ID,
		"razorpay_order_id": rzOrder.ID,
		"amount":            amount,
		"currency":          "INR",
	})
}

// VerifyPayment checks the checkout callback signature and, on success,
// captures the payment and confirms its order. A tampered signature never
// mutates state; repeated valid calls keep captured/confirmed stable.
func VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verify-payment request: %v", err)
		utils.BadRequest(c, "Missing payment details", err.Error())
		return
	}

	if !gateway.Client.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		utils.LogError("Signature mismatch for gateway order %s", req.RazorpayOrderID)
		utils.BadRequest(c, "Payment verification failed", nil)
		return
	}
	utils.LogInfo("Signature verified for gateway order %s", req.RazorpayOrderID)

	// ProviderOrderID is unique per attempt, so this lookup is unambiguous
	// even when an order has accumulated several attempts.
	var payment models.Payment
	if err := config.DB.Where("provider_order_id = ?", req.RazorpayOrderID).First(&payment).Error; err != nil {
		utils.LogError("Payment record not found for gateway order %s", req.RazorpayOrderID)
		utils.NotFound(c, "Payment record not found")
		return
	}

	var order models.Order
	if err := config.DB.First(&order, payment.OrderID).Error; err != nil {
		utils.LogError("Order %d missing for payment %d", payment.OrderID, payment.ID)
		utils.NotFound(c, "Order not found")
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.ServiceUnavailable(c, "Database unavailable", nil)
		return
	}
	if err := tx.Model(&payment).Updates(map[string]interface{}{
		"provider_payment_id": req.RazorpayPaymentID,
		"status":              models.PaymentStatusCaptured,
		"captured":            true,
	}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to capture payment %d: %v", payment.ID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	if err := tx.Model(&order).Update("order_status", models.OrderStatusConfirmed).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to confirm order %d: %v", order.ID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit capture for order %d: %v", order.ID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	utils.LogInfo("Captured payment %d, confirmed order %d", payment.ID, order.ID)

	var user models.User
	if err := config.DB.First(&user, order.UserID).Error; err == nil {
		go func(email string, orderID uint, amount float64) {
			if err := utils.SendOrderConfirmation(email, orderID, amount); err != nil {
				utils.LogError("Order confirmation email failed for order %d: %v", orderID, err)
			}
		}(user.Email, order.ID, payment.Amount)
	}

	utils.Success(c, "Payment verified successfully", gin.H{
		"order_id":   order.ID,
		"payment_id": req.RazorpayPaymentID,
		"status":     models.PaymentStatusCaptured,
	})
}

// forceOrderStatus is shared by the pending/failed endpoints. It moves the
// order and every payment attempt under it to the given status. Transitions
// out of confirmed are rejected unless the override flag is configured.
func forceOrderStatus(c *gin.Context, status string) {
	var req struct {
		OrderID uint `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment-%s request: %v", status, err)
		utils.BadRequest(c, "order_id is required", err.Error())
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		utils.LogError("Order not found: %d", req.OrderID)
		utils.NotFound(c, "Order not found")
		return
	}

	if !models.CanTransition(order.Status, status) && !config.App.AllowStatusOverride {
		utils.LogError("Rejected %s -> %s transition for order %d", order.Status, status, order.ID)
		utils.Conflict(c, fmt.Sprintf("Order is already %s", order.Status), nil)
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.ServiceUnavailable(c, "Database unavailable", nil)
		return
	}
	if err := tx.Model(&order).Update("order_status", status).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update order %d: %v", order.ID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	if err := tx.Model(&models.Payment{}).Where("order_id = ?", order.ID).Update("status", status).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update payments for order %d: %v", order.ID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit status change for order %d: %v", order.ID, err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	utils.LogInfo("Order %d and its payments marked %s", order.ID, status)
	utils.Success(c, fmt.Sprintf("Payment for order %d is %s", order.ID, status), gin.H{
		"order_id": order.ID,
		"status":   status,
	})
}

// PaymentPending marks an order and its payments pending
func PaymentPending(c *gin.Context) {
	utils.LogInfo("PaymentPending called")
	forceOrderStatus(c, models.OrderStatusPending)
}

// PaymentFailed marks an order and its payments failed
func PaymentFailed(c *gin.Context) {
	utils.LogInfo("PaymentFailed called")
	forceOrderStatus(c, models.OrderStatusFailed)
}

// RazorpayWebhook persists provider-pushed events verbatim. Events are
// audited, never acted on; the checkout callback remains the source of truth.
func RazorpayWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		utils.BadRequest(c, "Invalid webhook payload", nil)
		return
	}
	signature := c.GetHeader("X-Razorpay-Signature")

	var event struct {
		Event string `json:"event"`
	}
	_ = json.Unmarshal(body, &event)

	headers, _ := json.Marshal(c.Request.Header)

	logEntry := models.RazorpayWebhookLog{
		EventType:   event.Event,
		PayloadText: string(body),
		Headers:     string(headers),
		Signature:   signature,
		Verified:    gateway.Client.VerifyWebhookSignature(body, signature),
		Processed:   false,
	}
	if err := config.DB.Create(&logEntry).Error; err != nil {
		utils.LogError("Failed to persist webhook event: %v", err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	utils.LogInfo("Webhook event %q logged (verified=%t)", event.Event, logEntry.Verified)
	utils.Success(c, "Webhook logged", gin.H{"verified": logEntry.Verified})
}
