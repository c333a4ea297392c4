package controllers_test

import (
	"net/http"
	"testing"

	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/gateway"
	"github.com/ecomall/ecomall-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	router, db, mock := setupTest(t)
	user := seedUser(t, db)
	item := seedItem(t, db, "Bamboo Toothbrush", 50)

	w := doRequest(router, http.MethodPost, "/create-order", map[string]interface{}{
		"user_id":      user.ID,
		"items":        []map[string]interface{}{{"item_id": item.ID, "quantity": 2, "price": "50.00"}},
		"total_amount": "100.00",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := dataField(t, w)
	assert.Equal(t, "order_mock001", data["razorpay_order_id"])
	assert.Equal(t, 100.0, data["amount"])
	assert.Equal(t, "INR", data["currency"])

	// Gateway is called in minor units.
	require.Len(t, mock.created, 1)
	assert.Equal(t, int64(10000), mock.created[0].Amount)
	assert.Equal(t, "INR", mock.created[0].Currency)
	assert.NotEmpty(t, mock.created[0].Receipt)

	var order models.Order
	require.NoError(t, db.Preload("OrderItems").Preload("Payments").First(&order).Error)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 100.0, order.TotalPrice)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 2, order.OrderItems[0].Quantity)
	assert.Equal(t, 50.0, order.OrderItems[0].Price)
	require.Len(t, order.Payments, 1)
	assert.Equal(t, models.PaymentStatusCreated, order.Payments[0].Status)
	assert.Equal(t, 100.0, order.Payments[0].Amount)
	assert.Equal(t, "order_mock001", order.Payments[0].ProviderOrderID)
}

func TestCreateOrderStoresTotalIndependentOfLines(t *testing.T) {
	router, db, _ := setupTest(t)
	user := seedUser(t, db)
	item := seedItem(t, db, "Jute Bag", 60)

	// Line total (120) deliberately disagrees with total_amount (99.50);
	// both are stored as provided.
	w := doRequest(router, http.MethodPost, "/create-order", map[string]interface{}{
		"user_id":      user.ID,
		"items":        []map[string]interface{}{{"item_id": item.ID, "quantity": 2, "price": "60.00"}},
		"total_amount": 99.50,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.Order
	require.NoError(t, db.Preload("OrderItems").First(&order).Error)
	assert.Equal(t, 99.50, order.TotalPrice)
	assert.Equal(t, 60.0, order.OrderItems[0].Price)
	assert.Equal(t, 2, order.OrderItems[0].Quantity)
}

func TestCreateOrderDefaults(t *testing.T) {
	router, db, _ := setupTest(t)
	user := seedUser(t, db)
	item := seedItem(t, db, "Seed Paper", 10)

	// Quantity and price omitted: quantity defaults to 1, price to 0.
	w := doRequest(router, http.MethodPost, "/create-order", map[string]interface{}{
		"user_id":      user.ID,
		"items":        []map[string]interface{}{{"item_id": item.ID}},
		"total_amount": "10",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var line models.OrderItem
	require.NoError(t, db.First(&line).Error)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 0.0, line.Price)
}

func TestCreateOrderValidation(t *testing.T) {
	router, db, _ := setupTest(t)
	user := seedUser(t, db)

	w := doRequest(router, http.MethodPost, "/create-order", map[string]interface{}{
		"user_id":      user.ID,
		"items":        []map[string]interface{}{},
		"total_amount": "10",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/create-order", map[string]interface{}{
		"user_id":      user.ID,
		"items":        []map[string]interface{}{{"item_id": 1}},
		"total_amount": "not-a-number",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPost, "/create-order", map[string]interface{}{
		"user_id":      user.ID,
		"items":        []map[string]interface{}{{"item_id": 1}},
		"total_amount": "-5",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderGatewayFailureMarksOrderFailed(t *testing.T) {
	router, db, mock := setupTest(t)
	mock.failCreate = true
	user := seedUser(t, db)
	item := seedItem(t, db, "Cork Coaster", 25)

	w := doRequest(router, http.MethodPost, "/create-order", map[string]interface{}{
		"user_id":      user.ID,
		"items":        []map[string]interface{}{{"item_id": item.ID, "quantity": 1, "price": "25.00"}},
		"total_amount": "25.00",
	}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// The committed order is compensated to failed, not left pending.
	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, models.OrderStatusFailed, order.Status)

	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Equal(t, int64(0), paymentCount)
}

func TestCreateRazorpayOrderForExistingOrder(t *testing.T) {
	router, db, mock := setupTest(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, 80, models.OrderStatusPending)
	seedPayment(t, db, order.ID, "order_prior", models.PaymentStatusCreated, 80)

	w := doRequest(router, http.MethodPost, "/create-razorpay-order", map[string]interface{}{
		"order_id": order.ID,
		"amount":   "80.00",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, mock.created, 1)
	assert.Equal(t, int64(8000), mock.created[0].Amount)

	// Retries accumulate payment attempts; nothing is deduplicated.
	var payments []models.Payment
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&payments).Error)
	assert.Len(t, payments, 2)
	assert.NotEqual(t, payments[0].Receipt, payments[1].Receipt)
}

func TestCreateRazorpayOrderUnknownOrder(t *testing.T) {
	router, _, _ := setupTest(t)
	w := doRequest(router, http.MethodPost, "/create-razorpay-order", map[string]interface{}{
		"order_id": 9999,
		"amount":   "80.00",
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyPaymentTamperedSignature(t *testing.T) {
	router, db, _ := setupTest(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, 100, models.OrderStatusPending)
	payment := seedPayment(t, db, order.ID, "order_mock777", models.PaymentStatusCreated, 100)

	w := doRequest(router, http.MethodPost, "/verify-payment", map[string]interface{}{
		"razorpay_order_id":   "order_mock777",
		"razorpay_payment_id": "pay_123",
		"razorpay_signature":  "tampered",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Payment verification failed")

	// Rejection never mutates state.
	var freshPayment models.Payment
	require.NoError(t, db.First(&freshPayment, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusCreated, freshPayment.Status)
	assert.False(t, freshPayment.Captured)
	assert.Empty(t, freshPayment.ProviderPaymentID)

	var freshOrder models.Order
	require.NoError(t, db.First(&freshOrder, order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, freshOrder.Status)
}

func TestVerifyPaymentSuccessAndIdempotentRepeat(t *testing.T) {
	router, db, _ := setupTest(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, 100, models.OrderStatusPending)
	payment := seedPayment(t, db, order.ID, "order_mock778", models.PaymentStatusCreated, 100)

	body := map[string]interface{}{
		"razorpay_order_id":   "order_mock778",
		"razorpay_payment_id": "pay_456",
		"razorpay_signature":  gateway.SignPayment("order_mock778", "pay_456", testGatewaySecret),
	}

	w := doRequest(router, http.MethodPost, "/verify-payment", body, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := dataField(t, w)
	assert.Equal(t, "pay_456", data["payment_id"])
	assert.Equal(t, models.PaymentStatusCaptured, data["status"])

	var freshPayment models.Payment
	require.NoError(t, db.First(&freshPayment, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusCaptured, freshPayment.Status)
	assert.True(t, freshPayment.Captured)
	assert.Equal(t, "pay_456", freshPayment.ProviderPaymentID)

	var freshOrder models.Order
	require.NoError(t, db.First(&freshOrder, order.ID).Error)
	assert.Equal(t, models.OrderStatusConfirmed, freshOrder.Status)

	// Repeating the same valid callback keeps state stable.
	w = doRequest(router, http.MethodPost, "/verify-payment", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.First(&freshPayment, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusCaptured, freshPayment.Status)
	require.NoError(t, db.First(&freshOrder, order.ID).Error)
	assert.Equal(t, models.OrderStatusConfirmed, freshOrder.Status)
}

func TestVerifyPaymentUnknownGatewayOrder(t *testing.T) {
	router, _, _ := setupTest(t)
	w := doRequest(router, http.MethodPost, "/verify-payment", map[string]interface{}{
		"razorpay_order_id":   "order_unknown",
		"razorpay_payment_id": "pay_9",
		"razorpay_signature":  gateway.SignPayment("order_unknown", "pay_9", testGatewaySecret),
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Payment record not found")
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	router, _, _ := setupTest(t)
	w := doRequest(router, http.MethodPost, "/verify-payment", map[string]interface{}{
		"razorpay_order_id": "order_x",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentFailedGuardRejectsConfirmedOrder(t *testing.T) {
	router, db, _ := setupTest(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, 100, models.OrderStatusConfirmed)
	payment := seedPayment(t, db, order.ID, "order_mock779", models.PaymentStatusCaptured, 100)

	w := doRequest(router, http.MethodPost, "/payment-failed", map[string]interface{}{
		"order_id": order.ID,
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	var freshOrder models.Order
	require.NoError(t, db.First(&freshOrder, order.ID).Error)
	assert.Equal(t, models.OrderStatusConfirmed, freshOrder.Status)
	var freshPayment models.Payment
	require.NoError(t, db.First(&freshPayment, payment.ID).Error)
	assert.Equal(t, models.PaymentStatusCaptured, freshPayment.Status)
}

func TestPaymentFailedOverrideBulkUpdatesAllPayments(t *testing.T) {
	router, db, _ := setupTest(t)
	config.App.AllowStatusOverride = true
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, 100, models.OrderStatusConfirmed)
	seedPayment(t, db, order.ID, "order_mock780", models.PaymentStatusCaptured, 100)
	seedPayment(t, db, order.ID, "order_mock781", models.PaymentStatusCreated, 100)

	w := doRequest(router, http.MethodPost, "/payment-failed", map[string]interface{}{
		"order_id": order.ID,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Every attempt under the order is overwritten, captured ones included.
	var payments []models.Payment
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&payments).Error)
	require.Len(t, payments, 2)
	for _, p := range payments {
		assert.Equal(t, models.PaymentStatusFailed, p.Status)
	}

	var freshOrder models.Order
	require.NoError(t, db.First(&freshOrder, order.ID).Error)
	assert.Equal(t, models.OrderStatusFailed, freshOrder.Status)
}

func TestPaymentPendingIdempotentOnPendingOrder(t *testing.T) {
	router, db, _ := setupTest(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, 50, models.OrderStatusPending)
	seedPayment(t, db, order.ID, "order_mock782", models.PaymentStatusCreated, 50)

	w := doRequest(router, http.MethodPost, "/payment-pending", map[string]interface{}{
		"order_id": order.ID,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payments []models.Payment
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&payments).Error)
	assert.Equal(t, models.PaymentStatusPending, payments[0].Status)
}

func TestPaymentPendingUnknownOrder(t *testing.T) {
	router, _, _ := setupTest(t)
	w := doRequest(router, http.MethodPost, "/payment-pending", map[string]interface{}{
		"order_id": 4242,
	}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRazorpayWebhookLogsEvent(t *testing.T) {
	router, db, _ := setupTest(t)

	payload := `{"event":"payment.captured","payload":{}}`
	req := map[string]string{"X-Razorpay-Signature": "not-the-right-signature"}
	w := doRequestRaw(router, http.MethodPost, "/razorpay-webhook", []byte(payload), req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var logs []models.RazorpayWebhookLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "payment.captured", logs[0].EventType)
	assert.Equal(t, payload, logs[0].PayloadText)
	assert.False(t, logs[0].Verified)
	assert.False(t, logs[0].Processed)
}
