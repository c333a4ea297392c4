package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ecomall/ecomall-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadInvoice(t *testing.T) {
	router, db, _ := setupTest(t)
	user := seedUser(t, db)
	item := seedItem(t, db, "Recycled Notebook", 75)
	order := seedOrder(t, db, user.ID, 150, models.OrderStatusConfirmed)
	require.NoError(t, db.Create(&models.OrderItem{
		OrderID:  order.ID,
		ItemID:   item.ID,
		Quantity: 2,
		Price:    75,
	}).Error)
	payment := seedPayment(t, db, order.ID, "order_inv001", models.PaymentStatusCaptured, 150)
	require.NoError(t, db.Model(&payment).Update("provider_payment_id", "pay_inv001").Error)

	w := doRequest(router, http.MethodGet, fmt.Sprintf("/invoice/%d/pdf", order.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, fmt.Sprintf("attachment; filename=invoice_%d.pdf", order.ID), w.Header().Get("Content-Disposition"))
	assert.True(t, len(w.Body.Bytes()) > 4 && string(w.Body.Bytes()[:4]) == "%PDF", "body is not a PDF")
}

func TestDownloadInvoiceWithoutPayment(t *testing.T) {
	router, db, _ := setupTest(t)
	user := seedUser(t, db)
	order := seedOrder(t, db, user.ID, 99, models.OrderStatusPending)

	// An order with no items and no payment attempts still renders.
	w := doRequest(router, http.MethodGet, fmt.Sprintf("/invoice/%d/pdf", order.ID), nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
}

func TestDownloadInvoiceErrors(t *testing.T) {
	router, _, _ := setupTest(t)

	w := doRequest(router, http.MethodGet, "/invoice/999/pdf", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodGet, "/invoice/abc/pdf", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
