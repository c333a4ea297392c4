package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/models"
	"github.com/ecomall/ecomall-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

type invoiceData struct {
	Order    models.Order
	Items    []models.OrderItem
	Payment  *models.Payment
	Subtotal float64
}

// loadInvoiceData gathers the order, its items joined with item names and the
// most recent payment attempt. Subtotal is the sum of the line snapshots and
// is reported next to the stored order total without reconciliation.
func loadInvoiceData(orderID int) (*invoiceData, error) {
	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		return nil, utils.NotFoundError("Order not found", err)
	}

	var items []models.OrderItem
	if err := config.DB.Preload("Item").Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return nil, utils.ServiceUnavailableError("Database unavailable", err)
	}

	data := &invoiceData{Order: order, Items: items}
	for _, line := range items {
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		data.Subtotal += line.Price * float64(quantity)
	}

	var payment models.Payment
	if err := config.DB.Where("order_id = ?", order.ID).Order("created_at DESC").First(&payment).Error; err == nil {
		data.Payment = &payment
	}

	return data, nil
}

// renderInvoicePDF lays out the invoice document. Amounts are printed as
// plain two-decimal figures under an INR header; the core PDF fonts cannot
// encode the rupee sign.
func renderInvoicePDF(data *invoiceData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Store header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, "Eco Mall")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(8)
	pdf.Cell(100, 8, "123, Green Street, City, State - ZIP")
	pdf.Ln(8)
	pdf.Cell(100, 8, "Email: support@ecomall.example | Phone: +91-12345-67890")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Order ID: "+strconv.Itoa(int(data.Order.ID)))
	pdf.Cell(70, 8, "Date: "+time.Now().Format("02 Jan 2006 15:04"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Status: "+data.Order.Status)
	if data.Order.BookedReference != "" {
		pdf.Cell(70, 8, "Reference: "+data.Order.BookedReference)
	}
	pdf.Ln(10)

	// Items table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(80, 8, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Unit Price (INR)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Amount (INR)", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 12)
	for _, line := range data.Items {
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		pdf.CellFormat(80, 8, line.Item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, strconv.Itoa(quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", line.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", line.Price*float64(quantity)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Summary: subtotal from line snapshots, total as stored on the order
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(135, 8, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", data.Subtotal), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(135, 10, "Total:", "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 10, fmt.Sprintf("%.2f", data.Order.TotalPrice), "", 1, "R", false, 0, "")

	// Payment details for the latest attempt, when one exists
	if data.Payment != nil {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(100, 8, "Payment Details")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(100, 7, "Payment ID: "+strconv.Itoa(int(data.Payment.ID)))
		pdf.Ln(6)
		pdf.Cell(100, 7, "Status: "+data.Payment.Status)
		pdf.Ln(6)
		if data.Payment.Method != "" {
			pdf.Cell(100, 7, "Method: "+data.Payment.Method)
			pdf.Ln(6)
		}
		if data.Payment.ProviderOrderID != "" {
			pdf.Cell(100, 7, "Razorpay Order: "+data.Payment.ProviderOrderID)
			pdf.Ln(6)
		}
		if data.Payment.ProviderPaymentID != "" {
			pdf.Cell(100, 7, "Razorpay Payment: "+data.Payment.ProviderPaymentID)
			pdf.Ln(6)
		}
		pdf.Cell(100, 7, fmt.Sprintf("Amount (INR): %.2f", data.Payment.Amount))
		pdf.Ln(6)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 10)
	pdf.Cell(0, 8, "This is a computer-generated invoice and does not require a signature.")
	pdf.Ln(6)
	pdf.Cell(0, 8, "Thank you for shopping with Eco Mall!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DownloadInvoice generates and returns a PDF invoice for the order
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order ID", nil)
		return
	}

	data, err := loadInvoiceData(orderID)
	if err != nil {
		utils.LogError("Failed to load invoice data for order %d: %v", orderID, err)
		utils.RespondError(c, err)
		return
	}

	pdfBytes, err := renderInvoicePDF(data)
	if err != nil {
		utils.LogError("PDF generation failed for order %d: %v", orderID, err)
		utils.InternalServerError(c, "Error generating PDF", nil)
		return
	}

	utils.LogInfo("Invoice generated for order %d (%d bytes)", orderID, len(pdfBytes))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%d.pdf", orderID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
