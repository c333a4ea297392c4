package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/ecomall/ecomall-backend/config"
	"github.com/ecomall/ecomall-backend/models"
	"github.com/ecomall/ecomall-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// DownloadOrdersReportExcel exports orders for a period as an Excel sheet
func DownloadOrdersReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadOrdersReportExcel called")

	period := c.DefaultQuery("period", "day")
	now := time.Now()
	var startDate time.Time

	switch period {
	case "day":
		startDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		startDate = now.AddDate(0, 0, -7)
	case "month":
		startDate = now.AddDate(0, -1, 0)
	default:
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}

	var orders []models.Order
	err := config.DB.Where("created_at >= ?", startDate).
		Preload("User").
		Preload("OrderItems").
		Preload("Payments").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		utils.LogError("Failed to fetch orders for report: %v", err)
		utils.ServiceUnavailable(c, "Database unavailable", err.Error())
		return
	}

	var totalRevenue float64
	confirmed := 0
	for _, order := range orders {
		if order.Status == models.OrderStatusConfirmed {
			confirmed++
			totalRevenue += order.TotalPrice
		}
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders Report")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("ECO MALL - Orders Report")
	periodRow := sheet.AddRow()
	periodRow.AddCell().SetString(fmt.Sprintf("Period: %s (since %s)", period, startDate.Format("2006-01-02")))
	summaryRow := sheet.AddRow()
	summaryRow.AddCell().SetString(fmt.Sprintf("Orders: %d | Confirmed: %d | Revenue: %.2f INR", len(orders), confirmed, totalRevenue))
	sheet.AddRow()

	header := sheet.AddRow()
	for _, h := range []string{"Order ID", "Date", "Customer", "Items", "Total (INR)", "Status", "Latest Payment Status"} {
		header.AddCell().SetString(h)
	}

	for _, order := range orders {
		itemCount := 0
		for _, line := range order.OrderItems {
			itemCount += line.Quantity
		}
		latestPayment := ""
		for _, p := range order.Payments {
			latestPayment = p.Status
		}

		row := sheet.AddRow()
		row.AddCell().SetInt(int(order.ID))
		row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(order.User.FirstName + " " + order.User.LastName)
		row.AddCell().SetInt(itemCount)
		row.AddCell().SetFloat(order.TotalPrice)
		row.AddCell().SetString(order.Status)
		row.AddCell().SetString(latestPayment)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to generate report", err.Error())
		return
	}

	utils.LogInfo("Orders report generated: %d orders", len(orders))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders_report_%s.xlsx", period))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
