package utils

import (
	"fmt"
	"strconv"

	"github.com/ecomall/ecomall-backend/config"
	"gopkg.in/gomail.v2"
)

// SendOrderConfirmation emails the customer after a payment is captured.
// It is best effort: when SMTP is not configured the send is skipped.
func SendOrderConfirmation(to string, orderID uint, amount float64) error {
	cfg := config.App
	if cfg == nil || cfg.SMTPHost == "" {
		LogDebug("SMTP not configured, skipping order confirmation for order %d", orderID)
		return nil
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Eco Mall - Payment received for order #%d", orderID))

	body := fmt.Sprintf(`
		<h2>Thank you for shopping with Eco Mall!</h2>
		<p>We have received your payment of <strong>%s</strong> for order <strong>#%d</strong>.</p>
		<p>Your order is confirmed. You can download the invoice from your orders page.</p>
	`, FormatINR(amount), orderID)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUsername, cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send order confirmation: %v", err)
	}
	return nil
}
