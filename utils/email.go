package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"

	"campus-eats/models"
)

// EmailService sends order emails through Postmark.
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService builds an EmailService from POSTMARK_API_TOKEN and
// EMAIL_SENDER. Returns nil when no token is configured; callers treat a
// nil service as "mail disabled".
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmation tells the customer their order was placed.
func (es *EmailService) SendOrderConfirmation(toEmail string, order models.Order) error {
	subject := "Order Confirmation - Campus Eats"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your order! Your order <strong>%s</strong> has been placed and is now being processed.<br><br>Total Amount: <strong>$%.2f</strong><br><br>You can track its progress from your dashboard.",
		order.CustomerName,
		order.OrderNumber,
		order.TotalAmount,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendStatusUpdate tells the customer their order moved to a new status.
func (es *EmailService) SendStatusUpdate(toEmail string, order models.Order) error {
	subject := "Order Status Updated - Campus Eats"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your order <strong>%s</strong> is now <strong>%s</strong>.",
		order.CustomerName,
		order.OrderNumber,
		order.Status,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
