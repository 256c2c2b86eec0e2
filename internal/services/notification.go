package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/pkg/sendgrid"
)

type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, confirmation *models.OrderConfirmation) *models.NotificationResult
}

type notificationService struct {
	emailService sendgrid.EmailService
}

// NewNotificationService accepts a nil emailService; every confirmation is then skipped.
func NewNotificationService(emailService sendgrid.EmailService) NotificationService {
	return &notificationService{emailService: emailService}
}

// SendOrderConfirmation implements NotificationService. Delivery problems
// are reported in the result and never returned as errors.
func (n *notificationService) SendOrderConfirmation(ctx context.Context, confirmation *models.OrderConfirmation) *models.NotificationResult {

	logger := middleware.LoggerFromContext(ctx)

	if n.emailService == nil || confirmation.Customer == nil || confirmation.Customer.Email == "" {
		return &models.NotificationResult{Status: models.StatusSkipped}
	}

	email := &models.OrderEmail{
		Recipient:   confirmation.Customer.Email,
		Name:        confirmation.Customer.Name,
		OrderNumber: confirmation.OrderNumber,
		Subject:     fmt.Sprintf("Your Savory order %s", confirmation.OrderNumber),
		Content:     confirmationText(confirmation),
	}

	if err := n.emailService.Send(ctx, email); err != nil {
		logger.Error("Failed to send order confirmation",
			slog.String("orderNumber", confirmation.OrderNumber),
			slog.Any("error", err))

		return &models.NotificationResult{Status: models.StatusFailed, Error: err.Error()}
	}

	sentAt := time.Now().UTC()
	logger.Info("Order confirmation sent", slog.String("orderNumber", confirmation.OrderNumber))

	return &models.NotificationResult{Status: models.StatusSent, SentAt: &sentAt}
}

func confirmationText(c *models.OrderConfirmation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Thank you for your order, %s!\n\n", c.Customer.Name)
	fmt.Fprintf(&b, "Order number: %s\n", c.OrderNumber)
	fmt.Fprintf(&b, "Order type: %s\n", c.OrderType)
	fmt.Fprintf(&b, "Estimated time: %s\n\n", c.EstimatedTime)

	for _, item := range c.Items {
		fmt.Fprintf(&b, "- %s\n", item)
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", c.Display.Subtotal)
	fmt.Fprintf(&b, "Tax: %s\n", c.Display.Tax)
	if c.OrderType == models.OrderTypeDelivery {
		fmt.Fprintf(&b, "Delivery fee: %s\n", c.Display.DeliveryFee)
	}
	fmt.Fprintf(&b, "Total: %s\n", c.Display.Total)

	return b.String()
}
