package models

import "time"

type NotificationStatus string

const (
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
	StatusSkipped NotificationStatus = "skipped"
)

// OrderEmail is the confirmation message sent after an order is placed.
type OrderEmail struct {
	Recipient   string `validate:"required,email_address"`
	Name        string
	OrderNumber string
	Subject     string
	Content     string
	HTMLContent string
}

type NotificationResult struct {
	Status NotificationStatus `json:"status"`
	Error  string             `json:"error,omitempty"`
	SentAt *time.Time         `json:"sentAt,omitempty"`
}
