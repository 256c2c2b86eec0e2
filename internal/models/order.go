package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

type OrderStatus string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypePickup   OrderType = "pickup"

	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeDelivery || t == OrderTypePickup
}

// OrderTotals keeps full precision; round only through Display.
type OrderTotals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
}

type DisplayTotals struct {
	Subtotal    string `json:"subtotal"`
	Tax         string `json:"tax"`
	DeliveryFee string `json:"deliveryFee"`
	Total       string `json:"total"`
}

func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func (t OrderTotals) Display() DisplayTotals {
	return DisplayTotals{
		Subtotal:    FormatMoney(t.Subtotal),
		Tax:         FormatMoney(t.Tax),
		DeliveryFee: FormatMoney(t.DeliveryFee),
		Total:       FormatMoney(t.Total),
	}
}

// OrderRecord is immutable once placed, except for Status moving pending to delivered.
type OrderRecord struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"`
	Items     []string        `json:"items"`
	Lines     []CartLineItem  `json:"lines,omitempty"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	OrderType OrderType       `json:"orderType"`
	CreatedAt time.Time       `json:"timestamp"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,oneof=pending delivered"`
}

type OrderListQuery struct {
	Status   string `json:"status" validate:"omitempty,oneof=all pending delivered"`
	Page     int    `json:"page" validate:"gte=1"`
	PageSize int    `json:"pageSize" validate:"gte=1,lte=100"`
}

type OrderConfirmation struct {
	OrderID       string        `json:"orderId"`
	OrderNumber   string        `json:"orderNumber"`
	EstimatedTime string        `json:"estimatedTime"`
	OrderType     OrderType     `json:"orderType"`
	Items         []string      `json:"items"`
	Totals        OrderTotals   `json:"totals"`
	Display       DisplayTotals `json:"display"`
	Customer      *Customer     `json:"customer,omitempty"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
