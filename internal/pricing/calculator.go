// Package pricing derives order totals from a cart.
package pricing

import (
	"github.com/aaravmahajanofficial/savory-restaurant/internal/config"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/shopspring/decimal"
)

var (
	DefaultTaxRate     = decimal.RequireFromString("0.085")
	DefaultDeliveryFee = decimal.RequireFromString("3.99")
)

const (
	deliveryEstimate = "30-45 minutes"
	pickupEstimate   = "15-20 minutes"
)

type Calculator struct {
	taxRate     decimal.Decimal
	deliveryFee decimal.Decimal
}

func NewCalculator(taxRate, deliveryFee decimal.Decimal) *Calculator {
	return &Calculator{taxRate: taxRate, deliveryFee: deliveryFee}
}

func NewCalculatorFromConfig(cfg config.Checkout) *Calculator {
	return NewCalculator(decimal.NewFromFloat(cfg.TaxRate), decimal.NewFromFloat(cfg.DeliveryFee))
}

// Calculate keeps full precision; callers round through OrderTotals.Display.
func (c *Calculator) Calculate(items []models.CartLineItem, orderType models.OrderType) models.OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	tax := subtotal.Mul(c.taxRate)

	fee := decimal.Zero
	if orderType == models.OrderTypeDelivery {
		fee = c.deliveryFee
	}

	return models.OrderTotals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal.Add(tax).Add(fee),
	}
}

func EstimatedTime(orderType models.OrderType) string {
	if orderType == models.OrderTypeDelivery {
		return deliveryEstimate
	}

	return pickupEstimate
}
