package models

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodCash
}

// CardDetails is checked at placement and never persisted.
type CardDetails struct {
	CardholderName string `json:"cardholderName" validate:"omitempty,max=120"`
	Number         string `json:"cardNumber" validate:"required,card_number"`
	Expiry         string `json:"expiryDate" validate:"required,card_expiry"`
	CVV            string `json:"cvv" validate:"required,cvv"`
}

type PlaceOrderRequest struct {
	Card *CardDetails `json:"card,omitempty"`
}
