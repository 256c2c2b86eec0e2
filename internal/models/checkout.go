package models

type CheckoutStep int

const (
	StepReview CheckoutStep = iota + 1
	StepDelivery
	StepPayment
	StepConfirmation
)

var stepNames = map[CheckoutStep]string{
	StepReview:       "review",
	StepDelivery:     "delivery",
	StepPayment:      "payment",
	StepConfirmation: "confirmation",
}

func (s CheckoutStep) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}

	return "unknown"
}

func (s CheckoutStep) Valid() bool {
	return s >= StepReview && s <= StepConfirmation
}

type ContactDetails struct {
	FirstName string `json:"firstName" validate:"required,notblank,max=60"`
	LastName  string `json:"lastName" validate:"required,notblank,max=60"`
	Email     string `json:"email" validate:"required,email_address"`
	Phone     string `json:"phone" validate:"required,phone"`
}

func (c ContactDetails) FullName() string {
	return c.FirstName + " " + c.LastName
}

type DeliveryAddress struct {
	Street       string `json:"street" validate:"required,notblank,max=200"`
	City         string `json:"city" validate:"required,notblank,max=100"`
	State        string `json:"state" validate:"required,notblank,max=50"`
	ZipCode      string `json:"zipCode" validate:"required,notblank,max=10"`
	Instructions string `json:"instructions,omitempty" validate:"omitempty,max=500"`
}

// DeliveryForm is the form bound to the Delivery step.
type DeliveryForm struct {
	OrderType     OrderType        `json:"orderType" validate:"required,oneof=delivery pickup"`
	PaymentMethod PaymentMethod    `json:"paymentMethod" validate:"required,oneof=card cash"`
	Contact       ContactDetails   `json:"contact"`
	Address       *DeliveryAddress `json:"address,omitempty" validate:"required_if=OrderType delivery,omitempty"`
}

type CheckoutState struct {
	Step          CheckoutStep  `json:"step"`
	OrderType     OrderType     `json:"orderType"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Delivery      *DeliveryForm `json:"delivery,omitempty"`
	LastOrderID   string        `json:"lastOrderId,omitempty"`
}

func NewCheckoutState() CheckoutState {
	return CheckoutState{
		Step:          StepReview,
		OrderType:     OrderTypeDelivery,
		PaymentMethod: PaymentMethodCard,
	}
}

type StepRequest struct {
	Target   CheckoutStep  `json:"target" validate:"required,gte=1,lte=4"`
	Delivery *DeliveryForm `json:"delivery,omitempty"`
}

type SetOrderTypeRequest struct {
	OrderType OrderType `json:"orderType" validate:"required,oneof=delivery pickup"`
}

type SetPaymentMethodRequest struct {
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=card cash"`
}

type CheckoutResponse struct {
	State         CheckoutState `json:"state"`
	StepName      string        `json:"stepName"`
	Cart          CartSnapshot  `json:"cart"`
	Totals        OrderTotals   `json:"totals"`
	Display       DisplayTotals `json:"display"`
	EstimatedTime string        `json:"estimatedTime"`
	// Prefill holds the signed-in user's contact details until a delivery form is stored.
	Prefill *ContactDetails `json:"prefill,omitempty"`
}
