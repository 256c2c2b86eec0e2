package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/metrics"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/pricing"
	repository "github.com/aaravmahajanofficial/savory-restaurant/internal/repositories"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const opPlaceOrder = "Order placement"

type CheckoutService interface {
	GetCheckout(ctx context.Context, sessionID string) (*models.CheckoutResponse, error)
	NextStep(ctx context.Context, sessionID string, req *models.StepRequest) (*models.CheckoutResponse, error)
	PrevStep(ctx context.Context, sessionID string, req *models.StepRequest) (*models.CheckoutResponse, error)
	SetOrderType(ctx context.Context, sessionID string, orderType models.OrderType) (*models.CheckoutResponse, error)
	SetPaymentMethod(ctx context.Context, sessionID string, method models.PaymentMethod) (*models.CheckoutResponse, error)
	PlaceOrder(ctx context.Context, sessionID string, req *models.PlaceOrderRequest) (*models.OrderConfirmation, error)
	Reset(ctx context.Context, sessionID string) (*models.CheckoutResponse, error)
}

type checkoutService struct {
	repo          repository.CheckoutRepository
	orders        repository.OrderRepository
	carts         CartService
	auth          AuthService
	calculator    *pricing.Calculator
	backend       Backend
	notifications NotificationService
	validate      *validator.Validate
	orderNumber   func() string
	now           func() time.Time
}

func NewCheckoutService(
	repo repository.CheckoutRepository,
	orders repository.OrderRepository,
	carts CartService,
	auth AuthService,
	calculator *pricing.Calculator,
	backend Backend,
	notifications NotificationService,
) CheckoutService {
	return &checkoutService{
		repo:          repo,
		orders:        orders,
		carts:         carts,
		auth:          auth,
		calculator:    calculator,
		backend:       backend,
		notifications: notifications,
		validate:      validation.New(),
		orderNumber:   randomOrderNumber,
		now:           time.Now,
	}
}

// randomOrderNumber draws a five digit number in [10000, 99999].
func randomOrderNumber() string {
	return fmt.Sprintf("#%d", 10000+rand.IntN(90000))
}

// GetCheckout implements CheckoutService.
func (s *checkoutService) GetCheckout(ctx context.Context, sessionID string) (*models.CheckoutResponse, error) {
	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.respond(ctx, sessionID, state)
}

// NextStep implements CheckoutService. Only the step right after the current
// one is reachable, and only once the current step's form is valid.
func (s *checkoutService) NextStep(ctx context.Context, sessionID string, req *models.StepRequest) (*models.CheckoutResponse, error) {

	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.Target != state.Step+1 || req.Target > models.StepPayment {
		return nil, errors.AddValidationError("target", fmt.Sprintf("Cannot move from %s to step %d", state.Step, req.Target))
	}

	if state.Step == models.StepDelivery {
		form := req.Delivery
		if form == nil {
			form = state.Delivery
		}

		if err := s.validateDelivery(form); err != nil {
			return nil, err
		}

		state.Delivery = form
		state.OrderType = form.OrderType
		state.PaymentMethod = form.PaymentMethod
	}

	state.Step = req.Target

	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Debug("Checkout advanced", slog.String("step", state.Step.String()))

	return s.respond(ctx, sessionID, state)
}

// PrevStep implements CheckoutService. Going back never validates.
func (s *checkoutService) PrevStep(ctx context.Context, sessionID string, req *models.StepRequest) (*models.CheckoutResponse, error) {

	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.Target < models.StepReview || req.Target >= state.Step {
		return nil, errors.AddValidationError("target", fmt.Sprintf("Cannot go back from %s to step %d", state.Step, req.Target))
	}

	state.Step = req.Target

	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}

	return s.respond(ctx, sessionID, state)
}

// SetOrderType implements CheckoutService.
func (s *checkoutService) SetOrderType(ctx context.Context, sessionID string, orderType models.OrderType) (*models.CheckoutResponse, error) {

	if !orderType.Valid() {
		return nil, errors.AddValidationError("orderType", "Must be one of: delivery pickup")
	}

	return s.update(ctx, sessionID, func(state *models.CheckoutState) {
		state.OrderType = orderType
		if state.Delivery != nil {
			state.Delivery.OrderType = orderType
		}
	})
}

// SetPaymentMethod implements CheckoutService.
func (s *checkoutService) SetPaymentMethod(ctx context.Context, sessionID string, method models.PaymentMethod) (*models.CheckoutResponse, error) {

	if !method.Valid() {
		return nil, errors.AddValidationError("paymentMethod", "Must be one of: card cash")
	}

	return s.update(ctx, sessionID, func(state *models.CheckoutState) {
		state.PaymentMethod = method
		if state.Delivery != nil {
			state.Delivery.PaymentMethod = method
		}
	})
}

func (s *checkoutService) update(ctx context.Context, sessionID string, apply func(*models.CheckoutState)) (*models.CheckoutResponse, error) {

	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if state.Step == models.StepConfirmation {
		return nil, errors.InvalidTransitionError("The order has already been placed")
	}

	apply(&state)

	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}

	return s.respond(ctx, sessionID, state)
}

// PlaceOrder implements CheckoutService. Any failure leaves the cart and the
// step exactly as they were.
func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID string, req *models.PlaceOrderRequest) (*models.OrderConfirmation, error) {

	logger := middleware.LoggerFromContext(ctx)

	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if state.Step != models.StepPayment {
		return nil, errors.InvalidTransitionError(fmt.Sprintf("Orders are placed from the payment step, not %s", state.Step))
	}

	if err := s.validateDelivery(state.Delivery); err != nil {
		return nil, err
	}

	if state.PaymentMethod == models.PaymentMethodCard {
		card := req.Card
		if card == nil {
			card = &models.CardDetails{}
		}

		if err := utils.ValidateStruct(s.validate, card); err != nil {
			return nil, err
		}
	}

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if cart.IsEmpty() {
		return nil, errors.EmptyCartError()
	}

	if err := s.backend.Call(ctx, opPlaceOrder); err != nil {
		return nil, err
	}

	totals := s.calculator.Calculate(cart.Items, state.OrderType)

	names := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		names = append(names, item.Name)
	}

	order := &models.OrderRecord{
		ID:        uuid.NewString(),
		Number:    s.orderNumber(),
		Items:     names,
		Lines:     cart.Items,
		Total:     totals.Total,
		Status:    models.OrderStatusPending,
		OrderType: state.OrderType,
		CreatedAt: s.now().UTC(),
	}

	if err := s.orders.CreateOrder(ctx, sessionID, order); err != nil {
		return nil, errors.StorageError("Failed to record order").WithError(err)
	}

	// The order exists from here on; later storage failures are logged only.
	if err := s.carts.RemoveOrdered(ctx, sessionID, cart.Items); err != nil {
		logger.Error("Failed to clear cart after order", slog.String("orderId", order.ID), slog.Any("error", err))
	}

	state.Step = models.StepConfirmation
	state.LastOrderID = order.ID

	if err := s.saveState(ctx, sessionID, state); err != nil {
		logger.Error("Failed to save checkout state after order", slog.String("orderId", order.ID), slog.Any("error", err))
	}

	metrics.RecordOrderPlaced(string(order.OrderType))

	contact := state.Delivery.Contact
	confirmation := &models.OrderConfirmation{
		OrderID:       order.ID,
		OrderNumber:   order.Number,
		EstimatedTime: pricing.EstimatedTime(order.OrderType),
		OrderType:     order.OrderType,
		Items:         names,
		Totals:        totals,
		Display:       totals.Display(),
		Customer: &models.Customer{
			Name:  contact.FullName(),
			Email: contact.Email,
			Phone: contact.Phone,
		},
	}

	logger.Info("Order placed",
		slog.String("orderId", order.ID),
		slog.String("orderNumber", order.Number),
		slog.String("total", confirmation.Display.Total))

	if s.notifications != nil {
		s.notifications.SendOrderConfirmation(ctx, confirmation)
	}

	return confirmation, nil
}

// Reset implements CheckoutService. Contact and address details survive for the next order.
func (s *checkoutService) Reset(ctx context.Context, sessionID string) (*models.CheckoutResponse, error) {

	state, err := s.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Step = models.StepReview
	state.LastOrderID = ""

	if err := s.saveState(ctx, sessionID, state); err != nil {
		return nil, err
	}

	return s.respond(ctx, sessionID, state)
}

func (s *checkoutService) validateDelivery(form *models.DeliveryForm) error {
	if form == nil {
		return errors.AddValidationError("delivery", "This field is required")
	}

	return utils.ValidateStruct(s.validate, form)
}

func (s *checkoutService) loadState(ctx context.Context, sessionID string) (models.CheckoutState, error) {

	state, err := s.repo.GetCheckoutState(ctx, sessionID)
	if err == nil {
		return state, nil
	}

	if !isCorrupt(err) {
		return state, errors.StorageError("Failed to load checkout").WithError(err)
	}

	recoverCorrupt(ctx, storage.KeyCheckout, err)

	if err := s.repo.SaveCheckoutState(ctx, sessionID, state); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to reset corrupt checkout", slog.Any("error", err))
	}

	return state, nil
}

func (s *checkoutService) saveState(ctx context.Context, sessionID string, state models.CheckoutState) error {
	if err := s.repo.SaveCheckoutState(ctx, sessionID, state); err != nil {
		return errors.StorageError("Failed to save checkout").WithError(err)
	}

	return nil
}

func (s *checkoutService) respond(ctx context.Context, sessionID string, state models.CheckoutState) (*models.CheckoutResponse, error) {

	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	totals := s.calculator.Calculate(cart.Items, state.OrderType)

	resp := &models.CheckoutResponse{
		State:         state,
		StepName:      state.Step.String(),
		Cart:          models.NewCartSnapshot(cart),
		Totals:        totals,
		Display:       totals.Display(),
		EstimatedTime: pricing.EstimatedTime(state.OrderType),
	}

	if state.Delivery == nil && s.auth != nil {
		user, err := s.auth.GetCurrentUser(ctx, sessionID)
		if err != nil {
			middleware.LoggerFromContext(ctx).Warn("Failed to load user for prefill", slog.Any("error", err))
		} else if user != nil {
			resp.Prefill = &models.ContactDetails{
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Email:     user.Email,
				Phone:     user.Phone,
			}
		}
	}

	return resp, nil
}
