package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	service "github.com/aaravmahajanofficial/savory-restaurant/internal/services"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils/response"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/validation"
	"github.com/go-playground/validator/v10"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validation.New()}
}

// GetCheckout godoc
//	@Summary		Get the checkout state
//	@Description	Returns the current step, order type, payment method, cart and totals.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{object}	models.CheckoutResponse	"Checkout state"
//	@Failure		500	{object}	response.ErrorResponse	"Storage error"
//	@Router			/checkout [get]
func (h *CheckoutHandler) GetCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		resp, err := h.checkoutService.GetCheckout(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get checkout", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// NextStep godoc
//	@Summary		Advance the checkout
//	@Description	Moves to the next step once the current step's form validates. The delivery form is sent when leaving the delivery step.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			step	body		models.StepRequest		true	"Target step and optional delivery form"
//	@Success		200		{object}	models.CheckoutResponse	"Checkout state"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error with per-field messages"
//	@Failure		500		{object}	response.ErrorResponse	"Storage error"
//	@Router			/checkout/next [post]
func (h *CheckoutHandler) NextStep() http.HandlerFunc {
	return h.move(true)
}

// PrevStep godoc
//	@Summary	Go back in the checkout
//	@Tags		Checkout
//	@Accept		json
//	@Produce	json
//	@Param		step	body		models.StepRequest		true	"Target step"
//	@Success	200		{object}	models.CheckoutResponse	"Checkout state"
//	@Failure	400		{object}	response.ErrorResponse	"Target is not an earlier step"
//	@Router		/checkout/prev [post]
func (h *CheckoutHandler) PrevStep() http.HandlerFunc {
	return h.move(false)
}

func (h *CheckoutHandler) move(forward bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		// the delivery form is validated by the service against the step it belongs to
		var req models.StepRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()))
			return
		}

		if err := h.validator.Var(int(req.Target), "required,gte=1,lte=4"); err != nil {
			response.Error(w, errors.AddValidationError("target", "Must be a step between 1 and 4"))
			return
		}

		var (
			resp *models.CheckoutResponse
			err  error
		)

		if forward {
			resp, err = h.checkoutService.NextStep(r.Context(), sessionID, &req)
		} else {
			resp, err = h.checkoutService.PrevStep(r.Context(), sessionID, &req)
		}

		if err != nil {
			logger.Warn("Checkout step change rejected", slog.Int("target", int(req.Target)), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// SetOrderType godoc
//	@Summary	Choose delivery or pickup
//	@Tags		Checkout
//	@Accept		json
//	@Produce	json
//	@Param		orderType	body		models.SetOrderTypeRequest	true	"Order type"
//	@Success	200			{object}	models.CheckoutResponse		"Checkout state with new totals"
//	@Failure	400			{object}	response.ErrorResponse		"Validation error"
//	@Failure	409			{object}	response.ErrorResponse		"Order already placed"
//	@Router		/checkout/order-type [put]
func (h *CheckoutHandler) SetOrderType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.SetOrderTypeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.checkoutService.SetOrderType(r.Context(), sessionID, req.OrderType)
		if err != nil {
			logger.Warn("Failed to set order type", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// SetPaymentMethod godoc
//	@Summary	Choose card or cash
//	@Tags		Checkout
//	@Accept		json
//	@Produce	json
//	@Param		paymentMethod	body		models.SetPaymentMethodRequest	true	"Payment method"
//	@Success	200				{object}	models.CheckoutResponse			"Checkout state"
//	@Failure	400				{object}	response.ErrorResponse			"Validation error"
//	@Failure	409				{object}	response.ErrorResponse			"Order already placed"
//	@Router		/checkout/payment-method [put]
func (h *CheckoutHandler) SetPaymentMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.SetPaymentMethodRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.checkoutService.SetPaymentMethod(r.Context(), sessionID, req.PaymentMethod)
		if err != nil {
			logger.Warn("Failed to set payment method", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// PlaceOrder godoc
//	@Summary		Place the order
//	@Description	Places the order from the payment step. Card details are required when paying by card and are never stored.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.PlaceOrderRequest	false	"Card details"
//	@Success		201		{object}	models.OrderConfirmation	"Order confirmation"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or empty cart"
//	@Failure		409		{object}	response.ErrorResponse		"Not on the payment step"
//	@Failure		503		{object}	response.ErrorResponse		"Order service unavailable, retry"
//	@Router			/checkout/place-order [post]
func (h *CheckoutHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.PlaceOrderRequest
		if r.ContentLength != 0 {
			if err := utils.DecodeJSONBody(r, &req); err != nil {
				response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()))
				return
			}
		}

		confirmation, err := h.checkoutService.PlaceOrder(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Order placement failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order placed", slog.String("orderId", confirmation.OrderID), slog.String("orderNumber", confirmation.OrderNumber))
		response.Success(w, http.StatusCreated, confirmation)
	}
}

// ResetCheckout godoc
//	@Summary	Start a new checkout
//	@Tags		Checkout
//	@Produce	json
//	@Success	200	{object}	models.CheckoutResponse	"Checkout state on the review step"
//	@Router		/checkout/reset [post]
func (h *CheckoutHandler) ResetCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		resp, err := h.checkoutService.Reset(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to reset checkout", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}
