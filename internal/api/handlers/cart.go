package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	service "github.com/aaravmahajanofficial/savory-restaurant/internal/services"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils/response"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/validation"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService     service.CartService
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCartHandler(cartService service.CartService, checkoutService service.CheckoutService) *CartHandler {
	return &CartHandler{cartService: cartService, checkoutService: checkoutService, validator: validation.New()}
}

// GetCart godoc
//	@Summary		Get the cart
//	@Description	Returns the session's cart with totals for the order type chosen at checkout.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	models.CartResponse		"Current cart"
//	@Failure		500	{object}	response.ErrorResponse	"Storage error"
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		checkout, err := h.checkoutService.GetCheckout(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to get cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.CartResponse{
			CartSnapshot: checkout.Cart,
			OrderType:    checkout.State.OrderType,
			Totals:       checkout.Totals,
			Display:      checkout.Display,
		})
	}
}

// AddItem godoc
//	@Summary		Add an item
//	@Description	Adds one unit of an item. An item already in the cart keeps its price and gains one in quantity.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Item name and unit price"
//	@Success		200		{object}	models.CartSnapshot		"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		500		{object}	response.ErrorResponse	"Storage error"
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), sessionID, &req)
		if err != nil {
			logger.Error("Failed to add item", slog.String("item", req.Name), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to cart", slog.String("item", req.Name))
		response.Success(w, http.StatusOK, models.NewCartSnapshot(cart))
	}
}

// UpdateQuantity godoc
//	@Summary		Set an item's quantity
//	@Description	Sets the quantity of an item in the cart. Zero or less removes it; an unknown name changes nothing.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.UpdateQuantityRequest	true	"Item name and new quantity"
//	@Success		200		{object}	models.CartSnapshot				"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse			"Validation error"
//	@Failure		500		{object}	response.ErrorResponse			"Storage error"
//	@Router			/cart/items [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), sessionID, &req)
		if err != nil {
			logger.Error("Failed to update quantity", slog.String("item", req.Name), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewCartSnapshot(cart))
	}
}

// RemoveItem godoc
//	@Summary		Remove an item
//	@Tags			Cart
//	@Produce		json
//	@Param			name	path		string					true	"Item name"
//	@Success		200		{object}	models.CartSnapshot		"Updated cart"
//	@Failure		500		{object}	response.ErrorResponse	"Storage error"
//	@Router			/cart/items/{name} [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		name := r.PathValue("name")

		cart, err := h.cartService.RemoveItem(r.Context(), sessionID, name)
		if err != nil {
			logger.Error("Failed to remove item", slog.String("item", name), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewCartSnapshot(cart))
	}
}

// ClearCart godoc
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	models.CartSnapshot		"Empty cart"
//	@Failure	500	{object}	response.ErrorResponse	"Storage error"
//	@Router		/cart [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		if err := h.cartService.Clear(r.Context(), sessionID); err != nil {
			logger.Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewCartSnapshot(models.Cart{}))
	}
}

// Dispatch godoc
//	@Summary		Apply a cart action
//	@Description	Applies one of add_item, update_quantity, remove_item or clear and returns the resulting cart.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			action	body		models.CartAction		true	"Cart action"
//	@Success		200		{object}	models.CartSnapshot		"Updated cart"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		500		{object}	response.ErrorResponse	"Storage error"
//	@Router			/cart/actions [post]
func (h *CartHandler) Dispatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var action models.CartAction
		if !utils.ParseAndValidate(r, w, &action, h.validator) {
			logger.Warn("Invalid cart action")
			return
		}

		cart, err := h.cartService.Dispatch(r.Context(), sessionID, action)
		if err != nil {
			logger.Error("Failed to apply cart action", slog.String("action", string(action.Type)), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NewCartSnapshot(cart))
	}
}

// GetItemCount godoc
//	@Summary	Count the items in the cart
//	@Tags		Cart
//	@Produce	json
//	@Success	200	{object}	map[string]int			"Sum of quantities"
//	@Failure	500	{object}	response.ErrorResponse	"Storage error"
//	@Router		/cart/count [get]
func (h *CartHandler) GetItemCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		count, err := h.cartService.GetTotalItemCount(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to count cart items", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]int{"itemCount": count})
	}
}
