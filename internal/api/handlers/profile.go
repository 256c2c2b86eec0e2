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

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type ProfileHandler struct {
	profileService service.ProfileService
	validator      *validator.Validate
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, validator: validation.New()}
}

// GetDashboard godoc
//	@Summary		Get the profile dashboard
//	@Description	Returns the signed-in user with order and favorite counts and the three most recent orders.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	models.Dashboard		"Dashboard"
//	@Failure		401	{object}	response.ErrorResponse	"Nobody is signed in"
//	@Router			/profile [get]
func (h *ProfileHandler) GetDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		dashboard, err := h.profileService.GetDashboard(r.Context(), sessionID)
		if err != nil {
			logger.Warn("Failed to load dashboard", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, dashboard)
	}
}

// UpdatePersonalInfo godoc
//	@Summary	Update personal details
//	@Tags		Profile
//	@Accept		json
//	@Produce	json
//	@Param		details	body		models.UpdatePersonalInfoRequest	true	"Name, email and phone"
//	@Success	200		{object}	models.UserSession					"Updated user"
//	@Failure	400		{object}	response.ErrorResponse				"Validation error"
//	@Failure	401		{object}	response.ErrorResponse				"Nobody is signed in"
//	@Router		/profile [put]
func (h *ProfileHandler) UpdatePersonalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.UpdatePersonalInfoRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.profileService.UpdatePersonalInfo(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to update personal info", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// UpdateNotifications godoc
//	@Summary		Update notification preferences
//	@Description	Only the flags present in the body change.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			preferences	body		models.UpdateNotificationsRequest	true	"Notification flags"
//	@Success		200			{object}	models.UserSession					"Updated user"
//	@Failure		401			{object}	response.ErrorResponse				"Nobody is signed in"
//	@Router			/profile/notifications [put]
func (h *ProfileHandler) UpdateNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, _, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.UpdateNotificationsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.profileService.UpdateNotifications(r.Context(), sessionID, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// ListOrders godoc
//	@Summary	List past orders
//	@Tags		Profile
//	@Produce	json
//	@Param		status		query		string						false	"all, pending or delivered"
//	@Param		page		query		int							false	"Page number"	default(1)
//	@Param		pageSize	query		int							false	"Page size"		default(10)
//	@Success	200			{object}	models.PaginatedResponse	"Orders, newest first"
//	@Failure	400			{object}	response.ErrorResponse		"Invalid query"
//	@Router		/profile/orders [get]
func (h *ProfileHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		page, err := queryInt(r, "page", defaultPage)
		if err != nil {
			response.Error(w, err)
			return
		}

		pageSize, err := queryInt(r, "pageSize", defaultPageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		query := models.OrderListQuery{
			Status:   r.URL.Query().Get("status"),
			Page:     page,
			PageSize: pageSize,
		}

		if err := utils.ValidateStruct(h.validator, query); err != nil {
			response.Error(w, err)
			return
		}

		orders, err := h.profileService.ListOrders(r.Context(), sessionID, query)
		if err != nil {
			logger.Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

// GetOrder godoc
//	@Summary	Get a past order
//	@Tags		Profile
//	@Produce	json
//	@Param		id	path		string					true	"Order id"
//	@Success	200	{object}	models.OrderRecord		"Order"
//	@Failure	404	{object}	response.ErrorResponse	"Unknown order"
//	@Router		/profile/orders/{id} [get]
func (h *ProfileHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, _, ok := requireSession(w, r)
		if !ok {
			return
		}

		order, err := h.profileService.GetOrder(r.Context(), sessionID, r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// UpdateOrderStatus godoc
//	@Summary		Mark an order delivered
//	@Description	Orders only move from pending to delivered.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Order id"
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New status"
//	@Success		200		{object}	models.OrderRecord				"Updated order"
//	@Failure		404		{object}	response.ErrorResponse			"Unknown order"
//	@Failure		409		{object}	response.ErrorResponse			"Status cannot go back"
//	@Router			/profile/orders/{id}/status [patch]
func (h *ProfileHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		id := r.PathValue("id")

		order, err := h.profileService.UpdateOrderStatus(r.Context(), sessionID, id, req.Status)
		if err != nil {
			logger.Warn("Failed to update order status", slog.String("orderId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// Reorder godoc
//	@Summary		Reorder a past order
//	@Description	Adds the order's items to the cart at today's prices. Items no longer on the menu are skipped.
//	@Tags			Profile
//	@Produce		json
//	@Param			id	path		string					true	"Order id"
//	@Success		200	{object}	models.ReorderResponse	"Added and skipped items with the updated cart"
//	@Failure		404	{object}	response.ErrorResponse	"Unknown order"
//	@Router			/profile/orders/{id}/reorder [post]
func (h *ProfileHandler) Reorder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		resp, err := h.profileService.Reorder(r.Context(), sessionID, r.PathValue("id"))
		if err != nil {
			logger.Warn("Reorder failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// ListFavorites godoc
//	@Summary	List favorite items
//	@Tags		Profile
//	@Produce	json
//	@Success	200	{array}	models.Favorite	"Favorites"
//	@Router		/profile/favorites [get]
func (h *ProfileHandler) ListFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		favorites, err := h.profileService.ListFavorites(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to list favorites", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, favorites)
	}
}

// AddFavorite godoc
//	@Summary	Add a favorite
//	@Tags		Profile
//	@Accept		json
//	@Produce	json
//	@Param		favorite	body		models.AddFavoriteRequest	true	"Menu item id"
//	@Success	201			{array}		models.Favorite				"Favorites"
//	@Failure	404			{object}	response.ErrorResponse		"Unknown menu item"
//	@Router		/profile/favorites [post]
func (h *ProfileHandler) AddFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.AddFavoriteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		favorites, err := h.profileService.AddFavorite(r.Context(), sessionID, req.ItemID)
		if err != nil {
			logger.Warn("Failed to add favorite", slog.String("itemId", req.ItemID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, favorites)
	}
}

// RemoveFavorite godoc
//	@Summary	Remove a favorite
//	@Tags		Profile
//	@Produce	json
//	@Param		id	path		string					true	"Menu item id"
//	@Success	200	{array}		models.Favorite			"Favorites"
//	@Failure	404	{object}	response.ErrorResponse	"Not a favorite"
//	@Router		/profile/favorites/{id} [delete]
func (h *ProfileHandler) RemoveFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, _, ok := requireSession(w, r)
		if !ok {
			return
		}

		favorites, err := h.profileService.RemoveFavorite(r.Context(), sessionID, r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, favorites)
	}
}

// AddFavoritesToCart godoc
//	@Summary	Add every favorite to the cart
//	@Tags		Profile
//	@Produce	json
//	@Success	200	{object}	models.ReorderResponse	"Added and skipped items with the updated cart"
//	@Router		/profile/favorites/cart [post]
func (h *ProfileHandler) AddFavoritesToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		resp, err := h.profileService.AddFavoritesToCart(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to add favorites to cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

// ListAddresses godoc
//	@Summary	List saved addresses
//	@Tags		Profile
//	@Produce	json
//	@Success	200	{array}	models.Address	"Addresses"
//	@Router		/profile/addresses [get]
func (h *ProfileHandler) ListAddresses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		addresses, err := h.profileService.ListAddresses(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to list addresses", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// AddAddress godoc
//	@Summary		Save an address
//	@Description	The first address saved becomes the default.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			address	body		models.Address			true	"Address"
//	@Success		201		{array}		models.Address			"Addresses"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Router			/profile/addresses [post]
func (h *ProfileHandler) AddAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.Address
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		addresses, err := h.profileService.AddAddress(r.Context(), sessionID, &req)
		if err != nil {
			logger.Error("Failed to save address", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, addresses)
	}
}

// DeleteAddress godoc
//	@Summary	Delete a saved address
//	@Tags		Profile
//	@Produce	json
//	@Param		index	path		int						true	"Address position"
//	@Success	200		{array}		models.Address			"Addresses"
//	@Failure	404		{object}	response.ErrorResponse	"No address at that position"
//	@Router		/profile/addresses/{index} [delete]
func (h *ProfileHandler) DeleteAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, _, ok := requireSession(w, r)
		if !ok {
			return
		}

		index, err := pathIndex(r, "index")
		if err != nil {
			response.Error(w, err)
			return
		}

		addresses, err := h.profileService.DeleteAddress(r.Context(), sessionID, index)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}

// SetDefaultAddress godoc
//	@Summary	Make an address the default
//	@Tags		Profile
//	@Produce	json
//	@Param		index	path		int						true	"Address position"
//	@Success	200		{array}		models.Address			"Addresses"
//	@Failure	404		{object}	response.ErrorResponse	"No address at that position"
//	@Router		/profile/addresses/{index}/default [put]
func (h *ProfileHandler) SetDefaultAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, _, ok := requireSession(w, r)
		if !ok {
			return
		}

		index, err := pathIndex(r, "index")
		if err != nil {
			response.Error(w, err)
			return
		}

		addresses, err := h.profileService.SetDefaultAddress(r.Context(), sessionID, index)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, addresses)
	}
}
