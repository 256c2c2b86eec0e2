// Package api assembles the HTTP surface.
package api

import (
	"net/http"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/handlers"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Cart        *handlers.CartHandler
	Checkout    *handlers.CheckoutHandler
	Menu        *handlers.MenuHandler
	Auth        *handlers.AuthHandler
	Profile     *handlers.ProfileHandler
	Preferences *handlers.PreferencesHandler
	Events      *handlers.EventsHandler
}

// NewRouter registers every route. Routes under /api/v1 run inside a session;
// the operational endpoints do not.
func NewRouter(h *Handlers, sessions *middleware.SessionManager, health http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	api := func(pattern string, handler http.HandlerFunc) {
		mux.Handle(pattern, sessions.Handle(handler))
	}

	// Cart
	api("GET /api/v1/cart", h.Cart.GetCart())
	api("DELETE /api/v1/cart", h.Cart.ClearCart())
	api("POST /api/v1/cart/items", h.Cart.AddItem())
	api("PUT /api/v1/cart/items", h.Cart.UpdateQuantity())
	api("DELETE /api/v1/cart/items/{name}", h.Cart.RemoveItem())
	api("POST /api/v1/cart/actions", h.Cart.Dispatch())
	api("GET /api/v1/cart/count", h.Cart.GetItemCount())
	api("GET /api/v1/cart/events", h.Events.StreamCart())

	// Checkout
	api("GET /api/v1/checkout", h.Checkout.GetCheckout())
	api("POST /api/v1/checkout/next", h.Checkout.NextStep())
	api("POST /api/v1/checkout/prev", h.Checkout.PrevStep())
	api("PUT /api/v1/checkout/order-type", h.Checkout.SetOrderType())
	api("PUT /api/v1/checkout/payment-method", h.Checkout.SetPaymentMethod())
	api("POST /api/v1/checkout/place-order", h.Checkout.PlaceOrder())
	api("POST /api/v1/checkout/reset", h.Checkout.ResetCheckout())

	// Menu
	api("GET /api/v1/menu", h.Menu.GetMenu())
	api("GET /api/v1/menu/{id}", h.Menu.GetMenuItem())

	// Auth
	api("POST /api/v1/auth/signin", h.Auth.SignIn())
	api("POST /api/v1/auth/signup", h.Auth.SignUp())
	api("POST /api/v1/auth/signout", h.Auth.SignOut())
	api("GET /api/v1/auth/me", h.Auth.CurrentUser())
	api("POST /api/v1/auth/password-strength", h.Auth.PasswordStrength())

	// Profile
	api("GET /api/v1/profile", h.Profile.GetDashboard())
	api("PUT /api/v1/profile", h.Profile.UpdatePersonalInfo())
	api("PUT /api/v1/profile/notifications", h.Profile.UpdateNotifications())
	api("GET /api/v1/profile/orders", h.Profile.ListOrders())
	api("GET /api/v1/profile/orders/{id}", h.Profile.GetOrder())
	api("PATCH /api/v1/profile/orders/{id}/status", h.Profile.UpdateOrderStatus())
	api("POST /api/v1/profile/orders/{id}/reorder", h.Profile.Reorder())
	api("GET /api/v1/profile/favorites", h.Profile.ListFavorites())
	api("POST /api/v1/profile/favorites", h.Profile.AddFavorite())
	api("DELETE /api/v1/profile/favorites/{id}", h.Profile.RemoveFavorite())
	api("POST /api/v1/profile/favorites/cart", h.Profile.AddFavoritesToCart())
	api("GET /api/v1/profile/addresses", h.Profile.ListAddresses())
	api("POST /api/v1/profile/addresses", h.Profile.AddAddress())
	api("DELETE /api/v1/profile/addresses/{index}", h.Profile.DeleteAddress())
	api("PUT /api/v1/profile/addresses/{index}/default", h.Profile.SetDefaultAddress())

	// Preferences
	api("GET /api/v1/preferences", h.Preferences.GetPreferences())
	api("POST /api/v1/preferences/theme/toggle", h.Preferences.ToggleTheme())
	api("PUT /api/v1/preferences/color-theme", h.Preferences.SetColorTheme())

	// Ops
	mux.Handle("GET /health", health)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return mux
}
