package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/services/mocks"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder() *models.OrderRecord {
	return &models.OrderRecord{
		ID:        "order-1",
		Number:    "#48213",
		Items:     []string{"Signature Burger"},
		Total:     decimal.RequireFromString("24.59"),
		Status:    models.OrderStatusPending,
		OrderType: models.OrderTypeDelivery,
		CreatedAt: time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC),
	}
}

func homeAddress() models.Address {
	return models.Address{Label: "Home", Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", IsDefault: true}
}

func TestGetDashboard(t *testing.T) {
	mockProfileService := new(mocks.ProfileService)
	profileHandler := handlers.NewProfileHandler(mockProfileService)

	t.Run("Success - dashboard", func(t *testing.T) {
		// Arrange
		dashboard := &models.Dashboard{
			User:         janeDoe(),
			Stats:        models.ProfileStats{TotalOrders: 1, FavoriteItems: 2, MemberSince: 2025},
			RecentOrders: []models.OrderRecord{*pendingOrder()},
		}
		mockProfileService.On("GetDashboard", mock.Anything, testSessionID).Return(dashboard, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/profile", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.GetDashboard().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		got := decodeData[models.Dashboard](t, decodeEnvelope(t, rr))
		assert.Equal(t, 2025, got.Stats.MemberSince)
		require.Len(t, got.RecentOrders, 1)
		assert.Equal(t, "#48213", got.RecentOrders[0].Number)

		mockProfileService.AssertExpectations(t)
	})

	t.Run("Failure - signed out", func(t *testing.T) {
		// Arrange
		mockProfileService.On("GetDashboard", mock.Anything, testSessionID).
			Return(nil, appErrors.UnauthorizedError("Sign in to view your profile")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/profile", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.GetDashboard().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestUpdatePersonalInfo(t *testing.T) {
	t.Run("Success - details saved", func(t *testing.T) {
		// Arrange
		mockProfileService := new(mocks.ProfileService)
		profileHandler := handlers.NewProfileHandler(mockProfileService)

		updated := janeDoe()
		updated.Phone = "(555) 123-4567"

		mockProfileService.On("UpdatePersonalInfo", mock.Anything, testSessionID, mock.MatchedBy(func(r *models.UpdatePersonalInfoRequest) bool {
			return r.FirstName == "Jane" && r.Phone == "(555) 123-4567"
		})).Return(updated, nil).Once()

		body := strings.NewReader(`{"firstName":"Jane","lastName":"Doe","email":"jane.doe@example.com","phone":"(555) 123-4567"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/profile", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.UpdatePersonalInfo().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "(555) 123-4567", decodeData[models.UserSession](t, decodeEnvelope(t, rr)).Phone)
		mockProfileService.AssertExpectations(t)
	})

	t.Run("Failure - broken fields reported", func(t *testing.T) {
		// Arrange
		mockProfileService := new(mocks.ProfileService)
		profileHandler := handlers.NewProfileHandler(mockProfileService)

		body := strings.NewReader(`{"firstName":"  ","lastName":"Doe","email":"jane@","phone":"555-1234"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/profile", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.UpdatePersonalInfo().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		fields := decodeEnvelope(t, rr).Error.Fields
		assert.Contains(t, fields, "firstName")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "phone")
		assert.NotContains(t, fields, "lastName")
		mockProfileService.AssertNotCalled(t, "UpdatePersonalInfo", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateNotifications(t *testing.T) {
	t.Run("Success - flags passed through", func(t *testing.T) {
		// Arrange
		mockProfileService := new(mocks.ProfileService)
		profileHandler := handlers.NewProfileHandler(mockProfileService)

		updated := janeDoe()
		updated.Notifications.SMSNotifications = true

		mockProfileService.On("UpdateNotifications", mock.Anything, testSessionID, mock.MatchedBy(func(r *models.UpdateNotificationsRequest) bool {
			return r.SMSNotifications != nil && *r.SMSNotifications && r.EmailNotifications == nil && r.Newsletter == nil
		})).Return(updated, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/profile/notifications", strings.NewReader(`{"smsNotifications":true}`), testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.UpdateNotifications().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeData[models.UserSession](t, decodeEnvelope(t, rr)).Notifications.SMSNotifications)
		mockProfileService.AssertExpectations(t)
	})

	t.Run("Failure - signed out", func(t *testing.T) {
		// Arrange
		mockProfileService := new(mocks.ProfileService)
		profileHandler := handlers.NewProfileHandler(mockProfileService)

		mockProfileService.On("UpdateNotifications", mock.Anything, testSessionID, mock.Anything).
			Return(nil, appErrors.UnauthorizedError("Please sign in to view your profile")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/profile/notifications", strings.NewReader(`{"newsletter":false}`), testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.UpdateNotifications().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, decodeEnvelope(t, rr).Error.Code)
	})
}

func TestListOrders(t *testing.T) {
	mockProfileService := new(mocks.ProfileService)
	profileHandler := handlers.NewProfileHandler(mockProfileService)

	t.Run("Success - defaults applied", func(t *testing.T) {
		// Arrange
		want := models.OrderListQuery{Page: 1, PageSize: 10}
		page := &models.PaginatedResponse{Data: []models.OrderRecord{*pendingOrder()}, Total: 1, Page: 1, PageSize: 10}
		mockProfileService.On("ListOrders", mock.Anything, testSessionID, want).Return(page, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/profile/orders", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.ListOrders().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, decodeData[models.PaginatedResponse](t, decodeEnvelope(t, rr)).Total)
		mockProfileService.AssertExpectations(t)
	})

	t.Run("Success - status and paging", func(t *testing.T) {
		// Arrange
		want := models.OrderListQuery{Status: "delivered", Page: 2, PageSize: 5}
		mockProfileService.On("ListOrders", mock.Anything, testSessionID, want).
			Return(&models.PaginatedResponse{Data: []models.OrderRecord{}, Page: 2, PageSize: 5}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/profile/orders?status=delivered&page=2&pageSize=5", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.ListOrders().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockProfileService.AssertExpectations(t)
	})

	tests := []struct {
		name      string
		target    string
		wantField string
	}{
		{name: "Failure - unknown status", target: "/api/v1/profile/orders?status=cancelled", wantField: "status"},
		{name: "Failure - page below one", target: "/api/v1/profile/orders?page=0", wantField: "page"},
		{name: "Failure - page size too large", target: "/api/v1/profile/orders?pageSize=500", wantField: "pageSize"},
		{name: "Failure - page is not a number", target: "/api/v1/profile/orders?page=two", wantField: "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := testutils.CreateTestRequestWithContext(http.MethodGet, tt.target, nil, testSessionID, nil)
			rr := httptest.NewRecorder()

			// Act
			profileHandler.ListOrders().ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, decodeEnvelope(t, rr).Error.Fields, tt.wantField)
		})
	}
}

func TestGetOrder(t *testing.T) {
	mockProfileService := new(mocks.ProfileService)
	profileHandler := handlers.NewProfileHandler(mockProfileService)

	t.Run("Failure - unknown order", func(t *testing.T) {
		// Arrange
		mockProfileService.On("GetOrder", mock.Anything, testSessionID, "missing").
			Return(nil, appErrors.NotFoundError("Order not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/profile/orders/missing", nil, testSessionID,
			map[string]string{"id": "missing"})
		rr := httptest.NewRecorder()

		// Act
		profileHandler.GetOrder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockProfileService.AssertExpectations(t)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	mockProfileService := new(mocks.ProfileService)
	profileHandler := handlers.NewProfileHandler(mockProfileService)

	t.Run("Success - delivered", func(t *testing.T) {
		// Arrange
		delivered := pendingOrder()
		delivered.Status = models.OrderStatusDelivered
		mockProfileService.On("UpdateOrderStatus", mock.Anything, testSessionID, "order-1", models.OrderStatusDelivered).
			Return(delivered, nil).Once()

		body := strings.NewReader(`{"status":"delivered"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/profile/orders/order-1/status", body, testSessionID,
			map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		// Act
		profileHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, models.OrderStatusDelivered, decodeData[models.OrderRecord](t, decodeEnvelope(t, rr)).Status)
		mockProfileService.AssertExpectations(t)
	})

	t.Run("Failure - delivered cannot go back", func(t *testing.T) {
		// Arrange
		mockProfileService.On("UpdateOrderStatus", mock.Anything, testSessionID, "order-1", models.OrderStatusPending).
			Return(nil, appErrors.InvalidTransitionError("Order status cannot move from delivered to pending")).Once()

		body := strings.NewReader(`{"status":"pending"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPatch, "/api/v1/profile/orders/order-1/status", body, testSessionID,
			map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		// Act
		profileHandler.UpdateOrderStatus().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestReorder(t *testing.T) {
	mockProfileService := new(mocks.ProfileService)
	profileHandler := handlers.NewProfileHandler(mockProfileService)

	t.Run("Success - skipped items reported", func(t *testing.T) {
		// Arrange
		resp := &models.ReorderResponse{
			Added:   []string{"Signature Burger"},
			Skipped: []string{"Seasonal Soup"},
			Cart:    models.NewCartSnapshot(burgerCart()),
		}
		mockProfileService.On("Reorder", mock.Anything, testSessionID, "order-1").Return(resp, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/profile/orders/order-1/reorder", nil, testSessionID,
			map[string]string{"id": "order-1"})
		rr := httptest.NewRecorder()

		// Act
		profileHandler.Reorder().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		got := decodeData[models.ReorderResponse](t, decodeEnvelope(t, rr))
		assert.Equal(t, []string{"Seasonal Soup"}, got.Skipped)
		assert.Equal(t, 2, got.Cart.ItemCount)

		mockProfileService.AssertExpectations(t)
	})
}

func TestFavorites(t *testing.T) {
	mockProfileService := new(mocks.ProfileService)
	profileHandler := handlers.NewProfileHandler(mockProfileService)

	favorites := []models.Favorite{{ItemID: "truffle-pizza", Name: "Truffle Pizza", Price: decimal.RequireFromString("22.99")}}

	t.Run("Success - list", func(t *testing.T) {
		// Arrange
		mockProfileService.On("ListFavorites", mock.Anything, testSessionID).Return(favorites, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/profile/favorites", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.ListFavorites().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeData[[]models.Favorite](t, decodeEnvelope(t, rr)), 1)
	})

	t.Run("Success - add", func(t *testing.T) {
		// Arrange
		mockProfileService.On("AddFavorite", mock.Anything, testSessionID, "truffle-pizza").Return(favorites, nil).Once()

		body := strings.NewReader(`{"itemId":"truffle-pizza"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/profile/favorites", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.AddFavorite().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - add without item id", func(t *testing.T) {
		// Arrange
		body := strings.NewReader(`{}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/profile/favorites", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.AddFavorite().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeEnvelope(t, rr).Error.Fields, "itemId")
	})

	t.Run("Failure - remove a missing favorite", func(t *testing.T) {
		// Arrange
		mockProfileService.On("RemoveFavorite", mock.Anything, testSessionID, "tiramisu").
			Return(nil, appErrors.NotFoundError("Favorite not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/profile/favorites/tiramisu", nil, testSessionID,
			map[string]string{"id": "tiramisu"})
		rr := httptest.NewRecorder()

		// Act
		profileHandler.RemoveFavorite().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Success - all favorites to cart", func(t *testing.T) {
		// Arrange
		resp := &models.ReorderResponse{Added: []string{"Truffle Pizza"}, Cart: models.NewCartSnapshot(models.Cart{})}
		mockProfileService.On("AddFavoritesToCart", mock.Anything, testSessionID).Return(resp, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/profile/favorites/cart", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.AddFavoritesToCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockProfileService.AssertExpectations(t)
	})
}

func TestAddresses(t *testing.T) {
	mockProfileService := new(mocks.ProfileService)
	profileHandler := handlers.NewProfileHandler(mockProfileService)

	addresses := []models.Address{homeAddress()}

	t.Run("Success - list", func(t *testing.T) {
		// Arrange
		mockProfileService.On("ListAddresses", mock.Anything, testSessionID).Return(addresses, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/profile/addresses", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.ListAddresses().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeData[[]models.Address](t, decodeEnvelope(t, rr))[0].IsDefault)
	})

	t.Run("Success - add", func(t *testing.T) {
		// Arrange
		mockProfileService.On("AddAddress", mock.Anything, testSessionID, mock.MatchedBy(func(a *models.Address) bool {
			return a.Label == "Home" && a.ZipCode == "62701"
		})).Return(addresses, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/profile/addresses", jsonBody(t, homeAddress()), testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.AddAddress().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - add with missing fields", func(t *testing.T) {
		// Arrange
		body := strings.NewReader(`{"label":"Work","street":"2 Side St"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/profile/addresses", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		profileHandler.AddAddress().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		fields := decodeEnvelope(t, rr).Error.Fields
		assert.Contains(t, fields, "city")
		assert.Contains(t, fields, "state")
		assert.Contains(t, fields, "zipCode")
	})

	t.Run("Success - delete by index", func(t *testing.T) {
		// Arrange
		mockProfileService.On("DeleteAddress", mock.Anything, testSessionID, 0).Return([]models.Address{}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/profile/addresses/0", nil, testSessionID,
			map[string]string{"index": "0"})
		rr := httptest.NewRecorder()

		// Act
		profileHandler.DeleteAddress().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - index is not a number", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/profile/addresses/home", nil, testSessionID,
			map[string]string{"index": "home"})
		rr := httptest.NewRecorder()

		// Act
		profileHandler.DeleteAddress().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeEnvelope(t, rr).Error.Fields, "index")
	})

	t.Run("Failure - set default out of range", func(t *testing.T) {
		// Arrange
		mockProfileService.On("SetDefaultAddress", mock.Anything, testSessionID, 4).
			Return(nil, appErrors.NotFoundError("Address not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/profile/addresses/4/default", nil, testSessionID,
			map[string]string{"index": "4"})
		rr := httptest.NewRecorder()

		// Act
		profileHandler.SetDefaultAddress().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockProfileService.AssertExpectations(t)
	})
}
