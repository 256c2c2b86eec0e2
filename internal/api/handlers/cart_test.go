package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/services/mocks"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func burgerCart() models.Cart {
	return models.Cart{Items: []models.CartLineItem{
		{Name: "Signature Burger", UnitPrice: decimal.RequireFromString("18.99"), Quantity: 2},
	}}
}

func TestGetCart(t *testing.T) {
	t.Run("Success - cart with totals", func(t *testing.T) {
		// Arrange
		mockCheckoutService := new(mocks.CheckoutService)
		cartHandler := handlers.NewCartHandler(new(mocks.CartService), mockCheckoutService)

		checkout := &models.CheckoutResponse{
			State: models.CheckoutState{Step: models.StepReview, OrderType: models.OrderTypePickup},
			Cart:  models.NewCartSnapshot(burgerCart()),
			Totals: models.OrderTotals{
				Subtotal: decimal.RequireFromString("37.98"),
				Total:    decimal.RequireFromString("41.2083"),
			},
		}
		checkout.Display = checkout.Totals.Display()

		mockCheckoutService.On("GetCheckout", mock.Anything, testSessionID).Return(checkout, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		resp := decodeEnvelope(t, rr)
		assert.True(t, resp.Success)

		got := decodeData[models.CartResponse](t, resp)
		assert.Equal(t, 2, got.ItemCount)
		assert.Equal(t, models.OrderTypePickup, got.OrderType)
		assert.Equal(t, "$41.21", got.Display.Total)

		mockCheckoutService.AssertExpectations(t)
	})

	t.Run("Failure - no session", func(t *testing.T) {
		// Arrange
		mockCheckoutService := new(mocks.CheckoutService)
		cartHandler := handlers.NewCartHandler(new(mocks.CartService), mockCheckoutService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/cart", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, decodeEnvelope(t, rr).Error.Code)
		mockCheckoutService.AssertNotCalled(t, "GetCheckout", mock.Anything, mock.Anything)
	})
}

func TestAddItem(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService, new(mocks.CheckoutService))

	t.Run("Success - item added", func(t *testing.T) {
		// Arrange
		addReq := models.AddItemRequest{Name: "Signature Burger", UnitPrice: decimal.RequireFromString("18.99")}

		mockCartService.On("AddItem", mock.Anything, testSessionID, mock.MatchedBy(func(r *models.AddItemRequest) bool {
			return r.Name == "Signature Burger" && r.UnitPrice.Equal(decimal.RequireFromString("18.99"))
		})).Return(burgerCart(), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", jsonBody(t, addReq), testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		snapshot := decodeData[models.CartSnapshot](t, decodeEnvelope(t, rr))
		assert.Equal(t, 2, snapshot.ItemCount)
		assert.Equal(t, "37.98", snapshot.Subtotal.StringFixed(2))

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - blank name", func(t *testing.T) {
		// Arrange
		body := strings.NewReader(`{"name":"   ","price":"4.00"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		resp := decodeEnvelope(t, rr)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Fields, "name")
	})

	t.Run("Failure - negative price", func(t *testing.T) {
		// Arrange
		body := strings.NewReader(`{"name":"Soup","price":"-1"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeEnvelope(t, rr).Error.Fields, "price")
	})

	t.Run("Failure - storage error", func(t *testing.T) {
		// Arrange
		mockCartService.On("AddItem", mock.Anything, testSessionID, mock.Anything).
			Return(models.Cart{}, appErrors.StorageError("Failed to save cart")).Once()

		body := strings.NewReader(`{"name":"Soup","price":"4.00"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, appErrors.ErrCodeStorageError, decodeEnvelope(t, rr).Error.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestUpdateQuantity(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService, new(mocks.CheckoutService))

	t.Run("Success - zero quantity is accepted", func(t *testing.T) {
		// Arrange
		mockCartService.On("UpdateQuantity", mock.Anything, testSessionID, mock.MatchedBy(func(r *models.UpdateQuantityRequest) bool {
			return r.Name == "Signature Burger" && r.Quantity != nil && *r.Quantity == 0
		})).Return(models.Cart{}, nil).Once()

		body := strings.NewReader(`{"name":"Signature Burger","quantity":0}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/cart/items", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		snapshot := decodeData[models.CartSnapshot](t, decodeEnvelope(t, rr))
		assert.Empty(t, snapshot.Items)
		assert.Equal(t, 0, snapshot.ItemCount)

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - missing quantity", func(t *testing.T) {
		// Arrange
		body := strings.NewReader(`{"name":"Signature Burger"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/cart/items", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeEnvelope(t, rr).Error.Fields, "quantity")
	})
}

func TestRemoveItem(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService, new(mocks.CheckoutService))

	t.Run("Success - name from path", func(t *testing.T) {
		// Arrange
		mockCartService.On("RemoveItem", mock.Anything, testSessionID, "Craft Beer").Return(burgerCart(), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart/items/Craft%20Beer", nil, testSessionID,
			map[string]string{"name": "Craft Beer"})
		rr := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestClearCart(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService, new(mocks.CheckoutService))

	t.Run("Success - empty snapshot", func(t *testing.T) {
		// Arrange
		mockCartService.On("Clear", mock.Anything, testSessionID).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.ClearCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		snapshot := decodeData[models.CartSnapshot](t, decodeEnvelope(t, rr))
		assert.NotNil(t, snapshot.Items)
		assert.Empty(t, snapshot.Items)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - unexpected error is internal", func(t *testing.T) {
		// Arrange
		mockCartService.On("Clear", mock.Anything, testSessionID).Return(errors.New("boom")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.ClearCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, appErrors.ErrCodeInternal, decodeEnvelope(t, rr).Error.Code)
	})
}

func TestDispatch(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService, new(mocks.CheckoutService))

	t.Run("Success - clear needs no name", func(t *testing.T) {
		// Arrange
		mockCartService.On("Dispatch", mock.Anything, testSessionID, mock.MatchedBy(func(a models.CartAction) bool {
			return a.Type == models.ActionClear
		})).Return(models.Cart{}, nil).Once()

		body := strings.NewReader(`{"type":"clear"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/actions", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.Dispatch().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - unknown action type", func(t *testing.T) {
		// Arrange
		body := strings.NewReader(`{"type":"explode","name":"Soup"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/actions", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.Dispatch().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeEnvelope(t, rr).Error.Fields, "type")
	})

	t.Run("Failure - add without a name", func(t *testing.T) {
		// Arrange
		body := strings.NewReader(`{"type":"add_item","price":"3.00"}`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/actions", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.Dispatch().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeEnvelope(t, rr).Error.Fields, "name")
	})

	t.Run("Failure - malformed JSON", func(t *testing.T) {
		// Arrange
		body := strings.NewReader(`{"type":`)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/actions", body, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.Dispatch().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeBadRequest, decodeEnvelope(t, rr).Error.Code)
	})
}

func TestGetItemCount(t *testing.T) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService, new(mocks.CheckoutService))

	t.Run("Success - sum of quantities", func(t *testing.T) {
		// Arrange
		mockCartService.On("GetTotalItemCount", mock.Anything, testSessionID).Return(3, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart/count", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		cartHandler.GetItemCount().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, map[string]int{"itemCount": 3}, decodeData[map[string]int](t, decodeEnvelope(t, rr)))
		mockCartService.AssertExpectations(t)
	})
}
