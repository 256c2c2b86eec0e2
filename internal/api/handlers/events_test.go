package handlers_test

import (
	"context"
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeSubscriber struct {
	snapshots []models.CartSnapshot
	err       error
}

// Subscribe replays the queued snapshots and then closes the stream.
func (f *fakeSubscriber) Subscribe(_ context.Context, _ string) (<-chan models.CartSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}

	ch := make(chan models.CartSnapshot, len(f.snapshots))
	for _, s := range f.snapshots {
		ch <- s
	}
	close(ch)

	return ch, nil
}

func TestStreamCart(t *testing.T) {
	t.Run("Success - initial cart then published snapshots", func(t *testing.T) {
		// Arrange
		mockCartService := new(mocks.CartService)
		subscriber := &fakeSubscriber{snapshots: []models.CartSnapshot{models.NewCartSnapshot(models.Cart{})}}
		eventsHandler := handlers.NewEventsHandler(subscriber, mockCartService)

		mockCartService.On("GetCart", mock.Anything, testSessionID).Return(burgerCart(), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart/events", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		eventsHandler.StreamCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
		assert.True(t, rr.Flushed)

		events := strings.Split(strings.TrimSpace(rr.Body.String()), "\n\n")
		require.Len(t, events, 2)
		assert.True(t, strings.HasPrefix(events[0], "event: cart\ndata: "))
		assert.Contains(t, events[0], `"itemCount":2`)
		assert.Contains(t, events[1], `"itemCount":0`)

		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - no subscriber configured", func(t *testing.T) {
		// Arrange
		eventsHandler := handlers.NewEventsHandler(nil, new(mocks.CartService))

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart/events", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		eventsHandler.StreamCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, appErrors.ErrCodeServiceUnavailable, decodeEnvelope(t, rr).Error.Code)
	})

	t.Run("Failure - subscribe error", func(t *testing.T) {
		// Arrange
		mockCartService := new(mocks.CartService)
		eventsHandler := handlers.NewEventsHandler(&fakeSubscriber{err: errors.New("redis down")}, mockCartService)

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart/events", nil, testSessionID, nil)
		rr := httptest.NewRecorder()

		// Act
		eventsHandler.StreamCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockCartService.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})

	t.Run("Success - cancelled request ends the stream", func(t *testing.T) {
		// Arrange
		mockCartService := new(mocks.CartService)
		eventsHandler := handlers.NewEventsHandler(openSubscriber{}, mockCartService)

		mockCartService.On("GetCart", mock.Anything, testSessionID).Return(models.Cart{}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart/events", nil, testSessionID, nil)
		ctx, cancel := context.WithCancel(req.Context())
		req = req.WithContext(ctx)
		cancel()

		rr := httptest.NewRecorder()

		// Act
		eventsHandler.StreamCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, strings.Count(rr.Body.String(), "event: cart"))
	})
}

// openSubscriber never publishes and never closes.
type openSubscriber struct{}

func (openSubscriber) Subscribe(_ context.Context, _ string) (<-chan models.CartSnapshot, error) {
	return make(chan models.CartSnapshot), nil
}
