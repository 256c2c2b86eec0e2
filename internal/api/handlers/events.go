package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	service "github.com/aaravmahajanofficial/savory-restaurant/internal/services"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils/response"
)

const keepAliveInterval = 25 * time.Second

// CartSubscriber streams the snapshots published for one session.
type CartSubscriber interface {
	Subscribe(ctx context.Context, sessionID string) (<-chan models.CartSnapshot, error)
}

type EventsHandler struct {
	subscriber  CartSubscriber
	cartService service.CartService
}

// NewEventsHandler accepts a nil subscriber; the stream then answers 503.
func NewEventsHandler(subscriber CartSubscriber, cartService service.CartService) *EventsHandler {
	return &EventsHandler{subscriber: subscriber, cartService: cartService}
}

// StreamCart godoc
//	@Summary		Stream cart changes
//	@Description	Server-Sent Events stream. The current cart is sent first, then a full snapshot after every change.
//	@Tags			Cart
//	@Produce		text/event-stream
//	@Success		200	{object}	models.CartSnapshot		"One snapshot per event"
//	@Failure		503	{object}	response.ErrorResponse	"Cart events need Redis"
//	@Router			/cart/events [get]
func (h *EventsHandler) StreamCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		if h.subscriber == nil {
			response.Error(w, errors.NewAppError(errors.ErrCodeServiceUnavailable, "Cart events are not available", http.StatusServiceUnavailable))
			return
		}

		ctx := r.Context()

		// subscribe before reading the cart so no change falls between the two
		snapshots, err := h.subscriber.Subscribe(ctx, sessionID)
		if err != nil {
			logger.Error("Failed to subscribe to cart events", slog.Any("error", err))
			response.Error(w, errors.InternalError("Failed to subscribe to cart events").WithError(err))
			return
		}

		cart, err := h.cartService.GetCart(ctx, sessionID)
		if err != nil {
			logger.Error("Failed to load cart for stream", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		rc := http.NewResponseController(w)

		if err := writeEvent(w, rc, models.NewCartSnapshot(cart)); err != nil {
			logger.Warn("Failed to write cart event", slog.Any("error", err))
			return
		}

		logger.Debug("Cart event stream opened")

		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Debug("Cart event stream closed")
				return
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
					return
				}
				if err := rc.Flush(); err != nil {
					return
				}
			case snapshot, ok := <-snapshots:
				if !ok {
					return
				}
				if err := writeEvent(w, rc, snapshot); err != nil {
					logger.Warn("Failed to write cart event", slog.Any("error", err))
					return
				}
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, rc *http.ResponseController, snapshot models.CartSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "event: cart\ndata: %s\n\n", data); err != nil {
		return err
	}

	return rc.Flush()
}
