// Package events fans cart snapshots out to the views watching a session.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/redis/go-redis/v9"
)

const channelPrefix = "cart-events:"

func Channel(sessionID string) string {
	return channelPrefix + sessionID
}

// Broker publishes every persisted cart change on a per-session Redis channel.
type Broker struct {
	client *redis.Client
}

func NewBroker(client *redis.Client) *Broker {
	return &Broker{client: client}
}

func (b *Broker) Publish(ctx context.Context, sessionID string, snapshot models.CartSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}

	if err := b.client.Publish(ctx, Channel(sessionID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish cart snapshot: %w", err)
	}

	return nil
}

// Subscribe delivers snapshots for the session until ctx is done, then closes the channel.
// It returns only after Redis has confirmed the subscription.
func (b *Broker) Subscribe(ctx context.Context, sessionID string) (<-chan models.CartSnapshot, error) {

	pubsub := b.client.Subscribe(ctx, Channel(sessionID))

	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to cart events: %w", err)
	}

	logger := middleware.LoggerFromContext(ctx)
	out := make(chan models.CartSnapshot)

	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var snapshot models.CartSnapshot
				if err := json.Unmarshal([]byte(msg.Payload), &snapshot); err != nil {
					logger.Warn("Dropping malformed cart event", slog.String("channel", msg.Channel), slog.Any("error", err))
					continue
				}

				select {
				case out <- snapshot:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
