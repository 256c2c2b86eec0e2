package service

import (
	"context"
	"html"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/metrics"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	repository "github.com/aaravmahajanofficial/savory-restaurant/internal/repositories"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/singleflight"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (models.Cart, error)
	Dispatch(ctx context.Context, sessionID string, action models.CartAction) (models.Cart, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (models.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (models.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, name string) (models.Cart, error)
	Clear(ctx context.Context, sessionID string) error
	RemoveOrdered(ctx context.Context, sessionID string, ordered []models.CartLineItem) error
	GetTotalItemCount(ctx context.Context, sessionID string) (int, error)
}

// CartEventPublisher is told about every cart that reached the store.
type CartEventPublisher interface {
	Publish(ctx context.Context, sessionID string, snapshot models.CartSnapshot) error
}

type cartService struct {
	repo      repository.CartRepository
	events    CartEventPublisher
	sanitizer *bluemonday.Policy
	reads     singleflight.Group
}

// NewCartService accepts a nil publisher when no view listens for changes.
func NewCartService(repo repository.CartRepository, events CartEventPublisher) CartService {
	return &cartService{
		repo:      repo,
		events:    events,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// GetCart re-reads the store on every call. Concurrent reads for one session share a single load.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (models.Cart, error) {
	// the load is shared, so one caller going away must not fail the others
	shared := context.WithoutCancel(ctx)

	v, err, _ := s.reads.Do(sessionID, func() (any, error) {
		return s.load(shared, sessionID)
	})
	if err != nil {
		return models.Cart{}, err
	}

	return v.(models.Cart), nil
}

// Dispatch applies one action to the stored cart, persists the result and notifies listeners.
func (s *cartService) Dispatch(ctx context.Context, sessionID string, action models.CartAction) (models.Cart, error) {

	if action.Type != models.ActionClear {
		action.Name = s.sanitizeName(action.Name)
		if action.Name == "" {
			return models.Cart{}, appErrors.AddValidationError("name", "This field is required")
		}
	}

	if action.Type == models.ActionAddItem && action.UnitPrice.IsNegative() {
		return models.Cart{}, appErrors.AddValidationError("price", "Must be zero or more")
	}

	current, err := s.load(ctx, sessionID)
	if err != nil {
		return models.Cart{}, err
	}

	next := current.Apply(action)

	if err := s.repo.SaveCart(ctx, sessionID, next); err != nil {
		return models.Cart{}, appErrors.StorageError("Failed to update cart").WithError(err)
	}

	metrics.RecordCartAction(string(action.Type))
	s.publish(ctx, sessionID, next)

	return next, nil
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (models.Cart, error) {
	return s.Dispatch(ctx, sessionID, models.CartAction{
		Type:      models.ActionAddItem,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, req *models.UpdateQuantityRequest) (models.Cart, error) {
	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	return s.Dispatch(ctx, sessionID, models.CartAction{
		Type:     models.ActionUpdateQuantity,
		Name:     req.Name,
		Quantity: quantity,
	})
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, name string) (models.Cart, error) {
	return s.Dispatch(ctx, sessionID, models.CartAction{Type: models.ActionRemoveItem, Name: name})
}

func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	_, err := s.Dispatch(ctx, sessionID, models.CartAction{Type: models.ActionClear})
	return err
}

// RemoveOrdered takes a placed order's lines out of the cart in one read-modify-write.
func (s *cartService) RemoveOrdered(ctx context.Context, sessionID string, ordered []models.CartLineItem) error {

	current, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	next := current.Without(ordered)

	if err := s.repo.SaveCart(ctx, sessionID, next); err != nil {
		return appErrors.StorageError("Failed to update cart").WithError(err)
	}

	metrics.RecordCartAction("remove_ordered")
	s.publish(ctx, sessionID, next)

	return nil
}

func (s *cartService) GetTotalItemCount(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	return cart.ItemCount(), nil
}

// load treats a corrupt stored cart as empty and writes the empty cart back.
func (s *cartService) load(ctx context.Context, sessionID string) (models.Cart, error) {

	cart, err := s.repo.GetCart(ctx, sessionID)
	if err == nil {
		return cart, nil
	}

	if !isCorrupt(err) {
		return models.Cart{}, appErrors.StorageError("Failed to load cart").WithError(err)
	}

	recoverCorrupt(ctx, storage.KeyCart, err)

	if err := s.repo.SaveCart(ctx, sessionID, models.Cart{}); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to reset corrupt cart", slog.Any("error", err))
	}

	return models.Cart{}, nil
}

// sanitizeName strips markup but keeps plain text such as "Mac & Cheese" unescaped.
func (s *cartService) sanitizeName(name string) string {
	return strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(name)))
}

func (s *cartService) publish(ctx context.Context, sessionID string, cart models.Cart) {
	if s.events == nil {
		return
	}

	if err := s.events.Publish(ctx, sessionID, models.NewCartSnapshot(cart)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to publish cart event", slog.Any("error", err))
	}
}
