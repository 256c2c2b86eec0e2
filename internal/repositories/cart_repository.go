package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
)

type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) (models.Cart, error)
	SaveCart(ctx context.Context, sessionID string, cart models.Cart) error
}

type cartRepository struct {
	store storage.Store
}

func NewCartRepository(store storage.Store) CartRepository {
	return &cartRepository{store: store}
}

// GetCart returns an empty cart when none is stored. Values that decode but
// break the cart invariants are reported as storage.ErrCorrupt.
func (r *cartRepository) GetCart(ctx context.Context, sessionID string) (models.Cart, error) {

	var cart models.Cart

	found, err := storage.GetJSON(ctx, r.store, sessionID, storage.KeyCart, &cart)
	if err != nil {
		return models.Cart{}, err
	}

	if !found {
		return models.Cart{}, nil
	}

	if err := cart.Check(); err != nil {
		return models.Cart{}, fmt.Errorf("%w: key %s: %v", storage.ErrCorrupt, storage.KeyCart, err)
	}

	return cart, nil
}

func (r *cartRepository) SaveCart(ctx context.Context, sessionID string, cart models.Cart) error {
	if err := storage.SetJSON(ctx, r.store, sessionID, storage.KeyCart, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}
