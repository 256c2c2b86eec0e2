package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
)

type CheckoutRepository interface {
	GetCheckoutState(ctx context.Context, sessionID string) (models.CheckoutState, error)
	SaveCheckoutState(ctx context.Context, sessionID string, state models.CheckoutState) error
}

type checkoutRepository struct {
	store storage.Store
}

func NewCheckoutRepository(store storage.Store) CheckoutRepository {
	return &checkoutRepository{store: store}
}

// GetCheckoutState starts a fresh flow on Review when nothing is stored.
func (r *checkoutRepository) GetCheckoutState(ctx context.Context, sessionID string) (models.CheckoutState, error) {

	state := models.NewCheckoutState()

	found, err := storage.GetJSON(ctx, r.store, sessionID, storage.KeyCheckout, &state)
	if err != nil {
		return models.NewCheckoutState(), err
	}

	if found && (!state.Step.Valid() || !state.OrderType.Valid() || !state.PaymentMethod.Valid()) {
		return models.NewCheckoutState(), fmt.Errorf("%w: key %s: step %d", storage.ErrCorrupt, storage.KeyCheckout, state.Step)
	}

	return state, nil
}

func (r *checkoutRepository) SaveCheckoutState(ctx context.Context, sessionID string, state models.CheckoutState) error {
	if err := storage.SetJSON(ctx, r.store, sessionID, storage.KeyCheckout, state); err != nil {
		return fmt.Errorf("failed to save checkout state: %w", err)
	}

	return nil
}
