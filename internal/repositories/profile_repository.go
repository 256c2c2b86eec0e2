package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
)

type ProfileRepository interface {
	ListFavorites(ctx context.Context, sessionID string) ([]models.Favorite, error)
	SaveFavorites(ctx context.Context, sessionID string, favorites []models.Favorite) error
	ListAddresses(ctx context.Context, sessionID string) ([]models.Address, error)
	SaveAddresses(ctx context.Context, sessionID string, addresses []models.Address) error
}

type profileRepository struct {
	store storage.Store
}

func NewProfileRepository(store storage.Store) ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) ListFavorites(ctx context.Context, sessionID string) ([]models.Favorite, error) {

	favorites := []models.Favorite{}

	if _, err := storage.GetJSON(ctx, r.store, sessionID, storage.KeyFavorites, &favorites); err != nil {
		return nil, err
	}

	return favorites, nil
}

func (r *profileRepository) SaveFavorites(ctx context.Context, sessionID string, favorites []models.Favorite) error {
	if err := storage.SetJSON(ctx, r.store, sessionID, storage.KeyFavorites, favorites); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}

	return nil
}

func (r *profileRepository) ListAddresses(ctx context.Context, sessionID string) ([]models.Address, error) {

	addresses := []models.Address{}

	if _, err := storage.GetJSON(ctx, r.store, sessionID, storage.KeyAddresses, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *profileRepository) SaveAddresses(ctx context.Context, sessionID string, addresses []models.Address) error {
	if err := storage.SetJSON(ctx, r.store, sessionID, storage.KeyAddresses, addresses); err != nil {
		return fmt.Errorf("failed to save addresses: %w", err)
	}

	return nil
}
