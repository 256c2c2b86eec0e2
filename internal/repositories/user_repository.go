package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
)

type UserRepository interface {
	GetCurrentUser(ctx context.Context, sessionID string) (*models.UserSession, error)
	SaveCurrentUser(ctx context.Context, sessionID string, user *models.UserSession) error
	DeleteCurrentUser(ctx context.Context, sessionID string) error
}

type userRepository struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) UserRepository {
	return &userRepository{store: store}
}

// GetCurrentUser returns nil without an error when nobody is signed in.
func (r *userRepository) GetCurrentUser(ctx context.Context, sessionID string) (*models.UserSession, error) {

	var user models.UserSession

	found, err := storage.GetJSON(ctx, r.store, sessionID, storage.KeyCurrentUser, &user)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	return &user, nil
}

func (r *userRepository) SaveCurrentUser(ctx context.Context, sessionID string, user *models.UserSession) error {
	if err := storage.SetJSON(ctx, r.store, sessionID, storage.KeyCurrentUser, user); err != nil {
		return fmt.Errorf("failed to save current user: %w", err)
	}

	return nil
}

func (r *userRepository) DeleteCurrentUser(ctx context.Context, sessionID string) error {
	if err := r.store.Delete(ctx, sessionID, storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to delete current user: %w", err)
	}

	return nil
}
