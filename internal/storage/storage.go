// Package storage holds the per-session key-value state: the cart, the
// signed-in user, checkout progress, profile data and display preferences.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("key not found")
	// ErrCorrupt marks a stored value that no longer decodes into its type.
	ErrCorrupt = errors.New("corrupt value")
)

const (
	KeyCart        = "cart"
	KeyCurrentUser = "currentUser"
	KeyTheme       = "theme"
	KeyColorTheme  = "colorTheme"
	KeyCheckout    = "checkout"
	KeyOrders      = "orders"
	KeyFavorites   = "favorites"
	KeyAddresses   = "addresses"
)

type Store interface {
	Get(ctx context.Context, sessionID, key string) ([]byte, error)
	Set(ctx context.Context, sessionID, key string, value []byte) error
	Delete(ctx context.Context, sessionID, key string) error
	Ping(ctx context.Context) error
	Close() error
}

func Key(sessionID, key string) string {
	return "session:" + sessionID + ":" + key
}

// GetJSON decodes the value under key into dest. It reports false when the key is absent.
func GetJSON(ctx context.Context, s Store, sessionID, key string, dest any) (bool, error) {
	data, err := s.Get(ctx, sessionID, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return true, fmt.Errorf("%w: key %s: %v", ErrCorrupt, key, err)
	}

	return true, nil
}

func SetJSON(ctx context.Context, s Store, sessionID, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	return s.Set(ctx, sessionID, key, data)
}
