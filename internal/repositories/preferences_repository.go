package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
)

type PreferencesRepository interface {
	GetPreferences(ctx context.Context, sessionID string) (models.Preferences, error)
	SaveTheme(ctx context.Context, sessionID string, theme models.Theme) error
	SaveColorTheme(ctx context.Context, sessionID string, colorTheme string) error
}

type preferencesRepository struct {
	store storage.Store
}

func NewPreferencesRepository(store storage.Store) PreferencesRepository {
	return &preferencesRepository{store: store}
}

// GetPreferences falls back to light/default for keys that are absent or hold unknown values.
func (r *preferencesRepository) GetPreferences(ctx context.Context, sessionID string) (models.Preferences, error) {

	prefs := models.Preferences{Theme: models.ThemeLight, ColorTheme: models.DefaultColorTheme}

	var theme models.Theme
	found, err := storage.GetJSON(ctx, r.store, sessionID, storage.KeyTheme, &theme)
	if err != nil {
		return prefs, err
	}
	if found && (theme == models.ThemeLight || theme == models.ThemeDark) {
		prefs.Theme = theme
	}

	var colorTheme string
	found, err = storage.GetJSON(ctx, r.store, sessionID, storage.KeyColorTheme, &colorTheme)
	if err != nil {
		return prefs, err
	}
	if found && slices.Contains(models.ColorThemes, colorTheme) {
		prefs.ColorTheme = colorTheme
	}

	return prefs, nil
}

func (r *preferencesRepository) SaveTheme(ctx context.Context, sessionID string, theme models.Theme) error {
	if err := storage.SetJSON(ctx, r.store, sessionID, storage.KeyTheme, theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	return nil
}

func (r *preferencesRepository) SaveColorTheme(ctx context.Context, sessionID string, colorTheme string) error {
	if err := storage.SetJSON(ctx, r.store, sessionID, storage.KeyColorTheme, colorTheme); err != nil {
		return fmt.Errorf("failed to save color theme: %w", err)
	}

	return nil
}
