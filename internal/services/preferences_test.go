package service_test

import (
	"testing"

	appErrors "github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	repository "github.com/aaravmahajanofficial/savory-restaurant/internal/repositories"
	service "github.com/aaravmahajanofficial/savory-restaurant/internal/services"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences(t *testing.T) {
	ctx := t.Context()

	newService := func(t *testing.T) (service.PreferencesService, storage.Store) {
		store, _, _ := newTestStore(t)
		return service.NewPreferencesService(repository.NewPreferencesRepository(store)), store
	}

	t.Run("Success - defaults", func(t *testing.T) {
		prefsService, _ := newService(t)

		prefs, err := prefsService.GetPreferences(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, models.Preferences{Theme: models.ThemeLight, ColorTheme: "default"}, prefs)
	})

	t.Run("Success - toggle flips and persists", func(t *testing.T) {
		prefsService, _ := newService(t)

		prefs, err := prefsService.ToggleTheme(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, models.ThemeDark, prefs.Theme)

		prefs, err = prefsService.ToggleTheme(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, models.ThemeLight, prefs.Theme)

		stored, err := prefsService.GetPreferences(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, models.ThemeLight, stored.Theme)
	})

	t.Run("Success - color theme round trip", func(t *testing.T) {
		prefsService, _ := newService(t)

		_, err := prefsService.SetColorTheme(ctx, sessionID, "ocean")
		require.NoError(t, err)

		prefs, err := prefsService.GetPreferences(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, "ocean", prefs.ColorTheme)
		assert.Equal(t, models.ThemeLight, prefs.Theme)
	})

	t.Run("Failure - unknown color theme", func(t *testing.T) {
		prefsService, _ := newService(t)

		_, err := prefsService.SetColorTheme(ctx, sessionID, "neon")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Contains(t, appErr.Fields, "colorTheme")
	})

	t.Run("Success - corrupt theme falls back to light", func(t *testing.T) {
		prefsService, store := newService(t)
		require.NoError(t, store.Set(ctx, sessionID, storage.KeyTheme, []byte("dark")))

		prefs, err := prefsService.GetPreferences(ctx, sessionID)

		require.NoError(t, err)
		assert.Equal(t, models.ThemeLight, prefs.Theme)
	})
}
