package service

import (
	"context"
	"slices"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	repository "github.com/aaravmahajanofficial/savory-restaurant/internal/repositories"
)

type PreferencesService interface {
	GetPreferences(ctx context.Context, sessionID string) (models.Preferences, error)
	ToggleTheme(ctx context.Context, sessionID string) (models.Preferences, error)
	SetColorTheme(ctx context.Context, sessionID string, colorTheme string) (models.Preferences, error)
}

type preferencesService struct {
	repo repository.PreferencesRepository
}

func NewPreferencesService(repo repository.PreferencesRepository) PreferencesService {
	return &preferencesService{repo: repo}
}

// GetPreferences implements PreferencesService.
func (s *preferencesService) GetPreferences(ctx context.Context, sessionID string) (models.Preferences, error) {

	prefs, err := s.repo.GetPreferences(ctx, sessionID)
	if err == nil {
		return prefs, nil
	}

	// unreadable values keep their defaults
	if isCorrupt(err) {
		recoverCorrupt(ctx, "preferences", err)
		return prefs, nil
	}

	return models.Preferences{}, errors.StorageError("Failed to load preferences").WithError(err)
}

// ToggleTheme implements PreferencesService.
func (s *preferencesService) ToggleTheme(ctx context.Context, sessionID string) (models.Preferences, error) {

	prefs, err := s.GetPreferences(ctx, sessionID)
	if err != nil {
		return models.Preferences{}, err
	}

	if prefs.Theme == models.ThemeDark {
		prefs.Theme = models.ThemeLight
	} else {
		prefs.Theme = models.ThemeDark
	}

	if err := s.repo.SaveTheme(ctx, sessionID, prefs.Theme); err != nil {
		return models.Preferences{}, errors.StorageError("Failed to save theme").WithError(err)
	}

	return prefs, nil
}

// SetColorTheme implements PreferencesService.
func (s *preferencesService) SetColorTheme(ctx context.Context, sessionID string, colorTheme string) (models.Preferences, error) {

	if !slices.Contains(models.ColorThemes, colorTheme) {
		return models.Preferences{}, errors.AddValidationError("colorTheme", "Unknown color theme")
	}

	prefs, err := s.GetPreferences(ctx, sessionID)
	if err != nil {
		return models.Preferences{}, err
	}

	if err := s.repo.SaveColorTheme(ctx, sessionID, colorTheme); err != nil {
		return models.Preferences{}, errors.StorageError("Failed to save color theme").WithError(err)
	}

	prefs.ColorTheme = colorTheme

	return prefs, nil
}
