package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	service "github.com/aaravmahajanofficial/savory-restaurant/internal/services"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils/response"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/validation"
	"github.com/go-playground/validator/v10"
)

type PreferencesHandler struct {
	preferencesService service.PreferencesService
	validator          *validator.Validate
}

func NewPreferencesHandler(preferencesService service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService, validator: validation.New()}
}

// GetPreferences godoc
//	@Summary	Get display preferences
//	@Tags		Preferences
//	@Produce	json
//	@Success	200	{object}	models.Preferences	"Theme and color theme"
//	@Router		/preferences [get]
func (h *PreferencesHandler) GetPreferences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		prefs, err := h.preferencesService.GetPreferences(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to load preferences", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, prefs)
	}
}

// ToggleTheme godoc
//	@Summary	Switch between light and dark
//	@Tags		Preferences
//	@Produce	json
//	@Success	200	{object}	models.Preferences	"Updated preferences"
//	@Router		/preferences/theme/toggle [post]
func (h *PreferencesHandler) ToggleTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		prefs, err := h.preferencesService.ToggleTheme(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to toggle theme", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, prefs)
	}
}

// SetColorTheme godoc
//	@Summary	Pick a color theme
//	@Tags		Preferences
//	@Accept		json
//	@Produce	json
//	@Param		colorTheme	body		models.SetColorThemeRequest	true	"default, ocean, forest, sunset or purple"
//	@Success	200			{object}	models.Preferences			"Updated preferences"
//	@Failure	400			{object}	response.ErrorResponse		"Unknown color theme"
//	@Router		/preferences/color-theme [put]
func (h *PreferencesHandler) SetColorTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.SetColorThemeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		prefs, err := h.preferencesService.SetColorTheme(r.Context(), sessionID, req.ColorTheme)
		if err != nil {
			logger.Warn("Failed to set color theme", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, prefs)
	}
}
