package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	service "github.com/aaravmahajanofficial/savory-restaurant/internal/services"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils/response"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/validation"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validator: validation.New()}
}

// SignIn godoc
//	@Summary		Sign in
//	@Description	Accepts any well-formed credentials. Repeated attempts for one email are rate limited.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.SignInRequest	true	"Email and password"
//	@Success		200			{object}	models.AuthResponse		"Signed-in user"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		429			{object}	response.ErrorResponse	"Too many attempts"
//	@Failure		503			{object}	response.ErrorResponse	"Sign in unavailable, retry"
//	@Router			/auth/signin [post]
func (h *AuthHandler) SignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.SignInRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid sign in input")
			return
		}

		user, err := h.authService.SignIn(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Sign in failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("User signed in", slog.String("userId", user.ID))
		response.Success(w, http.StatusOK, models.AuthResponse{User: user, Message: "Welcome back, " + user.FirstName + "!"})
	}
}

// SignUp godoc
//	@Summary	Create an account
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		account	body		models.SignUpRequest	true	"Account details"
//	@Success	201		{object}	models.AuthResponse		"Signed-in user"
//	@Failure	400		{object}	response.ErrorResponse	"Validation error with per-field messages"
//	@Failure	503		{object}	response.ErrorResponse	"Account creation unavailable, retry"
//	@Router		/auth/signup [post]
func (h *AuthHandler) SignUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.SignUpRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid sign up input")
			return
		}

		user, err := h.authService.SignUp(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Sign up failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Account created", slog.String("userId", user.ID))
		response.Success(w, http.StatusCreated, models.AuthResponse{User: user, Message: "Account created successfully"})
	}
}

// SignOut godoc
//	@Summary	Sign out
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	response.APIResponse	"Signed out"
//	@Router		/auth/signout [post]
func (h *AuthHandler) SignOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		if err := h.authService.SignOut(r.Context(), sessionID); err != nil {
			logger.Error("Sign out failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "Signed out"})
	}
}

// CurrentUser godoc
//	@Summary	Get the signed-in user
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	models.UserSession		"Signed-in user"
//	@Failure	401	{object}	response.ErrorResponse	"Nobody is signed in"
//	@Router		/auth/me [get]
func (h *AuthHandler) CurrentUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, logger, ok := requireSession(w, r)
		if !ok {
			return
		}

		user, err := h.authService.GetCurrentUser(r.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to load user", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		if user == nil {
			response.Error(w, errors.UnauthorizedError("Not signed in"))
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

// PasswordStrength godoc
//	@Summary	Rate a password
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		password	body		models.PasswordStrengthRequest	true	"Candidate password"
//	@Success	200			{object}	models.PasswordStrength			"Score, level and label"
//	@Router		/auth/password-strength [post]
func (h *AuthHandler) PasswordStrength() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.PasswordStrengthRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()))
			return
		}

		response.Success(w, http.StatusOK, h.authService.PasswordStrength(req.Password))
	}
}
