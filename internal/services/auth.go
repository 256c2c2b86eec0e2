package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/metrics"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	repository "github.com/aaravmahajanofficial/savory-restaurant/internal/repositories"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/validation"
	"github.com/google/uuid"
)

const (
	opSignIn = "Sign in"
	opSignUp = "Account creation"
)

type AuthService interface {
	SignIn(ctx context.Context, sessionID string, req *models.SignInRequest) (*models.UserSession, error)
	SignUp(ctx context.Context, sessionID string, req *models.SignUpRequest) (*models.UserSession, error)
	SignOut(ctx context.Context, sessionID string) error
	GetCurrentUser(ctx context.Context, sessionID string) (*models.UserSession, error)
	PasswordStrength(password string) models.PasswordStrength
}

type authService struct {
	users   repository.UserRepository
	limiter repository.RateLimitRepository
	backend Backend
	now     func() time.Time
}

// NewAuthService accepts a nil limiter when no Redis is configured.
func NewAuthService(users repository.UserRepository, limiter repository.RateLimitRepository, backend Backend) AuthService {
	return &authService{users: users, limiter: limiter, backend: backend, now: time.Now}
}

// SignIn implements AuthService. Any well-formed credentials are accepted
// unless the simulated backend fails.
func (s *authService) SignIn(ctx context.Context, sessionID string, req *models.SignInRequest) (*models.UserSession, error) {

	logger := middleware.LoggerFromContext(ctx)
	email := strings.TrimSpace(req.Email)

	if s.limiter != nil {
		allowed, _, retryAfter, err := s.limiter.CheckLoginRateLimit(ctx, email)
		if err != nil {
			return nil, errors.StorageError("Rate limit check failed").WithError(err)
		}

		if !allowed {
			metrics.RecordSignInRateLimited()
			return nil, errors.TooManyRequestsError("Too many sign-in attempts. Please try again later.").
				WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter))
		}
	}

	if err := s.backend.Call(ctx, opSignIn); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	firstName, lastName := namesFromEmail(email)

	user := &models.UserSession{
		ID:         uuid.NewString(),
		Email:      email,
		FirstName:  firstName,
		LastName:   lastName,
		RememberMe: req.RememberMe,
		JoinDate:   now,
		LoginTime:  &now,
	}

	if err := s.users.SaveCurrentUser(ctx, sessionID, user); err != nil {
		return nil, errors.StorageError("Failed to save session").WithError(err)
	}

	if s.limiter != nil {
		if err := s.limiter.ResetLoginAttempts(ctx, email); err != nil {
			logger.Warn("Failed to reset sign-in attempts", slog.Any("error", err))
		}
	}

	return user, nil
}

// SignUp implements AuthService.
func (s *authService) SignUp(ctx context.Context, sessionID string, req *models.SignUpRequest) (*models.UserSession, error) {

	if err := s.backend.Call(ctx, opSignUp); err != nil {
		return nil, err
	}

	now := s.now().UTC()

	user := &models.UserSession{
		ID:         uuid.NewString(),
		Email:      strings.TrimSpace(req.Email),
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Phone:      req.Phone,
		Newsletter: req.Newsletter,
		JoinDate:   now,
		LoginTime:  &now,
	}

	if err := s.users.SaveCurrentUser(ctx, sessionID, user); err != nil {
		return nil, errors.StorageError("Failed to save session").WithError(err)
	}

	return user, nil
}

// SignOut implements AuthService.
func (s *authService) SignOut(ctx context.Context, sessionID string) error {
	if err := s.users.DeleteCurrentUser(ctx, sessionID); err != nil {
		return errors.StorageError("Failed to sign out").WithError(err)
	}

	return nil
}

// GetCurrentUser implements AuthService. It returns nil when nobody is signed in;
// an unreadable user record counts as signed out.
func (s *authService) GetCurrentUser(ctx context.Context, sessionID string) (*models.UserSession, error) {
	user, err := s.users.GetCurrentUser(ctx, sessionID)
	if err == nil {
		return user, nil
	}

	if isCorrupt(err) {
		recoverCorrupt(ctx, storage.KeyCurrentUser, err)
		if delErr := s.users.DeleteCurrentUser(ctx, sessionID); delErr != nil {
			middleware.LoggerFromContext(ctx).Error("Failed to drop corrupt user", slog.Any("error", delErr))
		}
		return nil, nil
	}

	return nil, errors.StorageError("Failed to load session").WithError(err)
}

// PasswordStrength implements AuthService.
func (s *authService) PasswordStrength(password string) models.PasswordStrength {
	level := validation.PasswordLevel(password)

	return models.PasswordStrength{
		Score: validation.PasswordScore(password),
		Level: level,
		Label: validation.PasswordLabel(level),
	}
}

// namesFromEmail turns "jane.doe@example.com" into ("Jane", "Doe").
func namesFromEmail(email string) (string, string) {
	local, _, _ := strings.Cut(email, "@")

	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "Guest", ""
	}

	for i, p := range parts {
		parts[i] = capitalize(p)
	}

	return parts[0], strings.Join(parts[1:], " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
