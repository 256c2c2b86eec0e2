package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils/response"
)

// requireSession returns the caller's session id and a logger scoped to it.
// It writes the error response itself when the session middleware did not run.
func requireSession(w http.ResponseWriter, r *http.Request) (string, *slog.Logger, bool) {

	logger := middleware.LoggerFromContext(r.Context())

	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		logger.Warn("Request without a session")
		response.Error(w, errors.UnauthorizedError("Session required"))
		return "", logger, false
	}

	return sessionID, logger, true
}

func pathIndex(r *http.Request, name string) (int, error) {
	index, err := strconv.Atoi(r.PathValue(name))
	if err != nil || index < 0 {
		return 0, errors.AddValidationError(name, "Must be a non-negative integer")
	}

	return index, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.AddValidationError(name, "Must be an integer")
	}

	return v, nil
}
