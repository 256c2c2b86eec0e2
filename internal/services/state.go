package service

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/metrics"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
)

func isCorrupt(err error) bool {
	return stdErrors.Is(err, storage.ErrCorrupt)
}

// recoverCorrupt records a stored value that is about to be replaced by its default.
func recoverCorrupt(ctx context.Context, key string, err error) {
	middleware.LoggerFromContext(ctx).Warn("Recovering corrupt session state",
		slog.String("key", key),
		slog.Any("error", errors.PersistedStateCorruptError(key).WithError(err)))
	metrics.RecordCorruptState(key)
}
