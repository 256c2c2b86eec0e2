package service

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/errors"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/metrics"
)

// Backend stands in for the remote auth and order services.
type Backend interface {
	Call(ctx context.Context, operation string) error
}

type simulatedBackend struct {
	delay       time.Duration
	failureRate float64
	random      func() float64
	sleep       func(time.Duration)
}

// NewSimulatedBackend waits delay on every call, then fails with probability failureRate.
func NewSimulatedBackend(delay time.Duration, failureRate float64) Backend {
	return &simulatedBackend{
		delay:       delay,
		failureRate: failureRate,
		random:      rand.Float64,
		sleep:       time.Sleep,
	}
}

// NewScriptedBackend draws outcomes from random and never sleeps.
func NewScriptedBackend(failureRate float64, random func() float64) Backend {
	return &simulatedBackend{
		failureRate: failureRate,
		random:      random,
		sleep:       func(time.Duration) {},
	}
}

// Call blocks for the whole delay even when ctx is cancelled.
func (b *simulatedBackend) Call(ctx context.Context, operation string) error {
	if b.delay > 0 {
		b.sleep(b.delay)
	}

	if b.random() < b.failureRate {
		metrics.RecordSimulatedFailure(operation)
		middleware.LoggerFromContext(ctx).Warn("Simulated backend failure", slog.String("operation", operation))
		return errors.SimulatedServiceError(operation)
	}

	return nil
}
