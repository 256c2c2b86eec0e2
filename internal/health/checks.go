package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/config"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const version = "1.0.0"

// NewHealthHandler checks the session store and, when configured, Redis.
// The store check goes through Store.Ping so it covers either backend.
func NewHealthHandler(cfg *config.Config, store storage.Store, redisEnabled bool) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "session-store",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if store == nil {
					return fmt.Errorf("session store is not initialized")
				}
				return store.Ping(ctx)
			},
		},
	}

	if cfg.Storage.Driver == "postgres" {
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	}

	if redisEnabled {
		// cart events and the sign-in limiter degrade without Redis
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: cfg.Storage.Driver != "redis",
			Check: healthRedis.New(healthRedis.Config{
				DSN: cfg.RedisConnect.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "savory-restaurant",
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
