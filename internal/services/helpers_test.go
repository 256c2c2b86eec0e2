package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/models"
	service "github.com/aaravmahajanofficial/savory-restaurant/internal/services"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage/redisstore"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const sessionID = "5a1e-session"

func newTestStore(t *testing.T) (storage.Store, *miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		client.Close()
	})

	return redisstore.New(client, time.Hour), mr, client
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type recordingPublisher struct {
	mu        sync.Mutex
	snapshots []models.CartSnapshot
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, snapshot models.CartSnapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.snapshots = append(p.snapshots, snapshot)

	return p.err
}

func (p *recordingPublisher) last() models.CartSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snapshots[len(p.snapshots)-1]
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.snapshots)
}

func passingBackend() service.Backend {
	return service.NewScriptedBackend(0, func() float64 { return 0.5 })
}

func failingBackend() service.Backend {
	return service.NewScriptedBackend(1, func() float64 { return 0.5 })
}
