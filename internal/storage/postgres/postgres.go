package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/config"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/utils"
	"go.opentelemetry.io/otel/attribute"

	_ "github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS session_state (
		session_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ,
		PRIMARY KEY (session_id, key)
	)`

var _ storage.Store = (*Postgres)(nil)

type Postgres struct {
	db  *sql.DB
	ttl time.Duration
}

// Open connects with tracing enabled and applies the pool settings.
func Open(cfg *config.Database) (*sql.DB, error) {

	db, err := otelsql.Open("postgres", cfg.GetDSN(),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := utils.WithStoreTimeout(context.Background())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// New wraps an open database. A non-positive ttl keeps rows forever.
func New(db *sql.DB, ttl time.Duration) *Postgres {
	return &Postgres{db: db, ttl: ttl}
}

func (p *Postgres) Migrate(ctx context.Context) error {
	ctx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create session_state table: %w", err)
	}

	return nil
}

func (p *Postgres) Get(ctx context.Context, sessionID, key string) ([]byte, error) {

	ctx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	query := `SELECT value FROM session_state
			  WHERE session_id = $1 AND key = $2 AND (expires_at IS NULL OR expires_at > NOW())`

	var value []byte

	err := p.db.QueryRowContext(ctx, query, sessionID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	return value, nil
}

func (p *Postgres) Set(ctx context.Context, sessionID, key string, value []byte) error {

	ctx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	var expiresAt sql.NullTime
	if p.ttl > 0 {
		expiresAt = sql.NullTime{Time: time.Now().UTC().Add(p.ttl), Valid: true}
	}

	query := `
		INSERT INTO session_state (session_id, key, value, updated_at, expires_at)
		VALUES ($1, $2, $3, NOW(), $4)
		ON CONFLICT (session_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW(), expires_at = EXCLUDED.expires_at`

	if _, err := p.db.ExecContext(ctx, query, sessionID, key, value, expiresAt); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}

	return nil
}

func (p *Postgres) Delete(ctx context.Context, sessionID, key string) error {

	ctx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	query := `DELETE FROM session_state WHERE session_id = $1 AND key = $2`

	if _, err := p.db.ExecContext(ctx, query, sessionID, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}

// PurgeExpired removes rows past their expiry and returns how many were deleted.
func (p *Postgres) PurgeExpired(ctx context.Context) (int64, error) {

	ctx, cancel := utils.WithStoreTimeout(ctx)
	defer cancel()

	res, err := p.db.ExecContext(ctx, `DELETE FROM session_state WHERE expires_at IS NOT NULL AND expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}

	return res.RowsAffected()
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
