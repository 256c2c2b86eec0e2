package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/savory-restaurant/internal/api"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/handlers"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/api/middleware"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/catalog"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/config"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/events"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/health"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/logging"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/metrics"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/pricing"
	repository "github.com/aaravmahajanofficial/savory-restaurant/internal/repositories"
	service "github.com/aaravmahajanofficial/savory-restaurant/internal/services"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage/postgres"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/storage/redisstore"
	"github.com/aaravmahajanofficial/savory-restaurant/internal/telemetry"
	"github.com/aaravmahajanofficial/savory-restaurant/pkg/sendgrid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/aaravmahajanofficial/savory-restaurant/docs"
)

const purgeInterval = time.Hour

//	@title			Savory Restaurant API
//	@version		1.0
//	@description	Menu browsing, cart, checkout and profile for the Savory restaurant.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	SessionToken
//	@in							header
//	@name						X-Session-Token

func main() {

	// .env is optional
	_ = godotenv.Load()

	// Load config
	cfg := config.MustLoad()

	// Logger setup
	logger, logCloser := logging.New(cfg.Log, os.Stdout)
	slog.SetDefault(logger)
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Menu
	menu, err := catalog.Load(cfg.Menu.Path)
	if err != nil {
		slog.Error("❌ Error loading the menu", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis is required for the redis driver and optional otherwise
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		if cfg.Storage.Driver == "redis" {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Warn("⚠️ Redis unavailable, cart events and sign-in rate limiting are off", slog.String("error", err.Error()))
		redisClient = nil
	}

	// shared by the store, the broker and the limiter; closed after all of them
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("⚠️ Error closing redis client", slog.String("error", err.Error()))
			}
		}()
	}

	// Session store
	store, err := openStore(ctx, cfg, redisClient)
	if err != nil {
		slog.Error("❌ Error opening the session store", slog.String("driver", cfg.Storage.Driver), slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("⚠️ Error closing session store", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Session store closed")
		}
	}()

	// the interfaces below must stay untyped nil when Redis is off
	var (
		publisher  service.CartEventPublisher
		subscriber handlers.CartSubscriber
		limiter    repository.RateLimitRepository
	)

	if redisClient != nil {
		broker := events.NewBroker(redisClient)
		publisher, subscriber = broker, broker
		limiter = repository.NewRateLimitRepo(redisClient, cfg.RateConfig)
	}

	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	cartRepo := repository.NewCartRepository(store)
	userRepo := repository.NewUserRepository(store)
	checkoutRepo := repository.NewCheckoutRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	profileRepo := repository.NewProfileRepository(store)
	preferencesRepo := repository.NewPreferencesRepository(store)

	menuService := service.NewMenuService(menu)
	cartService := service.NewCartService(cartRepo, publisher)
	authService := service.NewAuthService(userRepo, limiter, service.NewSimulatedBackend(cfg.Auth.Delay, cfg.Auth.FailureRate))
	notificationService := service.NewNotificationService(emailService)
	checkoutService := service.NewCheckoutService(
		checkoutRepo,
		orderRepo,
		cartService,
		authService,
		pricing.NewCalculatorFromConfig(cfg.Checkout),
		service.NewSimulatedBackend(cfg.Checkout.OrderDelay, cfg.Checkout.FailureRate),
		notificationService,
	)
	profileService := service.NewProfileService(profileRepo, orderRepo, userRepo, authService, menuService, cartService)
	preferencesService := service.NewPreferencesService(preferencesRepo)

	healthChecker, err := health.NewHealthHandler(cfg, store, redisClient != nil)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("driver", cfg.Storage.Driver), slog.Int("menuItems", len(menu.Items)))

	// Setup router
	router := api.NewRouter(&api.Handlers{
		Cart:        handlers.NewCartHandler(cartService, checkoutService),
		Checkout:    handlers.NewCheckoutHandler(checkoutService),
		Menu:        handlers.NewMenuHandler(menuService),
		Auth:        handlers.NewAuthHandler(authService),
		Profile:     handlers.NewProfileHandler(profileService),
		Preferences: handlers.NewPreferencesHandler(preferencesService),
		Events:      handlers.NewEventsHandler(subscriber, cartService),
	}, middleware.NewSessionManager(cfg.Security), healthChecker.Handler())

	// Middleware chaining
	var handler http.Handler = metrics.Middleware(router)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "savory-restaurant")

	// Setup http server
	server := &http.Server{
		Addr:        cfg.Addr,
		Handler:     handler,
		ReadTimeout: cfg.ReadTimeout,
		IdleTimeout: cfg.IdleTimeout,
		// no WriteTimeout: cart event streams stay open
	}

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	if err := serve(ctx, server, listener, cfg.ShutdownTimeout); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	tracerCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := shutdownTracer(tracerCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}

// serve runs server on listener until ctx is done and then drains it.
// Requests run on a context that outlives ctx, so Shutdown lets in-flight
// requests finish; whatever is still running at the timeout, such as cart
// event streams, is cancelled and its connection closed.
func serve(ctx context.Context, server *http.Server, listener net.Listener, timeout time.Duration) error {

	base, cancelBase := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelBase()

	server.BaseContext = func(_ net.Listener) context.Context { return base }

	serveErr := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := server.Shutdown(shutdownCtx)

	cancelBase()

	if err != nil {
		server.Close()
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	return nil
}

// openStore returns the session store for the configured driver. The
// Postgres store also gets a background purge of expired rows.
func openStore(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (storage.Store, error) {

	switch cfg.Storage.Driver {
	case "postgres":
		db, err := postgres.Open(&cfg.Database)
		if err != nil {
			return nil, err
		}

		pg := postgres.New(db, cfg.Storage.SessionTTL)
		if err := pg.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}

		go purgeExpired(ctx, pg)

		return pg, nil
	default:
		return redisstore.New(redisClient, cfg.Storage.SessionTTL), nil
	}
}

func purgeExpired(ctx context.Context, pg *postgres.Postgres) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := pg.PurgeExpired(ctx)
			if err != nil {
				slog.Warn("Failed to purge expired session state", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				slog.Info("Purged expired session state", slog.Int64("rows", n))
			}
		}
	}
}
