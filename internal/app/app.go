package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres/activity"
	catalogrepo "github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres/catalog"
	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres/itinerary"
	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres/trip"
	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres/tripblock"
	"github.com/heartmarshall/voyagewise-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/voyagewise-backend/internal/auth"
	"github.com/heartmarshall/voyagewise-backend/internal/config"
	authsvc "github.com/heartmarshall/voyagewise-backend/internal/service/auth"
	"github.com/heartmarshall/voyagewise-backend/internal/service/catalog"
	"github.com/heartmarshall/voyagewise-backend/internal/service/planner"
	usersvc "github.com/heartmarshall/voyagewise-backend/internal/service/user"
	"github.com/heartmarshall/voyagewise-backend/internal/transport/middleware"
	"github.com/heartmarshall/voyagewise-backend/internal/transport/rest"
)

// shutdownGrace applies when the configured shutdown timeout is zero.
const shutdownGrace = 5 * time.Second

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rl.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(cfg, logger, pool, rl),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		timeout := cfg.Server.ShutdownTimeout
		if timeout <= 0 {
			timeout = shutdownGrace
		}
		logger.Info("shutting down", slog.Duration("timeout", timeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}

// NewHandler builds the full HTTP stack on top of an open pool. The e2e
// tests use it to serve the same stack through httptest.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rl *middleware.RateLimiter) http.Handler {
	txm := postgres.NewTxManager(pool)

	users := user.New(pool)
	trips := trip.New(pool)
	itineraries := itinerary.New(pool)
	blocks := tripblock.New(pool)
	activities := activity.New(pool)
	entries := catalogrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	plannerService := planner.NewService(logger, users, trips, itineraries, blocks, activities, txm)
	userService := usersvc.NewService(logger, users)
	catalogService := catalog.NewService(logger, entries, txm, cfg.Catalog.MaxUploadRows)

	handlers := rest.Handlers{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Auth:    rest.NewAuthHandler(authService, logger),
		Planner: rest.NewPlannerHandler(plannerService, logger),
		Catalog: rest.NewCatalogHandler(catalogService, logger, cfg.Catalog.DefaultPageSize, cfg.Catalog.MaxUploadBytes),
		User:    rest.NewUserHandler(userService, logger),
	}

	api := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	var authLimit middleware.Middleware
	if cfg.RateLimit.Enabled && rl != nil {
		api = append(api, rl.Limit(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst))
		authLimit = rl.Limit(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthPerMinute)
	}
	api = append(api, middleware.Auth(authService))

	return rest.NewRouter(handlers, rest.RouterOptions{
		API:       middleware.Chain(api...),
		AuthLimit: authLimit,
	})
}
