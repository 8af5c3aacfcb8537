package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres"
	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres/swaprequest"
	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/slotswapper-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/slotswapper-backend/internal/auth"
	"github.com/heartmarshall/slotswapper-backend/internal/config"
	"github.com/heartmarshall/slotswapper-backend/internal/metrics"
	authsvc "github.com/heartmarshall/slotswapper-backend/internal/service/auth"
	"github.com/heartmarshall/slotswapper-backend/internal/service/calendar"
	"github.com/heartmarshall/slotswapper-backend/internal/service/swap"
	usersvc "github.com/heartmarshall/slotswapper-backend/internal/service/user"
	"github.com/heartmarshall/slotswapper-backend/internal/transport/middleware"
	"github.com/heartmarshall/slotswapper-backend/internal/transport/rest"
)

// App is the assembled HTTP service: pool, repositories, services and router.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	pool    *pgxpool.Pool
	server  *http.Server
	limiter *middleware.RateLimiter
}

// New connects to the database, optionally applies migrations and wires
// every layer. Call Close when done.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, log); err != nil {
			return nil, fmt.Errorf("app: migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a := &App{cfg: cfg, log: log, pool: pool}
	a.server = &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      a.handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelError),
	}
	return a, nil
}

func (a *App) handler() http.Handler {
	txm := postgres.NewTxManager(a.pool)
	users := user.New(a.pool)
	tokens := token.New(a.pool)
	events := event.New(a.pool)
	requests := swaprequest.New(a.pool)
	auditRepo := audit.New(a.pool)

	m := metrics.New()
	jwt := auth.NewJWTManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.JWTIssuer, a.cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(a.log, users, tokens, txm, jwt, a.cfg.Auth)
	calendarService := calendar.NewService(a.log, events, auditRepo, txm)
	swapService := swap.NewService(a.log, events, requests, auditRepo, txm, m)
	profileService := usersvc.NewService(a.log, users, events, requests)

	deps := rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService, a.log),
		Events:  rest.NewEventHandler(calendarService, a.log),
		Swaps:   rest.NewSwapHandler(calendarService, swapService, a.log),
		Profile: rest.NewProfileHandler(profileService, a.log),
		Health:  rest.NewHealthHandler(Version, rest.HealthCheck{Name: "database", Check: a.pool.Ping}),
		Tokens:  authService,
		CORS:    a.cfg.CORS,
		Logger:  a.log,
	}
	if a.cfg.Metrics.Enabled {
		deps.Metrics = m
		deps.MetricsPath = a.cfg.Metrics.Path
	}
	if a.cfg.RateLimit.Enabled {
		a.limiter = middleware.NewRateLimiter(a.cfg.RateLimit)
		deps.RateLimiter = a.limiter
	}

	return rest.NewRouter(deps)
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return <-errCh
}

// Close releases the rate limiter and the database pool.
func (a *App) Close() {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	a.pool.Close()
}

// Serve builds the App from cfg and runs it until ctx is cancelled.
func Serve(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	log.Info("starting slotswapper",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}

// CleanupTokens removes expired and revoked refresh tokens and reports how
// many were deleted.
func CleanupTokens(ctx context.Context, cfg *config.Config, log *slog.Logger) (int, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return 0, fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	svc := authsvc.NewService(log, user.New(pool), token.New(pool), postgres.NewTxManager(pool),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL), cfg.Auth)
	return svc.CleanupExpiredTokens(ctx)
}
