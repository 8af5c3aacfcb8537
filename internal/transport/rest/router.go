package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/slotswapper-backend/internal/config"
	"github.com/heartmarshall/slotswapper-backend/internal/metrics"
	"github.com/heartmarshall/slotswapper-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// RouterDeps carries everything NewRouter mounts. Metrics and RateLimiter
// are optional.
type RouterDeps struct {
	Auth        *AuthHandler
	Events      *EventHandler
	Swaps       *SwapHandler
	Profile     *ProfileHandler
	Health      *HealthHandler
	Tokens      tokenValidator
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	MetricsPath string
	Logger      *slog.Logger
}

// NewRouter wires all HTTP routes.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	global := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
	}
	if d.Metrics != nil {
		global = append(global, d.Metrics.Middleware)
	}
	global = append(global, middleware.CORS(d.CORS), middleware.Auth(d.Tokens))
	r.Use(middleware.Chain(global...))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		path := d.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, d.Metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if d.RateLimiter != nil {
				r.Use(d.RateLimiter.Limit)
			}
			r.Post("/signup", d.Auth.Signup)
			r.Post("/login", d.Auth.Login)
			r.Post("/refresh", d.Auth.Refresh)
			r.With(middleware.RequireUser).Post("/logout", d.Auth.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Get("/me", d.Profile.Me)

			r.Get("/events.ics", d.Events.Export)
			r.Route("/events", func(r chi.Router) {
				r.Get("/", d.Events.List)
				r.Post("/", d.Events.Create)
				r.Patch("/{id}/status", d.Events.SetStatus)
				r.Delete("/{id}", d.Events.Delete)
			})

			r.Route("/swaps", func(r chi.Router) {
				r.Get("/swappable-slots", d.Swaps.SwappableSlots)
				r.Post("/swap-request", d.Swaps.Propose)
				r.Post("/swap-response/{id}", d.Swaps.Respond)
				r.Get("/my-requests", d.Swaps.MyRequests)
				r.Get("/requests/{id}", d.Swaps.Get)
			})
		})
	})

	return r
}
