package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/communehq/commune/internal/infrastructure/http/handlers"
	"github.com/communehq/commune/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler          *handlers.AuthHandler
	UsersHandler         *handlers.UsersHandler
	OrganisationsHandler *handlers.OrganisationsHandler
	HealthHandler        *handlers.HealthHandler
	RequireAuth          func(http.Handler) http.Handler
	Log                  zerolog.Logger
	Secure               func(http.Handler) http.Handler
	CORS                 func(http.Handler) http.Handler
	Metrics              bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	r.Use(chimid.AllowContentType("application/json"))

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/organisations", func(r chi.Router) {
			// Membership addition takes no token; everything else is gated.
			r.Post("/{orgId}/users", cfg.OrganisationsHandler.AddMember)
			r.Group(func(r chi.Router) {
				r.Use(cfg.RequireAuth)
				r.Get("/", cfg.OrganisationsHandler.List)
				r.Post("/", cfg.OrganisationsHandler.Create)
				r.Get("/{orgId}", cfg.OrganisationsHandler.Get)
				r.Get("/{orgId}/users", cfg.OrganisationsHandler.ListMembers)
			})
		})
		r.Route("/users", func(r chi.Router) {
			r.Use(cfg.RequireAuth)
			r.Get("/{id}", cfg.UsersHandler.Get)
		})
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
