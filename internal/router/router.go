package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/nindium/bookclub-server/internal/config"
	"github.com/nindium/bookclub-server/internal/handler"
	"github.com/nindium/bookclub-server/internal/httputil"
	"github.com/nindium/bookclub-server/internal/middleware"
	"github.com/nindium/bookclub-server/internal/repository"
	"github.com/nindium/bookclub-server/internal/service"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies is everything New needs, built once in cmd/server.
type Dependencies struct {
	Config      *config.Config
	DB          Pinger
	Admins      repository.AdminRepository
	Books       repository.BookRepository
	Reviews     repository.ReviewRepository
	Memberships repository.MembershipRequestRepository
	// Limiter backs the login and submission throttles. Nil means per-process memory.
	Limiter middleware.Limiter
}

// New assembles the HTTP surface: pages, the public API, the admin API and
// operational endpoints.
func New(deps Dependencies) http.Handler {
	cfg := deps.Config
	isProduction := cfg.IsProduction()

	limiter := deps.Limiter
	if limiter == nil {
		limiter = middleware.NewMemoryRateLimiter()
	}

	adminService := service.NewAdminService(deps.Admins)
	bookService := service.NewBookService(deps.Books, deps.Reviews)
	reviewService := service.NewReviewService(deps.Reviews, deps.Books)
	membershipService := service.NewMembershipService(deps.Memberships)

	sessions := middleware.NewSessionManager(cfg.SessionSecret, isProduction)
	gate := middleware.NewAdminGate(sessions, deps.Admins)
	csrf := middleware.NewCSRFMiddleware(isProduction)
	loginLimit := middleware.NewIPRateLimitMiddleware(limiter, cfg.LoginRateLimitPerMin, config.RateLimitWindow, "login")
	submitLimit := middleware.NewIPRateLimitMiddleware(limiter, cfg.SubmitRateLimitPerMin, config.RateLimitWindow, "submit")

	adminHandler := handler.NewAdminHandler(handler.AdminHandlerDeps{
		Admins:      adminService,
		Books:       bookService,
		Reviews:     reviewService,
		Memberships: membershipService,
		Sessions:    sessions,
		Gate:        gate.Handler,
		CSRF:        csrf.Handler,
		LoginLimit:  loginLimit.Handler,
	})
	publicHandler := handler.NewPublicHandler(bookService, reviewService, membershipService, submitLimit.Handler)
	pages := handler.NewPageHandler(cfg.StaticDir)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(middleware.NewBodyLimitMiddleware(config.MaxRequestBodySize).Handler)
	r.Use(middleware.NewSecurityHeadersMiddleware(isProduction).Handler)

	r.Get("/health", healthHandler(deps.DB))
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/api/admin", adminHandler.Routes())
	r.Mount("/api", publicHandler.Routes())

	r.Group(func(r chi.Router) {
		r.Use(middleware.DashboardFilter(sessions))
		r.Get("/*", pages.ServeHTTP)
	})

	return r
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "ok", http.StatusOK
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), config.DBPingTimeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				log.Warn().Err(err).Msg("health check: database ping failed")
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}

		httputil.WriteJSON(w, code, map[string]any{
			"status":    status,
			"timestamp": time.Now().UnixMilli(),
		})
	}
}
