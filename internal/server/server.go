package server

import (
	"context"
	"crypto/sha256"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/ai-rd1/website/internal/config"
	"github.com/ai-rd1/website/internal/handlers"
	"github.com/ai-rd1/website/internal/tracing"
	"github.com/ai-rd1/website/pkg/apperror"
	"github.com/ai-rd1/website/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// Assets is the embedded static directory, served under /static/.
type Assets struct {
	FS fs.FS
}

// RouterParams are the dependencies for building the router.
type RouterParams struct {
	fx.In

	Config  *config.Config
	Log     *slog.Logger
	Handler *handlers.Handler
	Assets  Assets
}

// NewRouter builds the chi router with the middleware stack and all routes.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	log := p.Log.With(logger.Scope("http"))
	h := p.Handler

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(log),
		middleware.Recoverer,
	)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(p.Assets.FS))))

	protect := csrf.Protect(csrfKey(cfg, log),
		csrf.Secure(cfg.Session.CookieSecure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Warn("csrf check failed",
				slog.String("path", r.URL.Path),
				logger.Error(csrf.FailureReason(r)))
			apperror.WriteJSON(w, log, apperror.New(http.StatusForbidden, "csrf_failed", "Your session expired, please reload the page"))
		})),
	)

	r.Group(func(r chi.Router) {
		if !cfg.Session.CookieSecure {
			r.Use(plaintextHTTP)
		}
		r.Use(protect)
		r.Get("/", h.LandingPage)
		r.Post("/lead", h.SubmitLead)
		r.Post("/lead/mode", h.ToggleMode)
		r.Post("/lead/back", h.Back)
		r.Post("/api/leads", h.APISubmitLead)
	})

	if cfg.Otel.Enabled() {
		return tracing.Middleware(cfg.Otel.ServiceName)(r)
	}
	return r
}

// csrfKey returns the 32-byte CSRF key. CSRF_KEY of any length is hashed to
// 32 bytes; without it a random key is used.
func csrfKey(cfg *config.Config, log *slog.Logger) []byte {
	if cfg.Session.CSRFKey == "" {
		log.Warn("CSRF_KEY not set, using a random key")
		return securecookie.GenerateRandomKey(32)
	}
	sum := sha256.Sum256([]byte(cfg.Session.CSRFKey))
	return sum[:]
}

// plaintextHTTP tells gorilla/csrf the site is served over plain HTTP, so
// Origin is compared against http://host and a missing Referer is allowed.
// Deployments behind TLS set COOKIE_SECURE and keep the strict checks.
func plaintextHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, handler http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
				slog.String("lead_api", cfg.LeadAPI.BaseURL),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
