package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Dashboard server timeouts; HandlerTimeout stays below WriteTimeout.
const (
	HandlerTimeout = 25 * time.Second
	WriteTimeout   = 30 * time.Second
)

// NewRouter configures the dashboard routes
func NewRouter(handler *DashboardHandler, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(HandlerTimeout))

	// Routes
	r.Get("/", handler.HandleIndex)
	r.Post("/refresh", handler.HandleRefresh)
	r.Post("/analyze", handler.HandleAnalyze)
	r.Get("/health", handler.HandleHealth)

	return r
}

// RequestLogger logs every request through zerolog
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				// Skip high-frequency health polling
				if r.URL.Path == "/health" {
					return
				}
				logger.Info().
					Str("method", r.Method).
					Str("uri", r.RequestURI).
					Int("status", ww.Status()).
					Dur("latency", time.Since(start)).
					Str("request_id", middleware.GetReqID(r.Context())).
					Msg("request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
