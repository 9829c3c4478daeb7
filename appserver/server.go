// Package appserver serves the bundled bakery application so the suite can
// run without an external deployment.
package appserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/networkteam/bakery-e2e/appserver/static"
	"github.com/networkteam/bakery-e2e/collector"
)

// HealthPath answers 200 once the server accepts requests. It is not recorded.
const HealthPath = "/healthz"

// Options configures the app server handler.
type Options struct {
	// Logger receives one record per request. Default is slog.Default().
	Logger *slog.Logger
	// Requests records served requests for failure reports. Optional.
	Requests *collector.RequestRecorder
}

// NewRouter builds the HTTP router serving the application pages.
func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	if opts.Requests != nil {
		r.Use(opts.Requests.Middleware)
	}
	r.Use(noCache)

	r.Get(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login.html", http.StatusFound)
	})
	r.Handle("/*", http.FileServerFS(static.Assets))

	return r
}

// noCache keeps browsers from serving a stale script after the app changed.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			if r.URL.Path == HealthPath {
				return
			}
			level := slog.LevelDebug
			if ww.Status() >= http.StatusBadRequest {
				level = slog.LevelWarn
			}
			logger.Log(r.Context(), level, "Served request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
