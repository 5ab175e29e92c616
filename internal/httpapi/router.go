// Package httpapi exposes numwords over HTTP.
//
// Routes:
//
//	GET /healthz             liveness probe, returns "ok"
//	GET /v1/words/{number}   spells number as JSON
//
// The words endpoint accepts signed=true to prefix the configured sign word
// for negative numbers.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/tungbeier/number-to-word/internal/observability"
	"github.com/tungbeier/number-to-word/numwords"
)

const defaultRequestTimeout = 10 * time.Second

// Options configures the router.
type Options struct {
	Limit          numwords.Limit
	SignWord       string
	Logger         *zap.Logger
	RequestTimeout time.Duration
}

// NewRouter returns the HTTP handler for the service.
func NewRouter(opts Options) http.Handler {
	logger := observability.OrNop(opts.Logger)
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	h := &wordsHandler{
		limit:    opts.Limit,
		signWord: opts.SignWord,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/words/{number}", h.get)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(r.Context(), w, newError("not_found", "resource not found", http.StatusNotFound))
	})

	return r
}
