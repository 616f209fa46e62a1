// Package api is the HTTP surface of the engine: request schemas, handlers
// and the middleware chain around them.
package api

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"activation-engine/internal/auth"
	"activation-engine/internal/engine"
)

type Options struct {
	Logger *slog.Logger

	// JWTSecret enables bearer auth on the engine routes when non-empty.
	JWTSecret   string
	CORSOrigins []string
}

// NewRouter wires the engine routes behind CORS, request logging, panic
// recovery and optional auth. /health is always public.
func NewRouter(eng *engine.Engine, opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "api")

	protect := func(h http.Handler) http.Handler { return h }
	if opts.JWTSecret != "" {
		protect = auth.New([]byte(opts.JWTSecret)).Wrap
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", HealthHandler())
	mux.Handle("POST /get-tags", protect(GetTagsHandler(eng, logger)))
	mux.Handle("POST /rank-tasks", protect(RankTasksHandler(eng, logger)))
	mux.Handle("POST /prompt-category", protect(PromptCategoryHandler(eng, logger)))

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", requestIDHeader, "X-Platform", "X-App-Version", "X-Session-Id", "X-Device-Locale"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: !wildcard(origins),
	})

	return c.Handler(RequestLogger(logger)(Recover(logger)(mux)))
}

func wildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
