// Package server exposes the metadata filter over HTTP.
package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/redis/go-redis/v9"

	"github.com/InputUsername/metadata-filter/cache"
	"github.com/InputUsername/metadata-filter/rules"
)

// Config holds configuration for the API server.
type Config struct {
	// DefaultSets are applied when a request names no sets
	// (default: youtube, trim_symbols, trim_whitespace)
	DefaultSets []string
	// RateLimitRequests is the number of requests allowed per window per IP (default: 100)
	RateLimitRequests int
	// RateLimitWindow is the time window for rate limiting (default: 1 minute)
	RateLimitWindow time.Duration
	// RedisClient enables distributed rate limit counters (optional, in-memory if nil)
	RedisClient *redis.Client
	// Cache stores cleaned results keyed by input and sets (optional)
	Cache cache.Cache
}

// Server is the HTTP server for the API.
type Server struct {
	router      *chi.Mux
	logger      *slog.Logger
	sets        map[string]rules.RuleSet
	defaultSets []string
	cache       cache.Cache
}

// New creates a new API server exposing the given rule sets with a chi
// router and middleware stack. When sets is nil the predefined tables are
// served.
func New(sets map[string]rules.RuleSet, log *slog.Logger, cfg *Config) (*Server, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.RateLimitRequests == 0 {
		cfg.RateLimitRequests = 100
	}
	if cfg.RateLimitWindow == 0 {
		cfg.RateLimitWindow = time.Minute
	}

	if sets == nil {
		sets = rules.PredefinedSets()
	}

	defaultSets := cfg.DefaultSets
	if len(defaultSets) == 0 {
		defaultSets = []string{"youtube", "trim_symbols", "trim_whitespace"}
	}
	for _, name := range defaultSets {
		if _, ok := sets[name]; !ok {
			return nil, fmt.Errorf("default set %q is not defined", name)
		}
	}

	s := &Server{
		logger:      log,
		sets:        sets,
		defaultSets: defaultSets,
		cache:       cfg.Cache,
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(httplog.RequestLogger(log, &httplog.Options{
		Level:         slog.LevelInfo,
		RecoverPanics: true,
		Skip: func(req *http.Request, respStatus int) bool {
			return req.URL.Path == "/health"
		},
	}))
	r.Use(RateLimit(RateLimitConfig{
		RequestLimit:   cfg.RateLimitRequests,
		WindowDuration: cfg.RateLimitWindow,
		RedisClient:    cfg.RedisClient,
	}))

	r.Post("/v1/clean", s.handleClean)
	r.Get("/v1/sets", s.handleSets)
	r.Get("/health", s.handleHealth)

	s.router = r

	return s, nil
}

// Router returns the server's router for mounting in an http.Server.
func (s *Server) Router() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
