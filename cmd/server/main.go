package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/InputUsername/metadata-filter/cache"
	"github.com/InputUsername/metadata-filter/config"
	"github.com/InputUsername/metadata-filter/rules"
	"github.com/InputUsername/metadata-filter/server"
)

const (
	defaultAddr         = ":8080"
	defaultRulesFile    = "./rules.yaml"
	defaultLogLevel     = "info"
	httpReadTimeout     = 30 * time.Second
	httpWriteTimeout    = 30 * time.Second
	httpIdleTimeout     = 60 * time.Second
	httpShutdownTimeout = 10 * time.Second
)

func main() {
	addr := getEnv("ADDR", defaultAddr)
	rulesFile := getEnv("RULES_FILE", defaultRulesFile)
	redisURL := getEnv("REDIS_URL", "")
	logLevel := getEnv("LOG_LEVEL", defaultLogLevel)

	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		slog.Warn("unknown log level, using info", "level", logLevel)
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	log.Info("starting metadata filter server", "log_level", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sets := rules.PredefinedSets()
	if _, statErr := os.Stat(rulesFile); statErr == nil {
		log.Info("loading rule file", "file", rulesFile)
		cfg, err := config.Load(rulesFile)
		if err != nil {
			log.Error("failed to load rule file", "error", err)
			os.Exit(1)
		}
		built, err := cfg.Build()
		if err != nil {
			log.Error("failed to build rule sets", "error", err)
			os.Exit(1)
		}
		for name, set := range built {
			sets[name] = set
		}
	} else {
		log.Info("using predefined rule sets only (rule file not found)", "checked", rulesFile)
	}

	var redisClient *redis.Client
	var resultCache cache.Cache
	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Error("failed to parse redis URL", "error", err)
			os.Exit(1)
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Error("failed to connect to redis", "error", err, "url", redisURL)
			os.Exit(1)
		}
		log.Info("redis connection established", "url", redisURL)

		resultCache = cache.NewRedis(redisClient, cache.Config{})
	} else {
		resultCache = cache.NewMemory(cache.Config{})
	}
	defer resultCache.Close()

	srv, err := server.New(sets, log, &server.Config{
		RedisClient: redisClient,
		Cache:       resultCache,
	})
	if err != nil {
		log.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      srv.Router(),
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: httpWriteTimeout,
		IdleTimeout:  httpIdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("received shutdown signal", "signal", sig.String())
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting API server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down API server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", "error", err)
			os.Exit(1)
		}
	case err := <-errCh:
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server shutdown complete")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
