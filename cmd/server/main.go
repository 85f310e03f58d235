package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cypherlabdev/parlay-recommender-service/internal/cache"
	"github.com/cypherlabdev/parlay-recommender-service/internal/catalog"
	"github.com/cypherlabdev/parlay-recommender-service/internal/config"
	"github.com/cypherlabdev/parlay-recommender-service/internal/explain"
	httpHandler "github.com/cypherlabdev/parlay-recommender-service/internal/handler/http"
	"github.com/cypherlabdev/parlay-recommender-service/internal/messaging"
	"github.com/cypherlabdev/parlay-recommender-service/internal/metrics"
	"github.com/cypherlabdev/parlay-recommender-service/internal/oddsapi"
	"github.com/cypherlabdev/parlay-recommender-service/internal/service"
	"github.com/cypherlabdev/parlay-recommender-service/internal/storage"
	"github.com/cypherlabdev/parlay-recommender-service/pkg/parlay"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting parlay-recommender-service")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// Create Redis cache
	redisCache := cache.NewRedisCache(
		cache.RedisCacheConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		},
		logger,
	)
	defer redisCache.Close()

	// Test Redis connection
	if err := redisCache.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	if sports, err := redisCache.Sports(ctx); err == nil {
		logger.Info().Str("addr", cfg.Redis.Addr).Strs("cached_sports", sports).Msg("connected to Redis")
	}

	// Create Postgres bet store
	store, err := storage.NewPostgresStore(cfg.Postgres.DSN, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bet store")
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database schema")
	}
	logger.Info().Msg("bet store initialized")

	// Create odds provider client and catalog
	oddsClient := oddsapi.NewClient(
		oddsapi.ClientConfig{
			BaseURL:           cfg.OddsAPI.BaseURL,
			APIKey:            cfg.OddsAPI.APIKey,
			Regions:           cfg.OddsAPI.Regions,
			Markets:           cfg.OddsAPI.Markets,
			Timeout:           cfg.OddsAPI.Timeout,
			RequestsPerMinute: cfg.OddsAPI.RequestsPerMinute,
		},
		logger,
	)
	if cfg.OddsAPI.APIKey == "" {
		logger.Warn().Msg("odds API key not set, catalog relies on Kafka snapshots")
	}
	catalogProvider := catalog.NewProvider(redisCache, oddsClient, cfg.OddsAPI.Sports, m, logger)

	// Explanations are optional
	var explainer service.Explainer
	if cfg.Explainer.APIKey != "" {
		explainer = explain.NewClient(
			explain.ClientConfig{
				BaseURL:     cfg.Explainer.BaseURL,
				APIKey:      cfg.Explainer.APIKey,
				Model:       cfg.Explainer.Model,
				MaxTokens:   cfg.Explainer.MaxTokens,
				Temperature: cfg.Explainer.Temperature,
				Timeout:     cfg.Explainer.Timeout,
			},
			logger,
		)
		logger.Info().Str("model", cfg.Explainer.Model).Msg("explanations enabled")
	}

	selector := parlay.NewSelector(cfg.Selector.ToSelectorParams())
	logger.Info().
		Interface("params", selector.Params()).
		Msg("selector initialized")

	parlayService := service.NewParlayService(selector, catalogProvider, store, explainer, m, logger)

	// Start Kafka consumer in goroutine
	if cfg.Kafka.Enabled {
		consumer := messaging.NewKafkaConsumer(
			messaging.KafkaConsumerConfig{
				Brokers: cfg.Kafka.Brokers,
				Topic:   cfg.Kafka.Topic,
				GroupID: cfg.Kafka.GroupID,
			},
			redisCache,
			m,
			logger,
		)
		defer consumer.Close()

		go func() {
			if err := consumer.Start(ctx); err != nil {
				logger.Error().Err(err).Msg("Kafka consumer failed")
			}
		}()
	}

	// Setup HTTP router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", httpHandler.UserIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health and monitoring endpoints
	router.Get("/health", healthHandler)
	router.Get("/ready", readyHandler(redisCache, store))
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Register API routes
	httpHandler.NewParlayHandler(parlayService, logger).RegisterRoutes(router)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")

	// Cancel context to stop consumer
	cancel()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

// configPath returns PARLAY_CONFIG, or the bundled file when it exists
func configPath() string {
	if path := os.Getenv("PARLAY_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("config/config.yaml"); err == nil {
		return "config/config.yaml"
	}
	return ""
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set format
	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "parlay-recommender").Logger()
}

// healthHandler returns 200 if service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

type pinger interface {
	Ping(ctx context.Context) error
}

// readyHandler returns 200 if Redis and Postgres are reachable
func readyHandler(redis, postgres pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := redis.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Redis unavailable"))
			return
		}
		if err := postgres.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Postgres unavailable"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
