package main

// @title Geocoding API
// @version 1.0.0
// @description Прокси к геокодеру Photon: поиск мест, поиск рядом с точкой и обратное геокодирование.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes http https

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoding-gateway/docs"
	"github.com/geocoding-gateway/internal/config"
	httpDelivery "github.com/geocoding-gateway/internal/delivery/http"
	"github.com/geocoding-gateway/internal/delivery/http/handler"
	"github.com/geocoding-gateway/internal/domain/repository"
	"github.com/geocoding-gateway/internal/infrastructure/photon"
	"github.com/geocoding-gateway/internal/observability"
	"github.com/geocoding-gateway/internal/pkg/logger"
	"github.com/geocoding-gateway/internal/repository/cache"
	"github.com/geocoding-gateway/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log, handler.ServiceName)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Geocoding API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("upstream", cfg.Upstream.BaseURL),
		zap.Duration("upstream_timeout", cfg.Upstream.Timeout),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	metrics := observability.NewMetrics()

	// 3. Upstream geocoder, optionally behind the Redis cache
	var geocoder repository.GeocoderRepository = photon.NewPhotonClient(&cfg.Upstream, metrics, log)

	var redisClient *cache.Redis
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(context.Background(), &cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		geocoder = cache.NewCachedGeocoder(
			geocoder,
			cache.NewCacheRepository(redisClient),
			cfg.Cache.TTL,
			metrics,
			log,
		)
		log.Info("Response cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	}

	// 4. Use cases and handlers
	geocodingUC := usecase.NewGeocodingUseCase(geocoder, log)

	infoHandler := handler.NewInfoHandler(docs.SwaggerInfo.Version)
	if redisClient != nil {
		infoHandler.WithCheck("redis", redisClient)
	}
	geocodingHandler := handler.NewGeocodingHandler(geocodingUC, log)

	// 5. HTTP server
	server := httpDelivery.NewServer(cfg, log, metrics, infoHandler, geocodingHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
