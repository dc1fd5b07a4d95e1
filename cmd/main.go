package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pet-shop-api/internal/auth"
	"pet-shop-api/internal/config"
	domainCatalog "pet-shop-api/internal/domain/catalog"
	"pet-shop-api/internal/infrastructure/cache/redis"
	"pet-shop-api/internal/infrastructure/database/postgres"
	"pet-shop-api/internal/infrastructure/mail"
	"pet-shop-api/internal/infrastructure/messaging"
	"pet-shop-api/internal/infrastructure/storage/minio"
	"pet-shop-api/internal/logger"
	"pet-shop-api/internal/metrics"
	"pet-shop-api/internal/middleware"
	"pet-shop-api/internal/routes"
	"pet-shop-api/internal/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("environment", env),
	)

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startCancel()

	shutdownTracing, err := tracing.Init(startCtx, cfg.Tracing, env)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	keys, err := auth.LoadKeyPair(cfg.Auth.PrivateKeyPath, cfg.Auth.PublicKeyPath)
	if err != nil {
		logger.Fatal("Failed to load signing keys", zap.Error(err))
	}

	storage, err := minio.NewStorage(startCtx, cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	var productCache domainCatalog.ProductCache
	var redisCache *redis.ProductCache
	if cfg.Redis.Addr != "" {
		redisCache, err = redis.NewProductCache(startCtx, cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		productCache = redisCache
	}

	publisher, err := messaging.NewPublisher(cfg.Events)
	if err != nil {
		logger.Fatal("Failed to initialize event publisher", zap.Error(err))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst)

	router := routes.SetupRoutes(cfg, &routes.Dependencies{
		DB:          db,
		Issuer:      auth.NewIssuer(keys.Private, cfg.Server.BaseURL, cfg.Auth.TokenTTL, time.Now),
		Verifier:    auth.NewVerifier(keys.Public, time.Now),
		Storage:     storage,
		Cache:       productCache,
		Publisher:   publisher,
		Mailer:      mail.NewMailer(cfg.SMTP),
		Metrics:     metrics.New(),
		RateLimiter: limiter,
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownPeriod)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", zap.Error(err))
	}

	limiter.Stop()
	if err := publisher.Close(); err != nil {
		logger.Error("Failed to close event publisher", zap.Error(err))
	}
	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			logger.Error("Failed to close redis", zap.Error(err))
		}
	}
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database connection", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("Failed to flush traces", zap.Error(err))
	}

	logger.Info("Server exited properly")
}
