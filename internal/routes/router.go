package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pet-shop-api/internal/auth"
	"pet-shop-api/internal/config"
	"pet-shop-api/internal/delivery/http/handler"
	domainCatalog "pet-shop-api/internal/domain/catalog"
	domainFile "pet-shop-api/internal/domain/file"
	domainOrder "pet-shop-api/internal/domain/order"
	"pet-shop-api/internal/infrastructure/database/postgres"
	"pet-shop-api/internal/infrastructure/mail"
	"pet-shop-api/internal/logger"
	"pet-shop-api/internal/metrics"
	"pet-shop-api/internal/middleware"
	"pet-shop-api/internal/usecase/catalog"
	"pet-shop-api/internal/usecase/content"
	"pet-shop-api/internal/usecase/file"
	"pet-shop-api/internal/usecase/order"
	"pet-shop-api/internal/usecase/user"
)

// Dependencies are the long-lived clients built in main.
// Cache may be nil.
type Dependencies struct {
	DB          *postgres.DB
	Issuer      *auth.Issuer
	Verifier    *auth.Verifier
	Storage     domainFile.Storage
	Cache       domainCatalog.ProductCache
	Publisher   domainOrder.EventPublisher
	Mailer      mail.Mailer
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter
}

const fileUploadRoute = "/api/v1/file/upload"

// requestSizeLimit applies SERVER_MAX_BODY_BYTES everywhere except the upload
// route, which takes STORAGE_MAX_UPLOAD_BYTES plus multipart framing.
func requestSizeLimit(cfg *config.Config) gin.HandlerFunc {
	return middleware.RequestSizeLimitMiddleware(cfg.Server.MaxBodyBytes, middleware.RouteLimit{
		Path:    fileUploadRoute,
		MaxSize: cfg.Storage.MaxUploadBytes + middleware.MultipartOverhead,
	})
}

func SetupRoutes(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Order: recovery, request ID, logging, tracing, metrics, security headers, CORS, request size limit, rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.TracingMiddleware(cfg.Tracing.ServiceName))
	router.Use(middleware.MetricsMiddleware(deps.Metrics))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(requestSizeLimit(cfg))
	router.Use(middleware.RateLimitMiddleware(deps.RateLimiter))

	router.GET("/health", healthHandler(deps.DB, deps.Publisher))
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	userRepository := postgres.NewUserRepository(deps.DB)
	userService := user.NewService(userRepository, deps.Issuer, deps.Mailer, cfg)
	userHandler := handler.NewUserHandler(userService)

	productRepository := postgres.NewProductRepository(deps.DB)
	catalogService := catalog.NewService(
		productRepository,
		postgres.NewCategoryRepository(deps.DB),
		postgres.NewBrandRepository(deps.DB),
		deps.Cache,
	)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	statusRepository := postgres.NewOrderStatusRepository(deps.DB)
	paymentRepository := postgres.NewPaymentRepository(deps.DB)
	orderService := order.NewService(
		postgres.NewOrderRepository(deps.DB),
		statusRepository,
		paymentRepository,
		order.NewPricer(productRepository, cfg.Order.StrictCatalog),
		deps.Publisher,
		deps.Metrics,
	)
	orderHandler := handler.NewOrderHandler(orderService)
	statusHandler := handler.NewOrderStatusHandler(order.NewStatusService(statusRepository))
	paymentHandler := handler.NewPaymentHandler(order.NewPaymentService(paymentRepository))

	contentService := content.NewService(
		postgres.NewPromotionRepository(deps.DB),
		postgres.NewPostRepository(deps.DB),
	)
	contentHandler := handler.NewContentHandler(contentService)

	fileService := file.NewService(postgres.NewFileRepository(deps.DB), deps.Storage, cfg.Storage.MaxUploadBytes)
	fileHandler := handler.NewFileHandler(fileService)

	v1 := router.Group("/api/v1")
	{
		userHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		statusHandler.RegisterRoutes(v1)
		contentHandler.RegisterRoutes(v1)
		fileHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Verifier, userRepository, deps.Metrics))
		{
			userHandler.RegisterAuthenticatedRoutes(protected)
			orderHandler.RegisterAuthenticatedRoutes(protected)
			paymentHandler.RegisterAuthenticatedRoutes(protected)
			fileHandler.RegisterAuthenticatedRoutes(protected)

			customer := protected.Group("")
			customer.Use(middleware.CustomerOnly())
			{
				userHandler.RegisterCustomerRoutes(customer)
				orderHandler.RegisterCustomerRoutes(customer)
			}

			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
				catalogHandler.RegisterAdminRoutes(admin)
				orderHandler.RegisterAdminRoutes(admin)
				statusHandler.RegisterAdminRoutes(admin)
				paymentHandler.RegisterAdminRoutes(admin)
				contentHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}

type healthChecker interface {
	Health(ctx context.Context) error
}

// brokerConn is implemented by publishers that hold a long-lived broker session.
type brokerConn interface {
	Connected() bool
}

func healthHandler(db healthChecker, publisher domainOrder.EventPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		// Order events are best effort, so a lost broker degrades but does not fail the check.
		if conn, ok := publisher.(brokerConn); ok && !conn.Connected() {
			c.JSON(http.StatusOK, gin.H{
				"status":  "degraded",
				"message": "Event broker disconnected",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	}
}
