package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/api/handler"
	"github.com/bistroboss/bistro-api/internal/api/middleware"
	"github.com/bistroboss/bistro-api/internal/core/service"
	mongodb "github.com/bistroboss/bistro-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bistroboss/bistro-api/internal/infrastructure/db/redis"
	"github.com/bistroboss/bistro-api/internal/infrastructure/payment"
	"github.com/bistroboss/bistro-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret, stripeKey string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	log := logger.Get()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bistro"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(jwtSecret, time.Hour)
	userService := service.NewUserService(userRepo, log)
	catalogService := service.NewCatalogService(menuRepo, reviewRepo, log)
	cartService := service.NewCartService(cartRepo, log)
	paymentService := service.NewPaymentService(
		paymentRepo,
		userRepo,
		menuRepo,
		payment.NewStripeClient(stripeKey),
		redisdb.NewOrderDedup(rdb),
		log,
	)

	// --- Handlers ---
	tokenHandler := handler.NewTokenHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	menuHandler := handler.NewMenuHandler(catalogService)
	reviewHandler := handler.NewReviewHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	statsHandler := handler.NewStatsHandler(paymentService)

	// --- Gates ---
	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.AdminOnly(userRepo)

	// --- Auth ---
	e.POST("/jwt", tokenHandler.Issue)

	// --- Users ---
	e.POST("/users", userHandler.Create)
	e.GET("/users", userHandler.List, auth, adminOnly)
	e.GET("/users/admin/:email", userHandler.AdminCheck, auth)
	e.PATCH("/users/admin/:id", userHandler.Promote, auth, adminOnly)
	e.DELETE("/users/admin/:id", userHandler.Delete, auth, adminOnly)

	// --- Catalog ---
	e.GET("/menu", menuHandler.List)
	e.POST("/menu", menuHandler.Create, auth, adminOnly)
	e.DELETE("/menu/:id", menuHandler.Delete, auth, adminOnly)
	e.GET("/reviews", reviewHandler.List)

	// --- Carts ---
	e.POST("/carts", cartHandler.Add)
	e.GET("/carts", cartHandler.List, auth)
	e.DELETE("/carts/:id", cartHandler.Delete, auth)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, auth)
	e.POST("/payments", paymentHandler.Record, auth)

	// --- Admin dashboards ---
	e.GET("/admin-stats", statsHandler.AdminStats, auth, adminOnly)
	e.GET("/order-stats", statsHandler.OrderStats, auth, adminOnly)

	// --- Probes, metrics, docs ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Liveness)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
