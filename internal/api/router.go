package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/velora/storefront/internal/api/handler"
	"github.com/velora/storefront/internal/api/middleware"
	"github.com/velora/storefront/internal/core/domain"
	"github.com/velora/storefront/internal/core/service"
	"github.com/velora/storefront/internal/infrastructure/config"
	mongostore "github.com/velora/storefront/internal/infrastructure/db/mongo"
	redisstore "github.com/velora/storefront/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, images service.ImageStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	tokenStore := redisstore.NewTokenStore(rdb)
	featuredCache := redisstore.NewFeaturedCache(rdb)

	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, log)
	cartService := service.NewCartService(userRepo, productRepo, log)
	catalogService := service.NewCatalogService(productRepo, featuredCache, images, log)

	secureCookies := cfg.IsProduction()
	authHandler := handler.NewAuthHandler(authService, secureCookies)
	cartHandler := handler.NewCartHandler(cartService)
	productHandler := handler.NewProductHandler(catalogService)

	authRequired := middleware.Auth(cfg.JWT.AccessSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.POST("/refresh", authHandler.Refresh)
	e.GET("/profile", authHandler.Profile, authRequired)

	// --- Cart routes (authenticated user) ---
	cart := e.Group("/cart", authRequired)
	cart.GET("", cartHandler.Items)
	cart.POST("", cartHandler.Add)
	cart.PUT("/:id", cartHandler.UpdateQuantity)
	cart.DELETE("", cartHandler.Remove)

	// --- Catalog routes ---
	// Public storefront reads.
	e.GET("/products/featured", productHandler.Featured)
	e.GET("/products/category/:category", productHandler.ByCategory)
	e.GET("/products/recommend", productHandler.Recommend)

	// Admin catalog management. The static routes above take precedence over
	// the :id parameter routes.
	products := e.Group("/products", authRequired, adminOnly)
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.DELETE("/:id", productHandler.Delete)
	products.PATCH("/:id", productHandler.ToggleFeatured)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
