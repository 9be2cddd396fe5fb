// internal/router/router.go
package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/javajoker/materialmap-backend/internal/config"
	"github.com/javajoker/materialmap-backend/internal/handlers"
	"github.com/javajoker/materialmap-backend/internal/metrics"
	"github.com/javajoker/materialmap-backend/internal/middleware"
	"github.com/javajoker/materialmap-backend/internal/repository"
	"github.com/javajoker/materialmap-backend/internal/services"
	"github.com/javajoker/materialmap-backend/internal/utils"
)

// Handlers bundles the HTTP handlers mounted by New.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Product   *handlers.ProductHandler
	Store     *handlers.StoreHandler
	Inventory *handlers.InventoryHandler
	Seed      *handlers.SeedHandler
	Health    *handlers.HealthHandler
}

// Initialize wires repositories, services and handlers on top of db.
// The returned cleanup stops background workers owned by the router.
func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, func(), error) {
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	storeRepo := repository.NewStoreRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	seedRepo := repository.NewSeedRepo(db)

	// Initialize services
	storageService, err := services.NewStorageService(cfg.Storage, m)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	authService := services.NewAuthService(userRepo, cfg)
	productService := services.NewProductService(productRepo, storageService)
	storeService := services.NewStoreService(storeRepo, storageService, m)
	inventoryService := services.NewInventoryService(inventoryRepo, productRepo, storeRepo, m)
	seedService := services.NewSeedService(productRepo, seedRepo, cfg.Seed, m)
	statusService := services.NewStatusService(userRepo, productRepo, storeRepo, inventoryRepo)

	// Initialize handlers
	h := Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Product:   handlers.NewProductHandler(productService, storageService),
		Store:     handlers.NewStoreHandler(storeService, storageService),
		Inventory: handlers.NewInventoryHandler(inventoryService),
		Seed:      handlers.NewSeedHandler(seedService),
		Health:    handlers.NewHealthHandler(statusService, cfg.Environment, cfg.Database.URL),
	}

	limiters := middleware.NewRateLimiters(cfg.RateLimit)
	return New(cfg, h, m, limiters), limiters.Stop, nil
}

// New builds the engine and mounts every route. A nil m disables /metrics.
func New(cfg *config.Config, h Handlers, m *metrics.Metrics, limiters *middleware.RateLimiters) *gin.Engine {
	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(m.Middleware())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(limiters.General.Middleware())

	if m != nil {
		r.GET("/metrics", m.Handler())
	}

	r.GET("/", h.Health.Root)
	r.GET("/health", h.Health.Health)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.APIHealth)
		api.GET("/status", h.Health.Status)

		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(limiters.Auth.Middleware())
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", middleware.OptionalAuth(), h.Auth.Logout)
			auth.GET("/me", middleware.AuthRequired(), h.Auth.Me)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", h.Product.GetProducts)
			products.GET("/search", h.Product.SearchProducts)
			products.GET("/category/:category", h.Product.GetProductsByCategory)
			products.GET("/:id", h.Product.GetProduct)

			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", h.Product.CreateProduct)
				protected.PUT("/:id", h.Product.UpdateProduct)
				protected.DELETE("/:id", h.Product.DeleteProduct)
				protected.POST("/:id/image", limiters.Upload.Middleware(), h.Product.UploadImage)
			}
		}

		// Store routes
		api.GET("/store-categories", h.Store.GetCategories)
		stores := api.Group("/stores")
		{
			stores.GET("", h.Store.GetStores)
			stores.GET("/nearby", h.Store.GetNearbyStores)
			stores.GET("/category/:category", h.Store.GetStoresByCategory)
			stores.GET("/:id", h.Store.GetStore)

			protected := stores.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", h.Store.CreateStore)
				protected.PUT("/:id", h.Store.UpdateStore)
				protected.DELETE("/:id", h.Store.DeleteStore)
				protected.POST("/:id/image", limiters.Upload.Middleware(), h.Store.UploadImage)
			}
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.GET("", h.Inventory.GetItems)
			inventory.GET("/product/:product_id", h.Inventory.GetOffersForProduct)
			inventory.GET("/store/:store_id", h.Inventory.GetStoreInventory)
			inventory.GET("/:id", h.Inventory.GetItem)

			protected := inventory.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", h.Inventory.CreateItem)
				protected.PUT("/:id", h.Inventory.UpdateItem)
				protected.DELETE("/:id", h.Inventory.DeleteItem)
			}
		}

		// Demo data
		seed := api.Group("")
		seed.Use(limiters.Auth.Middleware())
		{
			seed.POST("/quick-seed", h.Seed.QuickSeed)
			seed.POST("/seed", h.Seed.FullSeed)
		}
	}

	return r
}
