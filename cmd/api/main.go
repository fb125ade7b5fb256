package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Fsisnio/procure-sub001/api/swagger" // swagger docs
	"github.com/Fsisnio/procure-sub001/internal/config"
	"github.com/Fsisnio/procure-sub001/internal/handler"
	"github.com/Fsisnio/procure-sub001/internal/middleware"
	"github.com/Fsisnio/procure-sub001/internal/seed"
	"github.com/Fsisnio/procure-sub001/internal/service"
	"github.com/Fsisnio/procure-sub001/internal/store"
	"github.com/Fsisnio/procure-sub001/internal/websocket"
)

// @title           Multi-Tenant Authorization API
// @version         1.0
// @description     Seeds and governs tenants, users, roles and permissions, with a password policy engine.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := config.Load()
	ctx := context.Background()

	kv, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Store initialization failed: %v", err)
	}
	log.Printf("Store backend: %s", cfg.StoreBackend)

	// Seed the authorization model exactly once; an empty store gets the
	// full catalog/roles/tenants/users closure, a seeded store is untouched.
	if err := seed.NewBootstrapper(kv).Bootstrap(ctx); err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
	}

	// Set up WebSocket Hub for directory events
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Store -> Directory -> Service -> Handler)
	dir := service.NewDirectory(kv)
	roleService := service.NewRoleService(dir)
	tenantService := service.NewTenantService(dir, wsHub)
	userService := service.NewUserService(dir, wsHub)
	authService := service.NewAuthService(dir, wsHub, middleware.GetJWTSecret(), cfg.TokenTTL)

	middleware.InitPermissionMiddleware(roleService)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService, userService)
	tenantHandler := handler.NewTenantHandler(tenantService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint for directory events
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	tenantHandler.RegisterRoutes(router.Group(""))
	userHandler.RegisterRoutes(router.Group(""))
	roleHandler.RegisterRoutes(router.Group(""))

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// openStore picks the persistence backend from configuration. Memory is
// the default for development; postgres and redis share the same
// key-value contract.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "postgres":
		return store.NewGorm(cfg.DatabaseDSN)
	case "redis":
		return store.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return store.NewMemory(), nil
	}
}
