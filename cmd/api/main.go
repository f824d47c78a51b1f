package main

import (
	"log"
	"os"

	_ "github.com/SnehSutariya72/Vehicle-Vault-backend/api/swagger" // swagger docs
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/auth"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/config"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/database"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/handler"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/middleware"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/service"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Vehicle Vault API
// @version         1.0
// @description     Vehicle marketplace backend: users, roles, geo hierarchy, categories and car listings.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	db, err := database.NewConnection(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to MongoDB successfully.")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	hasher := auth.NewHasher(cfg.BcryptCost)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTLMinutes)

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	carRepo := repository.NewCarRepository(db)
	geoRepo := repository.NewGeoRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	authService := service.NewAuthService(userRepo, roleRepo, auditRepo, hasher, issuer)
	userService := service.NewUserService(userRepo, roleRepo, auditRepo, hasher)
	roleService := service.NewRoleService(roleRepo, userRepo, auditRepo)
	carService := service.NewCarService(carRepo, userRepo, roleRepo, auditRepo, wsHub)
	geoService := service.NewGeoService(geoRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	profileService := service.NewProfileService(userRepo, cfg.UploadDir)
	auditService := service.NewAuditService(auditRepo)

	authMiddleware := middleware.NewAuth(issuer, userRepo, roleRepo)
	authn := authMiddleware.Authenticate()

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	carHandler := handler.NewCarHandler(carService)
	agentHandler := handler.NewAgentHandler(carService)
	carDetailsHandler := handler.NewCarDetailsHandler(carService, cfg.UploadDir)
	geoHandler := handler.NewGeoHandler(geoService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	profileHandler := handler.NewProfileHandler(profileService)
	auditHandler := handler.NewAuditHandler(auditService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"}
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

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, issuer)
	})

	// Uploaded images and profile pictures
	router.Static("/uploads", cfg.UploadDir)

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	userHandler.RegisterRoutes(router.Group(""), authn)
	roleHandler.RegisterRoutes(router.Group(""), authn)
	carHandler.RegisterRoutes(router.Group(""))
	agentHandler.RegisterRoutes(router.Group(""), authn)
	carDetailsHandler.RegisterRoutes(router.Group(""))
	geoHandler.RegisterRoutes(router.Group(""))
	categoryHandler.RegisterRoutes(router.Group(""))
	profileHandler.RegisterRoutes(router.Group(""), authn)
	auditHandler.RegisterRoutes(router.Group(""), authn, authMiddleware.RequireRole(model.RoleAdmin))

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
