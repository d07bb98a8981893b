package main

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sitebuilder-backend/api/handlers"
	"sitebuilder-backend/api/middleware"
	"sitebuilder-backend/shared/config"
	"sitebuilder-backend/shared/database"
	"sitebuilder-backend/shared/database/models"
	utils "sitebuilder-backend/shared/utils/auth"
	"sitebuilder-backend/shared/utils/cache"

	_ "sitebuilder-backend/docs"
)

// getIntConfig converts a string config value to int with a fallback
func getIntConfig(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: Could not convert config value '%s' to int, using default %d", value, defaultValue)
		return defaultValue
	}

	return intValue
}

// @title Site Builder API
// @version 1.0
// @description Backend API for the multi-tenant website builder

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	// Load configuration
	config.LoadConfig()
	cfg := config.GetConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Seed super admin account
	if err := database.SeedDatabase(); err != nil {
		log.Printf("⚠️  Database seeding failed: %v", err)
	}

	// Warm up the Redis cache connection; lookups degrade to the
	// database when Redis is down
	if err := cache.InitCacheManager(); err != nil {
		log.Printf("⚠️  Cache unavailable, slug lookups will hit the database: %v", err)
	}

	// Initialize handlers
	db := database.GetDB()
	mailer := utils.NewEmailService()
	authHandler := handlers.NewAuthHandler(db, mailer)
	userHandler := handlers.NewUserHandler(db)
	websiteHandler := handlers.NewWebsiteHandler(db)
	webpageHandler := handlers.NewWebpageHandler(db)
	sectionHandler := handlers.NewSectionHandler(db)
	contentHandler := handlers.NewContentHandler(db)
	themeHandler := handlers.NewThemeHandler(db)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(30 * time.Minute)

	generalConfig := middleware.RateLimitConfig{
		MaxRequests:   getIntConfig(cfg.RateLimitMaxRequests, 100),
		TimeWindow:    time.Duration(getIntConfig(cfg.RateLimitTimeWindowSeconds, 60)) * time.Second,
		BlockDuration: time.Duration(getIntConfig(cfg.RateLimitBlockDurationMinutes, 15)) * time.Minute,
	}

	loginConfig := middleware.RateLimitConfig{
		MaxRequests:   getIntConfig(cfg.LoginRateLimitMaxAttempts, 5),
		TimeWindow:    time.Duration(getIntConfig(cfg.LoginRateLimitWindowSeconds, 300)) * time.Second,
		BlockDuration: time.Duration(getIntConfig(cfg.LoginRateLimitBlockMinutes, 30)) * time.Minute,
	}

	registerConfig := middleware.RateLimitConfig{
		MaxRequests:   getIntConfig(cfg.RegisterRateLimitMaxAttempts, 3),
		TimeWindow:    time.Duration(getIntConfig(cfg.RegisterRateLimitWindowHours, 24)) * time.Hour,
		BlockDuration: time.Duration(getIntConfig(cfg.RegisterRateLimitBlockHours, 48)) * time.Hour,
	}

	otpConfig := middleware.RateLimitConfig{
		MaxRequests:   getIntConfig(cfg.OTPRateLimitMaxAttempts, 5),
		TimeWindow:    time.Duration(getIntConfig(cfg.OTPRateLimitWindowMinutes, 15)) * time.Minute,
		BlockDuration: time.Duration(getIntConfig(cfg.OTPRateLimitBlockMinutes, 30)) * time.Minute,
	}

	passwordResetConfig := middleware.RateLimitConfig{
		MaxRequests:   getIntConfig(cfg.PasswordResetMaxAttempts, 3),
		TimeWindow:    time.Duration(getIntConfig(cfg.PasswordResetWindowMinutes, 60)) * time.Minute,
		BlockDuration: time.Duration(getIntConfig(cfg.PasswordResetBlockHours, 24)) * time.Hour,
	}

	router := gin.Default()

	// CORS: the frontend sends credentials (refresh token cookie)
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(rateLimiter.RateLimitMiddleware(generalConfig))
	router.Use(middleware.UnifiedResponseMiddleware())

	// Auth routes
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/register-user", rateLimiter.RegistrationRateLimitMiddleware(registerConfig), authHandler.Register)
		authRoutes.POST("/login", rateLimiter.LoginRateLimitMiddleware(loginConfig), authHandler.Login)
		authRoutes.GET("/verify-email", authHandler.VerifyEmail)
		authRoutes.POST("/send-otp", rateLimiter.OTPRateLimitMiddleware(otpConfig), authHandler.SendOTP)
		authRoutes.POST("/verify-otp", rateLimiter.OTPRateLimitMiddleware(otpConfig), authHandler.VerifyOTP)
		authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		authRoutes.POST("/forgot-password", rateLimiter.PasswordResetRateLimitMiddleware(passwordResetConfig), authHandler.ForgotPassword)
		authRoutes.POST("/reset-password", rateLimiter.PasswordResetRateLimitMiddleware(passwordResetConfig), authHandler.ResetPassword)
		authRoutes.POST("/change-password", middleware.AuthMiddleware(), authHandler.ChangePassword)
	}

	// User routes
	userRoutes := router.Group("/api/users", middleware.AuthMiddleware())
	{
		userRoutes.GET("/me", userHandler.Me)
		userRoutes.GET("", middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin), userHandler.List)
	}

	// Website routes
	websiteRoutes := router.Group("/api/websites", middleware.AuthMiddleware())
	{
		websiteRoutes.POST("", websiteHandler.Create)
		websiteRoutes.GET("", websiteHandler.List)
		websiteRoutes.GET("/:id", websiteHandler.Get)
		websiteRoutes.GET("/slug/:slug", websiteHandler.GetBySlug)
		websiteRoutes.PUT("/:id", websiteHandler.Update)
		websiteRoutes.PATCH("/:id/status", websiteHandler.UpdateStatus)
		websiteRoutes.POST("/:id/clone", websiteHandler.Clone)
		websiteRoutes.DELETE("/:id", websiteHandler.Delete)
	}

	// Page routes
	pageRoutes := router.Group("/api/pages", middleware.AuthMiddleware())
	{
		pageRoutes.POST("", webpageHandler.Create)
		pageRoutes.GET("/website/:websiteId", webpageHandler.ListByWebsite)
		pageRoutes.PATCH("/bulk-reorder", webpageHandler.BulkReorder)
		pageRoutes.GET("/:id", webpageHandler.Get)
		pageRoutes.PUT("/:id", webpageHandler.Update)
		pageRoutes.PATCH("/:id/reorder", webpageHandler.Reorder)
		pageRoutes.DELETE("/:id", webpageHandler.Delete)
	}

	// Section routes
	sectionRoutes := router.Group("/api/sections", middleware.AuthMiddleware())
	{
		sectionRoutes.POST("", sectionHandler.Create)
		sectionRoutes.GET("/page/:pageId", sectionHandler.ListByPage)
		sectionRoutes.GET("/:id", sectionHandler.Get)
		sectionRoutes.PUT("/:id", sectionHandler.Update)
		sectionRoutes.PATCH("/:id/reorder", sectionHandler.Reorder)
		sectionRoutes.POST("/:id/duplicate", sectionHandler.Duplicate)
		sectionRoutes.DELETE("/:id", sectionHandler.Delete)
	}

	// Content routes
	contentRoutes := router.Group("/api/content", middleware.AuthMiddleware())
	{
		contentRoutes.GET("/section/:sectionId", contentHandler.GetBySection)
		contentRoutes.PUT("/section/:sectionId", contentHandler.Upsert)
		contentRoutes.POST("/section/:sectionId/media", contentHandler.UploadMedia)
		contentRoutes.DELETE("/section/:sectionId/media/:mediaId", contentHandler.DeleteMedia)
	}

	// Theme routes
	themeRoutes := router.Group("/api/themes", middleware.AuthMiddleware())
	{
		themeRoutes.GET("/presets", themeHandler.ListPresets)
		themeRoutes.GET("/website/:websiteId", themeHandler.GetByWebsite)
		themeRoutes.PUT("/website/:websiteId", themeHandler.Update)
		themeRoutes.POST("/website/:websiteId/apply-preset", themeHandler.ApplyPreset)
		themeRoutes.POST("/website/:websiteId/reset", themeHandler.Reset)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "sitebuilder",
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Site Builder API starting on port %s...", cfg.Port)
	router.Run(":" + cfg.Port)
}
