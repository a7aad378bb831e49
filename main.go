package main

import (
	"log"
	"net/http"
	"os"

	"gamepress-cms/config"
	"gamepress-cms/handlers"
	"gamepress-cms/middleware"
	"gamepress-cms/models"
	"gamepress-cms/repositories"
	"gamepress-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	historyRepo := repositories.NewApprovalHistoryRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	platformRepo := repositories.NewPlatformRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	gameRepo := repositories.NewGameRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, historyRepo)
	catalogService := services.NewCatalogService(categoryRepo, platformRepo, companyRepo, gameRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	uploadHandler := handlers.NewUploadHandler(envOr("UPLOAD_DIR", "./static/uploads"))

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.Static("/static/uploads", envOr("UPLOAD_DIR", "./static/uploads"))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// User administration
			users := protected.Group("/users")
			users.Use(middleware.RequireRole(models.RoleAdmin))
			{
				users.GET("", authHandler.ListUsers)
				users.PUT("/:id/role", authHandler.UpdateUserRole)
			}

			// Articles and the editorial workflow
			articles := protected.Group("/articles")
			{
				articles.POST("", middleware.RequireRole(models.RoleEditor), articleHandler.CreateArticle)
				articles.GET("", articleHandler.GetArticles)
				articles.GET("/:id", articleHandler.GetArticle)
				articles.PUT("/:id", articleHandler.UpdateArticle)
				articles.PUT("/:id/status", articleHandler.UpdateArticleStatus)
				articles.DELETE("/:id", articleHandler.TrashArticle)
				articles.POST("/:id/restore", articleHandler.RestoreArticle)
				articles.GET("/:id/history", articleHandler.GetArticleHistory)
			}

			// Catalog (admin console)
			categories := protected.Group("/categories")
			{
				categories.GET("", catalogHandler.GetCategories)
				categories.POST("", middleware.RequireRole(models.RoleEditor), catalogHandler.CreateCategory)
				categories.PUT("/:id", middleware.RequireRole(models.RoleEditor), catalogHandler.UpdateCategory)
				categories.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), catalogHandler.DeleteCategory)
			}

			platforms := protected.Group("/platforms")
			{
				platforms.GET("", catalogHandler.GetPlatforms)
				platforms.POST("", middleware.RequireRole(models.RoleEditor), catalogHandler.CreatePlatform)
				platforms.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), catalogHandler.DeletePlatform)
			}

			companies := protected.Group("/companies")
			{
				companies.GET("", catalogHandler.GetCompanies)
				companies.POST("", middleware.RequireRole(models.RoleEditor), catalogHandler.CreateCompany)
				companies.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), catalogHandler.DeleteCompany)
			}

			games := protected.Group("/games")
			{
				games.GET("", catalogHandler.GetGames)
				games.GET("/:id", catalogHandler.GetGame)
				games.POST("", middleware.RequireRole(models.RoleEditor), catalogHandler.CreateGame)
				games.PUT("/:id", middleware.RequireRole(models.RoleEditor), catalogHandler.UpdateGame)
				games.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), catalogHandler.DeleteGame)
			}

			// Uploads
			protected.POST("/uploads/images", middleware.RequireRole(models.RoleEditor), uploadHandler.UploadImage)
		}

		// Public routes (published content only)
		public := v1.Group("/public")
		{
			public.GET("/articles", articleHandler.GetPublicArticles)
			public.GET("/articles/:id", articleHandler.GetPublicArticle)
			public.GET("/games", catalogHandler.GetGames)
			public.GET("/games/:id", catalogHandler.GetGame)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
