package main

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/recipe-sharing-api/internal/config"
	"github.com/yukikurage/recipe-sharing-api/internal/constants"
	"github.com/yukikurage/recipe-sharing-api/internal/database"
	"github.com/yukikurage/recipe-sharing-api/internal/handlers"
	"github.com/yukikurage/recipe-sharing-api/internal/middleware"
	"github.com/yukikurage/recipe-sharing-api/internal/repository"
	"github.com/yukikurage/recipe-sharing-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware. Redis when configured, signed cookies otherwise.
	store, err := newSessionStore(cfg)
	if err != nil {
		logrus.Fatalf("Failed to create session store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	authService := services.NewAuthService(userRepo)
	recipeService := services.NewRecipeService(recipeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	// Root endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Recipe API Server",
		})
	})

	// Auth routes
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.GET("/check_session", middleware.RequireAuth(), authHandler.CheckSession)
	r.DELETE("/logout", middleware.RequireAuth(), authHandler.Logout)

	// Recipe routes (protected)
	recipes := r.Group("/recipes")
	recipes.Use(middleware.RequireAuth())
	{
		recipes.GET("", recipeHandler.ListRecipes)
		recipes.POST("", recipeHandler.CreateRecipe)
	}

	// Start server
	logrus.Infof("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	if cfg.RedisHost == "" {
		return cookie.NewStore([]byte(cfg.SessionSecret)), nil
	}

	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	return redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
}
