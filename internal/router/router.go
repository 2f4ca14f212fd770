package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stagelink/approval/backend/internal/handlers"
	"github.com/stagelink/approval/backend/internal/middleware"
	"github.com/stagelink/approval/backend/internal/models"
	"github.com/stagelink/approval/backend/internal/repositories"
	"github.com/stagelink/approval/backend/pkg/config"
	"github.com/stagelink/approval/backend/pkg/recaptcha"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, cfg *config.Config, pgdb *gorm.DB, mgClient *mongo.Client, firebaseAuthClient *auth.Client) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.Profile{},
		&models.ContentItem{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	profileRepo := repositories.NewPostgresProfileRepository(pgdb)
	contentRepo := repositories.NewPostgresContentRepository(pgdb)
	activityRepo := repositories.NewMongoActivityRepository(mgClient.Database("approval"))

	verifier := recaptcha.NewVerifier(cfg.RecaptchaSecret, cfg.RecaptchaVerifyURL, cfg.RecaptchaMinScore)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(profileRepo, firebaseAuthClient, verifier, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	api.GET("/session", authHandler.Session)

	contentHandler := handlers.NewContentHandler(contentRepo, profileRepo, activityRepo)
	contentHandler.RegisterContentRoutes(api)
	log.Println("Content routes configured.")

	// --- Admin-only routes ---
	admin := api.Group("")
	admin.Use(middleware.RequireAdmin())

	profileHandler := handlers.NewProfileHandler(profileRepo)
	admin.GET("/profiles", profileHandler.ListClientProfiles)
	contentHandler.RegisterAdminContentRoutes(admin)
	log.Println("Admin routes configured.")

	log.Println("All routes configured.")
}
