package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/alumify/backend/config"
	"github.com/alumify/backend/internal/api/handlers"
	"github.com/alumify/backend/internal/api/middleware"
	"github.com/alumify/backend/internal/api/routes"
	"github.com/alumify/backend/internal/cache"
	"github.com/alumify/backend/internal/logger"
	pgrepo "github.com/alumify/backend/internal/repositories/postgres"
	"github.com/alumify/backend/internal/services"
	"github.com/alumify/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	log.Info("PostgreSQL connected")

	if err := pgrepo.AutoMigrate(config.PostgresDB); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// Redis is optional: without it, analytics just skips caching.
	var c cache.Cache
	if os.Getenv("REDIS_ADDR") != "" || os.Getenv("REDIS_URI") != "" || os.Getenv("REDIS_URL") != "" {
		if err := config.InitRedis(); err != nil {
			log.Fatalf("Redis init error: %v", err)
		}
		log.Info("Redis connected")
		c = cache.NewRedisCache(config.RedisClient)
	} else {
		log.Warn("REDIS_ADDR not set, analytics caching disabled")
	}

	var uploader storage.Uploader
	if bucket := os.Getenv("REPORT_BUCKET"); bucket != "" {
		gcs, err := storage.NewGCSUploader(context.Background(), bucket)
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		uploader = gcs
	} else {
		log.Warn("REPORT_BUCKET not set, export archiving disabled")
	}

	var verifier services.GoogleTokenVerifier
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		verifier = services.NewGoogleVerifier(clientID)
	} else {
		log.Warn("GOOGLE_CLIENT_ID not set, Google sign-in disabled")
	}

	store := pgrepo.NewStore(config.PostgresDB)

	authSvc := services.NewAuthService(store, verifier)
	surveySvc := services.NewSurveyService(store, c)
	profileSvc := services.NewProfileService(store)
	adminSvc := services.NewAdminService(store, profileSvc)
	analyticsSvc := services.NewAnalyticsService(store, c)
	exportSvc := services.NewExportService(store, uploader)

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery(), middleware.CORS())

	routes.RegisterRoutes(r, routes.Deps{
		Auth:    handlers.NewAuthHandler(authSvc),
		Survey:  handlers.NewSurveyHandler(surveySvc),
		Profile: handlers.NewProfileHandler(profileSvc),
		Admin:   handlers.NewAdminHandler(adminSvc, profileSvc, analyticsSvc, exportSvc),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
