package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"campusfood/internal/config"
	"campusfood/internal/database"
	"campusfood/internal/middleware"
	"campusfood/internal/modules/auth"
	"campusfood/internal/modules/feed"
	"campusfood/internal/modules/location"
	"campusfood/internal/modules/review"
	jwtsvc "campusfood/internal/pkg/jwt"
	"campusfood/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	hub := feed.NewHub()
	defer hub.Close()
	feedHandler := feed.NewHandler(hub)

	aggregator := review.NewAggregator(reviewRepo)

	reviewService := review.NewService(reviewRepo, hub)
	reviewQuery := review.NewQueryService(reviewRepo, userRepo)
	reviewHandler := review.NewHandler(reviewService, reviewQuery)

	locationService := location.NewService(locationRepo, aggregator)
	locationHandler := location.NewHandler(locationService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// anonymous submissions fall back to the default identity
		optional := v1.Group("/")
		optional.Use(middleware.OptionalAuth(j))

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))

		locationHandler.RegisterRoutes(v1)
		feedHandler.RegisterRoutes(v1)
		authHandler.RegisterRoutes(v1, protected)
		reviewHandler.RegisterRoutes(v1, optional, protected)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
