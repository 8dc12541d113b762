package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"post-service/internal/application/services"
	"post-service/internal/config"
	"post-service/internal/delivery/handler"
	"post-service/internal/infrastructure"
	"post-service/internal/infrastructure/auth"
	"post-service/internal/infrastructure/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)

	var counter infrastructure.WindowCounter = infrastructure.NewMemoryWindowCounter()
	if cfg.RedisURL != "" {
		redisClient, err := infrastructure.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("failed to connect to redis: ", err)
		}
		counter = infrastructure.NewRedisWindowCounter(redisClient)
	}
	createLimiter := infrastructure.NewRateLimiter(counter, cfg.CreatePostWindow, cfg.CreatePostMax)

	resolver := auth.NewSessionResolver(auth.ProviderConfig{
		ID:           cfg.Auth.ProviderID,
		Issuer:       cfg.Auth.Issuer,
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		DiscoveryURL: cfg.Auth.DiscoveryURL,
		Scope:        cfg.Auth.Scope,
	})

	postService := services.NewPostService(postRepo, createLimiter)
	h := handler.NewHandler(postService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(handler.RequestThrottle(rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)))

	handler.RegisterRoutes(e, h, handler.Session(resolver, userRepo))

	log.Println("server listening on :" + cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
