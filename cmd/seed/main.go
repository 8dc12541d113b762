package main

import (
	"context"
	"log"

	"post-service/internal/application/services"
	"post-service/internal/config"
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

	seed := services.NewSeedService(userRepo, postRepo)
	if err := seed.Run(context.Background()); err != nil {
		log.Fatal("seed failed: ", err)
	}

	count, err := postRepo.CountAll(context.Background())
	if err != nil {
		log.Fatal("seed verification failed: ", err)
	}

	log.Printf("seed complete: demo user %s, %d posts total", services.SeedUserEmail, count)
}
