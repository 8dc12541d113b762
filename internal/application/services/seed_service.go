package services

import (
	"context"
	"fmt"

	"post-service/internal/domain/entities"
	"post-service/internal/domain/repositories"
)

const (
	SeedUserEmail = "demo@example.com"
	seedUserName  = "Demo User"
)

// SeedService provisions the demo user and two demo posts. The user lookup
// is idempotent; the post insertions are not: every run adds two more rows.
type SeedService struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
}

func NewSeedService(userRepo repositories.UserRepository, postRepo repositories.PostRepository) *SeedService {
	return &SeedService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (s *SeedService) Run(ctx context.Context) error {
	validatedUser, err := entities.NewValidatedUser(entities.NewUser(SeedUserEmail, seedUserName, ""))
	if err != nil {
		return err
	}

	demoUser, err := s.userRepo.FindOrCreateByEmail(ctx, validatedUser)
	if err != nil {
		return fmt.Errorf("seeding demo user: %w", err)
	}

	firstContent := "This is the first demo post."
	secondContent := "This is the second demo post."
	demoPosts := []*entities.Post{
		entities.NewPost("Hello World", &firstContent, demoUser.Id),
		entities.NewPost("Getting Started", &secondContent, demoUser.Id),
	}

	for _, post := range demoPosts {
		validatedPost, err := entities.NewValidatedPost(post)
		if err != nil {
			return err
		}
		if _, err := s.postRepo.Create(ctx, validatedPost); err != nil {
			return fmt.Errorf("seeding demo post %q: %w", post.Title, err)
		}
	}

	return nil
}
