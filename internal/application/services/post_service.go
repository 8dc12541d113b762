package services

import (
	"context"

	"post-service/internal/application/command"
	"post-service/internal/application/common"
	"post-service/internal/application/interfaces"
	"post-service/internal/application/mapper"
	"post-service/internal/application/query"
	"post-service/internal/domain"
	"post-service/internal/domain/entities"
	"post-service/internal/domain/repositories"
	"post-service/internal/infrastructure"
)

type PostService struct {
	postRepo    repositories.PostRepository
	rateLimiter *infrastructure.RateLimiter
}

func NewPostService(postRepo repositories.PostRepository, rateLimiter *infrastructure.RateLimiter) interfaces.PostService {
	return &PostService{
		postRepo:    postRepo,
		rateLimiter: rateLimiter,
	}
}

func (s *PostService) ListPosts(ctx context.Context) (*query.PostQueryListResult, error) {
	posts, err := s.postRepo.ListWithAuthors(ctx)
	if err != nil {
		return nil, err
	}

	listResult := &query.PostQueryListResult{
		Result: make([]*common.PostResult, 0, len(posts)),
	}
	for _, post := range posts {
		listResult.Result = append(listResult.Result, mapper.NewPostResultFromEntity(post))
	}
	return listResult, nil
}

func (s *PostService) CreatePost(ctx context.Context, sessionUser *entities.User, createCommand *command.CreatePostCommand) (*command.CreatePostCommandResult, error) {
	if sessionUser == nil {
		return nil, domain.ErrUnauthorized
	}

	if s.rateLimiter != nil && !s.rateLimiter.Allow(ctx, "create_post:"+sessionUser.Id.String()) {
		return nil, domain.ErrRateLimited
	}

	post := entities.NewPost(createCommand.Title, createCommand.Content, sessionUser.Id)
	validatedPost, err := entities.NewValidatedPost(post)
	if err != nil {
		return nil, err
	}

	created, err := s.postRepo.Create(ctx, validatedPost)
	if err != nil {
		return nil, err
	}

	return &command.CreatePostCommandResult{
		Result: mapper.NewPostResultFromEntity(created),
	}, nil
}
