package interfaces

import (
	"context"

	"post-service/internal/application/command"
	"post-service/internal/application/query"
	"post-service/internal/domain/entities"
)

type PostService interface {
	// ListPosts returns every post, newest first, with author name and email.
	ListPosts(ctx context.Context) (*query.PostQueryListResult, error)

	// CreatePost inserts a post owned by the session user. A nil user is the
	// unauthenticated case and must fail before any storage access.
	CreatePost(ctx context.Context, sessionUser *entities.User, createCommand *command.CreatePostCommand) (*command.CreatePostCommandResult, error)
}
