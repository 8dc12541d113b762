package repositories

import (
	"context"

	"post-service/internal/domain/entities"
)

type PostRepository interface {
	Create(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error)

	// ListWithAuthors returns every post, newest first, with the Author
	// association populated.
	ListWithAuthors(ctx context.Context) ([]*entities.Post, error)

	CountAll(ctx context.Context) (int64, error)
}
