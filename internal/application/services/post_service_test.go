package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"post-service/internal/application/command"
	"post-service/internal/domain"
	"post-service/internal/infrastructure"
	"post-service/internal/infrastructure/db/postgres"
)

// Calling create with no resolved identity fails with ErrUnauthorized and
// touches no storage.
func TestPostService_CreatePost_Unauthenticated(t *testing.T) {
	db := newTestDB(t)
	postRepo := postgres.NewPostRepository(db)
	service := NewPostService(postRepo, nil)
	ctx := context.Background()

	_, err := service.CreatePost(ctx, nil, &command.CreatePostCommand{Title: "nope"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	count, err := postRepo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPostService_CreatePost_OwnedBySessionUser(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, postgres.NewUserRepository(db), "alice@example.com")
	service := NewPostService(postgres.NewPostRepository(db), nil)

	before := time.Now()
	content := "hello"
	result, err := service.CreatePost(context.Background(), user, &command.CreatePostCommand{
		Title:   "First",
		Content: &content,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Result)

	assert.Equal(t, user.Id, result.Result.AuthorId)
	assert.False(t, result.Result.Published)
	assert.False(t, result.Result.CreatedAt.Before(before.Truncate(time.Second)))
}

func TestPostService_ListPosts(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, postgres.NewUserRepository(db), "alice@example.com")
	service := NewPostService(postgres.NewPostRepository(db), nil)
	ctx := context.Background()

	for _, title := range []string{"one", "two"} {
		_, err := service.CreatePost(ctx, user, &command.CreatePostCommand{Title: title})
		require.NoError(t, err)
	}

	listResult, err := service.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, listResult.Result, 2)
	for _, post := range listResult.Result {
		require.NotNil(t, post.Author)
		assert.Equal(t, "alice@example.com", post.Author.Email)
	}
}

func TestPostService_ListPosts_Empty(t *testing.T) {
	db := newTestDB(t)
	service := NewPostService(postgres.NewPostRepository(db), nil)

	listResult, err := service.ListPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listResult.Result)
	assert.Len(t, listResult.Result, 0)
}

func TestPostService_CreatePost_RateLimited(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, postgres.NewUserRepository(db), "alice@example.com")
	limiter := infrastructure.NewRateLimiter(infrastructure.NewMemoryWindowCounter(), time.Minute, 2)
	service := NewPostService(postgres.NewPostRepository(db), limiter)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := service.CreatePost(ctx, user, &command.CreatePostCommand{Title: "ok"})
		require.NoError(t, err)
	}

	_, err := service.CreatePost(ctx, user, &command.CreatePostCommand{Title: "over"})
	require.ErrorIs(t, err, domain.ErrRateLimited)
}
