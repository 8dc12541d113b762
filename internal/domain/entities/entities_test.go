package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"post-service/internal/domain"
)

func TestNewUser(t *testing.T) {
	before := time.Now()
	user := NewUser("alice@example.com", "Alice", "https://example.com/a.png")

	assert.NotEqual(t, uuid.Nil, user.Id)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.False(t, user.CreatedAt.Before(before))
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
}

func TestNewValidatedUser_EmptyEmail(t *testing.T) {
	_, err := NewValidatedUser(NewUser("", "Alice", ""))
	require.ErrorIs(t, err, domain.ErrInvalidEntity)
}

func TestNewPost_Defaults(t *testing.T) {
	authorId := uuid.New()
	content := "body"
	post := NewPost("First", &content, authorId)

	assert.NotEqual(t, uuid.Nil, post.Id)
	assert.False(t, post.Published)
	assert.Equal(t, authorId, post.AuthorId)
	require.NotNil(t, post.Content)
	assert.Equal(t, "body", *post.Content)
}

func TestNewValidatedPost_MissingAuthor(t *testing.T) {
	_, err := NewValidatedPost(NewPost("First", nil, uuid.Nil))
	require.ErrorIs(t, err, domain.ErrInvalidEntity)
}

// An empty title passes entity validation; its rejection is left to the
// storage layer's column constraints.
func TestNewValidatedPost_EmptyTitleAccepted(t *testing.T) {
	validated, err := NewValidatedPost(NewPost("", nil, uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, "", validated.GetPost().Title)
}

func TestUser_UpdateProfile(t *testing.T) {
	user := NewUser("alice@example.com", "Alice", "")
	created := user.CreatedAt

	user.UpdateProfile("Alice B", "https://example.com/b.png")

	assert.Equal(t, "Alice B", user.Name)
	assert.Equal(t, created, user.CreatedAt)
	assert.False(t, user.UpdatedAt.Before(created))
}
