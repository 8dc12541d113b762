package common

import (
	"time"

	"github.com/google/uuid"
)

// AuthorResult is the slice of the author record exposed on listed posts.
type AuthorResult struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PostResult struct {
	Id        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Content   *string       `json:"content"`
	Published bool          `json:"published"`
	AuthorId  uuid.UUID     `json:"authorId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Author    *AuthorResult `json:"author,omitempty"`
}
