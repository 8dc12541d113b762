package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"post-service/internal/domain"
)

type Post struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	Content   *string
	Published bool
	AuthorId  uuid.UUID

	// Author is populated on joined reads only.
	Author *User
}

func NewPost(title string, content *string, authorId uuid.UUID) *Post {
	now := time.Now()
	return &Post{
		Id:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Title:     title,
		Content:   content,
		Published: false,
		AuthorId:  authorId,
	}
}

// validate checks structural invariants only. Title emptiness and length are
// left to the storage layer's column constraints.
func (p *Post) validate() error {
	if p.AuthorId == uuid.Nil {
		return fmt.Errorf("%w: author_id must not be empty", domain.ErrInvalidEntity)
	}
	if p.CreatedAt.After(p.UpdatedAt) {
		return fmt.Errorf("%w: created_at must be before updated_at", domain.ErrInvalidEntity)
	}
	return nil
}
