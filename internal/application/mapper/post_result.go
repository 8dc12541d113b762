package mapper

import (
	"post-service/internal/application/common"
	"post-service/internal/domain/entities"
)

func NewPostResultFromEntity(post *entities.Post) *common.PostResult {
	result := &common.PostResult{
		Id:        post.Id,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		AuthorId:  post.AuthorId,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}

	if post.Author != nil {
		result.Author = &common.AuthorResult{
			Name:  post.Author.Name,
			Email: post.Author.Email,
		}
	}

	return result
}

func NewPostResultFromValidatedEntity(validatedPost *entities.ValidatedPost) *common.PostResult {
	return NewPostResultFromEntity(validatedPost.GetPost())
}
