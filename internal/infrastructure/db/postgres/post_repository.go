package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"post-service/internal/domain/entities"
	"post-service/internal/domain/repositories"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.ValidatedPost) (*entities.Post, error) {
	postEntity := post.GetPost()

	postModel := PostModel{
		Id:        postEntity.Id,
		CreatedAt: postEntity.CreatedAt,
		UpdatedAt: postEntity.UpdatedAt,
		Title:     postEntity.Title,
		Content:   postEntity.Content,
		Published: postEntity.Published,
		AuthorId:  postEntity.AuthorId,
	}

	if err := r.db.WithContext(ctx).Create(&postModel).Error; err != nil {
		return nil, err
	}

	// Read back the created post to ensure data integrity
	return r.findById(ctx, postEntity.Id)
}

func (r *PostRepository) ListWithAuthors(ctx context.Context) ([]*entities.Post, error) {
	var postModels []PostModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entities.Post, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, r.mapToEntity(&postModels[i]))
	}
	return posts, nil
}

func (r *PostRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PostModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostRepository) findById(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var postModel PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&postModel), nil
}

func (r *PostRepository) mapToEntity(postModel *PostModel) *entities.Post {
	post := &entities.Post{
		Id:        postModel.Id,
		CreatedAt: postModel.CreatedAt,
		UpdatedAt: postModel.UpdatedAt,
		Title:     postModel.Title,
		Content:   postModel.Content,
		Published: postModel.Published,
		AuthorId:  postModel.AuthorId,
	}

	if postModel.Author != nil {
		post.Author = &entities.User{
			Id:        postModel.Author.Id,
			CreatedAt: postModel.Author.CreatedAt,
			UpdatedAt: postModel.Author.UpdatedAt,
			Email:     postModel.Author.Email,
			Name:      postModel.Author.Name,
			Image:     postModel.Author.Image,
		}
	}

	return post
}
