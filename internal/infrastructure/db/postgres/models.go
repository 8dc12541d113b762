package postgres

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Image     string
}

func (UserModel) TableName() string {
	return "users"
}

type PostModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string `gorm:"size:256;not null"`
	Content   *string
	Published bool       `gorm:"not null;default:false"`
	AuthorId  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Author    *UserModel `gorm:"foreignKey:AuthorId"`
}

func (PostModel) TableName() string {
	return "posts"
}
