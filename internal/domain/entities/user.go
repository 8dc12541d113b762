package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"post-service/internal/domain"
)

type User struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Name      string
	Image     string
}

func NewUser(email, name, image string) *User {
	now := time.Now()
	return &User{
		Id:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Email:     email,
		Name:      name,
		Image:     image,
	}
}

func (u *User) validate() error {
	if u.Email == "" {
		return fmt.Errorf("%w: email must not be empty", domain.ErrInvalidEntity)
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return fmt.Errorf("%w: created_at must be before updated_at", domain.ErrInvalidEntity)
	}
	return nil
}

// UpdateProfile refreshes the mutable profile fields from the identity
// provider's latest claims.
func (u *User) UpdateProfile(name, image string) {
	u.Name = name
	u.Image = image
	u.UpdatedAt = time.Now()
}
