package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"post-service/internal/domain/entities"
	"post-service/internal/domain/repositories"
	"post-service/internal/infrastructure/db/postgres"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, postgres.Migrate(db))
	return db
}

func createUser(t *testing.T, repo repositories.UserRepository, email string) *entities.User {
	t.Helper()
	validated, err := entities.NewValidatedUser(entities.NewUser(email, "Test User", ""))
	require.NoError(t, err)
	user, err := repo.Create(context.Background(), validated)
	require.NoError(t, err)
	return user
}
