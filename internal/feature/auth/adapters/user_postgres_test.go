package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskmaster/internal/feature/auth/domain/entity"
	"taskmaster/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
// TranslateError makes the unique-index violation comparable across drivers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewUserPostgres(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserPostgres(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserPostgres_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := &entity.User{
			Name:     "Alice",
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user1 := &entity.User{Name: "First", Email: "duplicate@example.com", Password: "password1"}
		err := repo.Create(context.Background(), user1)
		require.NoError(t, err, "failed to create first user")

		user2 := &entity.User{Name: "Second", Email: "duplicate@example.com", Password: "password2"}
		err = repo.Create(context.Background(), user2)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserPostgres_FindByEmail(t *testing.T) {
	t.Run("existing user is found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := &entity.User{Name: "Alice", Email: "find@example.com", Password: "pw"}
		require.NoError(t, repo.Create(context.Background(), user))

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "Alice", found.Name)
	})

	t.Run("email lookup is case sensitive", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := &entity.User{Name: "Alice", Email: "Case@example.com", Password: "pw"}
		require.NoError(t, repo.Create(context.Background(), user))

		_, err := repo.FindByEmail(context.Background(), "case@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("missing user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_FindByID(t *testing.T) {
	t.Run("existing user is found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		user := &entity.User{Name: "Alice", Email: "byid@example.com", Password: "pw"}
		require.NoError(t, repo.Create(context.Background(), user))

		found, err := repo.FindByID(context.Background(), user.ID)

		require.NoError(t, err)
		assert.Equal(t, "byid@example.com", found.Email)
	})

	t.Run("missing user returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserPostgres(db)

		_, err := repo.FindByID(context.Background(), 9999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserPostgres_ExistsByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserPostgres(db)

	user := &entity.User{Name: "Alice", Email: "exists@example.com", Password: "pw"}
	require.NoError(t, repo.Create(context.Background(), user))

	exists, err := repo.ExistsByEmail(context.Background(), "exists@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(context.Background(), "missing@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
