package testdb

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"social-media-backend/internal/database"
	"social-media-backend/internal/models"
)

// Open returns an in-memory sqlite database with the full schema applied.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

// CreateUser inserts an account with a throwaway password hash.
func CreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateProfile inserts a user plus a profile with the given username.
func CreateProfile(t *testing.T, db *gorm.DB, username string) *models.Profile {
	t.Helper()

	user := CreateUser(t, db, username+"@example.com")
	profile := &models.Profile{
		UserID:    user.ID,
		Username:  username,
		FirstName: "First",
		LastName:  "Last",
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

// CreatePost inserts a post authored by the given profile.
func CreatePost(t *testing.T, db *gorm.DB, profileID uuid.UUID, name string) *models.Post {
	t.Helper()

	post := &models.Post{
		ProfileID: profileID,
		Name:      name,
		Content:   "content of " + name,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}
