package database

import (
	"gorm.io/gorm"

	"social-media-backend/internal/models"
)

// Migrate applies the schema. Auto-migration is used for both postgres and
// the sqlite databases the tests run against.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Follow{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	)
}
