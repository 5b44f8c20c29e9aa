package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables behind the repositories,
// including the unique index enforcing one review per user per location.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&locationModel{},
		&reviewModel{},
	)
}
