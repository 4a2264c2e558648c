package database

import (
	"github.com/sokha-dev/showfolio/internal/model"
	"gorm.io/gorm"
)

// Migrate runs gorm AutoMigrate over every model, lookup entities first so
// the foreign keys on profiles and projects can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Country{},
		&model.City{},
		&model.Department{},
		&model.Position{},
		&model.Category{},
		&model.Tag{},
		&model.Status{},
		&model.Action{},
		&model.Image{},
		&model.File{},
		&model.User{},
		&model.Profile{},
		&model.Project{},
		&model.Rating{},
		&model.Like{},
		&model.Comment{},
	)
}
