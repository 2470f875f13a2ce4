package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inventario/internal/models"
)

// Open connects to postgres. TranslateError maps driver-level unique and
// foreign-key violations onto gorm's sentinel errors, which the stores
// turn into their own taxonomy.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates the three tables. Constraints (unique nome,
// produto→categoria FK) come from the model tags.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Categoria{}, &models.Produto{})
}
