package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rathoremon/car-repair-sub000/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError turns driver
// duplicate-key failures into gorm.ErrDuplicatedKey so repositories can map
// them to conflicts.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// AutoMigrate creates or updates the auth schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&repositories.DBAccount{},
		&repositories.DBProviderProfile{},
		&repositories.DBMechanicProfile{},
	)
}
