// internal/database/database.go
package database

import (
	"fmt"

	"github.com/M00N69/supainspection/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection described by dsn.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// MigrateDB creates or updates the schema for all application models.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Checkpoint{},
		&models.Inspection{},
	)
}
