package config

import (
	"fmt"
	"os"

	"goldentouch-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the SQLite database named by DB_PATH. The default is
// ":memory:", which keeps all records for the process lifetime only.
func ConnectDB() (*gorm.DB, error) {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap database: %w", err)
	}
	// An in-memory SQLite exists per connection; one connection keeps every
	// handler on the same database.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates the schema for all entity collections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.Expense{},
		&models.Revenue{},
		&models.Feedback{},
	)
}
