package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the database connection, migrates the models and seeds the
// fixed event data if the tables are empty. The returned handle is passed
// explicitly to the repository; there is no package-level connection.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if config.ReseedOnStart {
		if err := Reseed(db); err != nil {
			return nil, err
		}
		log.Println("Database reseeded")
	} else if err := Populate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Judge{},
		&models.Contestant{},
		&models.Category{},
		&models.Score{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
