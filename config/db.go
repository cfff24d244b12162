package config

import (
	"fmt"
	"log"
	"os"

	"faithstories/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection from DB_* environment variables
// and migrates the schema. TranslateError lets unique violations surface
// as gorm.ErrDuplicatedKey so the service layer can report conflicts.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "faithstories"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_NAME", "faithstories_dev"),
		getEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	return db
}

// Migrate creates or updates the schema for all models. Shared with the
// test suites, which run it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Media{},
		&models.Post{},
		&models.PostSlug{},
		&models.Category{},
		&models.Tag{},
		&models.PostCategory{},
		&models.PostTag{},
	)
}
