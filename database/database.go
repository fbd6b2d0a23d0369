package database

import (
	"Stowed/internal/config"
	"Stowed/internal/models"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupDatabase opens the embedded sqlite database and migrates the schema
// idempotently. STOWED_DB_PATH (optionally from a .env file) overrides the
// configured path.
func SetupDatabase(cfg *config.Configuration) (*gorm.DB, error) {
	_ = godotenv.Load()

	path := cfg.Storage.DatabasePath
	if envPath := os.Getenv("STOWED_DB_PATH"); envPath != "" {
		path = envPath
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(&models.Container{}, &models.ClothingItem{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
