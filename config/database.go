package config

import (
	"fmt"
	"time"

	"github.com/Govind-619/ShopLink/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle
var DB *gorm.DB

// InitDB opens the SQLite database and runs migrations
func InitDB() {
	if AppConfig == nil {
		if _, err := LoadConfig(); err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
	}

	db, err := gorm.Open(sqlite.Open(AppConfig.DBPath), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	// Older databases predate the created_date column; add it before
	// AutoMigrate so the backfill below sees the existing rows.
	if DB.Migrator().HasTable(&models.Offer{}) && !DB.Migrator().HasColumn(&models.Offer{}, "created_date") {
		if err := DB.Exec(`ALTER TABLE offers ADD COLUMN created_date TEXT`).Error; err != nil {
			panic(fmt.Sprintf("Failed to add created_date column: %v", err))
		}
	}

	if err := DB.AutoMigrate(&models.Offer{}); err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	backfillCreatedDates()
}

// backfillCreatedDates stamps today's date on rows that have no
// created_date. Safe to run on every startup.
func backfillCreatedDates() {
	today := time.Now().In(Location).Format("2006-01-02")
	err := DB.Exec(
		`UPDATE offers SET created_date = ? WHERE created_date IS NULL OR created_date = ''`,
		today,
	).Error
	if err != nil {
		panic(fmt.Sprintf("Failed to backfill created_date: %v", err))
	}
}
