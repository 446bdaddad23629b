package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the loaded configuration for the application
var AppConfig *Config

// Location is the timezone all wall-clock comparisons run in
var Location *time.Location

// Config holds all configuration for the application
type Config struct {
	Port            string
	Env             string
	DBPath          string
	UploadDir       string
	ShopDataDir     string
	CredentialsFile string
	DefaultBanner   string
	DefaultPassword string
	SessionSecret   string
	Timezone        string
	SweepSchedule   string
	BaseURL         string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	config := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		DBPath:          getEnv("DB_PATH", "database.db"),
		UploadDir:       getEnv("UPLOAD_DIR", "static/uploads"),
		ShopDataDir:     getEnv("SHOP_DATA_DIR", "shop_data"),
		CredentialsFile: getEnv("CREDENTIALS_FILE", "shop_credentials.json"),
		DefaultBanner:   getEnv("DEFAULT_BANNER", "static/default.jpg"),
		DefaultPassword: getEnv("DEFAULT_PASSWORD", "default123"),
		SessionSecret:   getEnv("SESSION_SECRET", "shoplink-secret-key"),
		Timezone:        getEnv("TIMEZONE", "Local"),
		SweepSchedule:   getEnv("SWEEP_SCHEDULE", "*/15 * * * *"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:8080"),
	}

	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %v", config.Timezone, err)
	}
	Location = loc

	AppConfig = config
	return config, nil
}

// getEnv returns the environment variable value or a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
