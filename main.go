package main

import (
	"log"

	"github.com/Govind-619/ShopLink/config"
	"github.com/Govind-619/ShopLink/controllers"
	"github.com/Govind-619/ShopLink/routes"
	"github.com/Govind-619/ShopLink/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database and run migrations
	config.InitDB()

	// Wire the shop credential store
	controllers.Credentials = utils.NewCredentialStore(cfg.CredentialsFile, cfg.DefaultPassword)

	// Clean up offers that expired while the service was down, then
	// keep sweeping on the configured schedule
	if deleted, err := utils.SweepExpiredOffers(); err != nil {
		utils.LogError("Startup sweep failed: %v", err)
	} else if deleted > 0 {
		utils.LogInfo("Startup sweep removed %d expired offers", deleted)
	}
	if _, err := utils.InitializeSweepScheduler(cfg.SweepSchedule); err != nil {
		utils.LogError("Failed to start sweep scheduler: %v", err)
		log.Fatal("Failed to start sweep scheduler:", err)
	}

	// Set up router
	router := routes.SetupRouter()

	// Add middleware
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
