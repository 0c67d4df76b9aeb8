package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/HanishaChandrasekaran/placement-prep/backend/config"
	"github.com/HanishaChandrasekaran/placement-prep/backend/middleware"
	"github.com/HanishaChandrasekaran/placement-prep/backend/routes"
	"github.com/HanishaChandrasekaran/placement-prep/backend/session"
	"github.com/HanishaChandrasekaran/placement-prep/backend/store"
	"github.com/HanishaChandrasekaran/placement-prep/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Open the local store
	st, err := store.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}

	// Session manager: rehydrates a persisted session if one exists
	mgr, err := session.New(st, logger, cfg.Latency)
	if err != nil {
		log.Fatalf("Error initializing session manager: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, mgr, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
