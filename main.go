package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/Shubh17ss/locumbnb-sub000/config"
	"github.com/Shubh17ss/locumbnb-sub000/routes"
	"github.com/Shubh17ss/locumbnb-sub000/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.NewConfig()

	// Initialize Supabase client
	supabaseClient := config.NewSupabaseClient(cfg)

	// External collaborators
	ipLookup := services.NewIPInfoClient(cfg.IPLookupURL)
	var notifier services.Notifier = services.LogNotifier{}
	if cfg.NotifyWebhookURL != "" {
		notifier = services.NewWebhookNotifier(cfg.NotifyWebhookURL)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(config.CORSMiddleware(cfg))

	// Setup routes
	routes.SetupRoutes(router, supabaseClient, cfg, ipLookup, notifier)

	// Background expiry sweep; the read path also expires lazily, the sweep
	// keeps never-re-read applications from staying pending forever.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := services.NewExpirySweeper(supabaseClient, cfg.ExpirySweepEvery, notifier)
	go sweeper.Run(ctx)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
