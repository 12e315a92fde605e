package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/welcomehome/inventory/internal/config"     // Internal config loader
	"github.com/welcomehome/inventory/internal/database"   // SQLite store
	"github.com/welcomehome/inventory/internal/handler"    // HTTP handlers
	"github.com/welcomehome/inventory/internal/middleware" // Rate limiting middleware
	"github.com/welcomehome/inventory/internal/queue"      // Activity event queue
	"github.com/welcomehome/inventory/internal/router"     // Internal router setup
	"github.com/welcomehome/inventory/internal/service"    // Application services
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBPath) // Open (and migrate) the SQLite store
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	// Event publishing is best effort: donations and prepared orders are
	// announced on RabbitMQ, and the consumer below records them in the
	// activity log.  The service keeps working if the broker is down.
	pub := queue.NewPublisher()
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	app := service.New(db, cfg.HashIterations, pub) // Wire repositories and sessions

	// Redis backs the response cache and the rate limiter.  A nil client
	// turns both into pass-throughs.
	rdb := config.NewRedisClient()

	e := echo.New() // Create Echo instance
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e) // Health check
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, app), cfg.JWTSecret)
	router.RegisterInventory(e,
		handler.NewDonationHandler(app),
		handler.NewOrderHandler(app),
		handler.NewItemHandler(app),
		cfg.JWTSecret, rdb, config.LoadCacheConfig())

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
