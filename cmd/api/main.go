// server/cmd/api/main.go
package main

import (
	"context"
	"log"
	"time"

	"ecoconnect-api-server/config"
	"ecoconnect-api-server/internal/api/routes"
	"ecoconnect-api-server/internal/authgw"
	"ecoconnect-api-server/internal/centers"
	"ecoconnect-api-server/internal/fixtures"
	"ecoconnect-api-server/internal/registry"
	"ecoconnect-api-server/internal/s3"
	"ecoconnect-api-server/internal/scanner"
	"ecoconnect-api-server/internal/session"
	"ecoconnect-api-server/internal/socket"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// 2. Session store (mirror restores the last-known user until the probe answers)
	store := session.NewStore(cfg.Session.MirrorPath)

	// 3. Auth gateway against the external authentication service
	gateway, err := authgw.New(cfg.AuthService.BaseURL, store)
	if err != nil {
		log.Fatalf("Could not create auth gateway: %v", err)
	}

	// 4. Startup session probe, best-effort
	probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if user, ok := gateway.ProbeSession(probeCtx); ok {
		log.Printf("Resumed session for %s", user.DisplayName())
	}
	cancel()

	// 5. Seed the in-memory collections
	seed, err := fixtures.Load()
	if err != nil {
		log.Fatalf("Could not load fixtures: %v", err)
	}

	wsHub := socket.NewHub()

	pickups := registry.New(wsHub)
	if err := pickups.Seed(seed.AvailablePickups, seed.ActivePickups); err != nil {
		log.Fatalf("Could not seed pickup registry: %v", err)
	}

	directory := centers.NewDirectory(seed.Centers)

	// 6. Scanner, with image retention only when a bucket is configured
	var uploader scanner.Uploader
	if cfg.S3.Bucket != "" {
		s3Uploader, err := s3.NewUploader(cfg.S3)
		if err != nil {
			log.Fatalf("Could not create S3 uploader: %v", err)
		}
		uploader = s3Uploader
	}
	classifier := scanner.New(seed.ScanResults, time.Duration(cfg.Scanner.DelayMS)*time.Millisecond, uploader, directory)

	// 7. Router
	router := routes.SetupRouter(cfg, store, gateway, pickups, directory, classifier, wsHub)

	// 8. Start server
	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
