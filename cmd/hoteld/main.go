package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hoteldesk-backend/config"
	"hoteldesk-backend/internal/api"
	"hoteldesk-backend/internal/auth"
	"hoteldesk-backend/internal/db"
	"hoteldesk-backend/internal/hotel"
	"hoteldesk-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "hoteldesk ", log.LstdFlags)

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		logger.Println(".env loaded")
	}

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	if cfg.Auth.JWTSecret == "" {
		logger.Fatalf("auth.jwt_secret (or JWT_SECRET) must be configured")
	}

	// Initialize database
	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Persistence gateway and domain layer
	appStore := store.NewGormStore(gormDB)
	desk := hotel.NewDesk(appStore)
	logger.Println("data store initialized")

	// Auth service and superadmin seed
	authSvc := auth.NewService(gormDB, cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, slog.Default())
	if sa := cfg.Auth.Superadmin; sa.Email != "" && sa.Password != "" {
		if err := authSvc.EnsureSuperadmin(ctx, sa.Email, sa.Password, sa.TenantID); err != nil {
			logger.Fatalf("failed to ensure superadmin account: %v", err)
		}
	}

	// Initialize router
	router := api.NewRouter(&cfg.Server, desk, authSvc)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	// Create a deadline to wait for.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
