package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"scaffold_ai_server/config"
	"scaffold_ai_server/internal/ai"
	"scaffold_ai_server/internal/api"
	"scaffold_ai_server/internal/fipe"
	"scaffold_ai_server/internal/project"
	"scaffold_ai_server/internal/session"
)

func main() {
	// --- Load .env file ---
	// This loads environment variables from a .env file in the current
	// directory. It's crucial to do this BEFORE viper loads config.
	err := godotenv.Load()
	if err != nil {
		// It's common for .env to not exist (e.g., in production), so only log
		// a warning if the error is something other than "file not found".
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	// Fails fast on a missing OpenAI credential, before any generation could
	// be attempted.
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency Initialization ---

	// AI product/image generator
	aiGenerator := ai.NewGenerator(cfg.OpenAIKey, cfg.TextModel, cfg.ImageModel, cfg.ProductCount)

	// Vehicle pricing client (alternate product source)
	fipeClient := fipe.NewClient(cfg.FipeAPIBase, cfg.ProductCount)

	// Content merger and session store
	merger := project.NewMerger(aiGenerator, fipeClient, aiGenerator)
	store := session.NewStore(session.DefaultPhaseDelay, session.DefaultNoticeTTL)

	// API handlers (pass all dependencies)
	apiHandler := api.NewAPIHandler(store, merger)

	// --- Start API Server ---
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()        // Use gin.New() for more control over middleware
	router.Use(gin.Logger())   // Add structured logger middleware
	router.Use(gin.Recovery()) // Add panic recovery middleware

	// The wizard is driven from the browser; allow the frontend origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	api.RegisterRoutes(router, apiHandler) // Register API endpoints

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Set timeouts to prevent slow client attacks
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1) // Buffered channel
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	log.Println("Shutting down API server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
