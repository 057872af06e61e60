package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursegen-backend/internal/config"
	"coursegen-backend/internal/handlers"
	"coursegen-backend/internal/router"
	"coursegen-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Course Generator Backend...")

	ctx := context.Background()

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")
	if cfg.GeminiAPIKey == "" {
		log.Println("⚠ GOOGLE_GEMINI_KEY or GOOGLE_API_KEY not set; generation requests will fail")
	}
	if cfg.YouTubeAPIKey == "" {
		log.Println("⚠ YOUTUBE_API_KEY not set; video lookups will fail")
	}

	// ──── Step 2: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)

	// ──── Step 3: Initialize YouTube Client ────
	youtubeService, err := services.NewYouTubeService(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("✗ YouTube client initialization failed: %v", err)
	}
	log.Println("✓ YouTube client initialized")

	// ──── Initialize Services ────
	fileExtractService := services.NewFileExtractService()
	courseService := services.NewCourseService(geminiService, youtubeService)
	domainService := services.NewDomainService(geminiService, fileExtractService)

	// ──── Initialize Handlers ────
	courseHandler := handlers.NewCourseHandler(courseService)
	chatHandler := handlers.NewChatHandler(geminiService)
	levelHandler := handlers.NewLevelHandler()
	domainHandler := handlers.NewDomainHandler(domainService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(
		courseHandler,
		chatHandler,
		levelHandler,
		domainHandler,
	)

	server := &http.Server{
		Addr:        fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Course generation holds the response open across many model
		// calls, so the write timeout is generous.
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	log.Printf("✓ Course Generator Backend ready on http://%s:%s", cfg.Host, cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
