// Package main runs the traffic-accident consultation API server.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/TALA-AI/tala-web/internal/config"
	"github.com/TALA-AI/tala-web/internal/embedding"
	"github.com/TALA-AI/tala-web/internal/llm"
	"github.com/TALA-AI/tala-web/internal/rag"
	"github.com/TALA-AI/tala-web/internal/refdata"
	"github.com/TALA-AI/tala-web/internal/server"
	"github.com/TALA-AI/tala-web/internal/storage"
)

func main() {
	// Load .env file if present (local development), ignore if missing.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg := config.Load()

	store, err := storage.NewQdrantStorage(cfg.QdrantHost, cfg.QdrantPort)
	if err != nil {
		log.Fatalf("failed to connect to Qdrant: %v", err)
	}
	defer store.Close()

	if err := store.EnsureCollections(ctx); err != nil {
		log.Fatalf("failed to ensure collections: %v", err)
	}

	client, err := embedding.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	if err != nil {
		log.Fatalf("failed to create embedding client: %v", err)
	}
	embedder := embedding.NewEmbedder(client, 0)
	generator := llm.NewGenerator(client.Client(), cfg.LLMModel)

	table, err := refdata.Load(cfg.CaseDataPath)
	if err != nil {
		log.Fatalf("failed to load reference table: %v", err)
	}
	slog.Info("Reference table loaded", "cases", table.Len(), "path", cfg.CaseDataPath)

	service := rag.NewService(embedder, store, store, generator, table, slog.Default())

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	server.InitRoutes(e, server.NewHandler(service), server.NewHealthHandler(store))

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()
	slog.Info("Consultation API listening", "port", cfg.Port)

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
