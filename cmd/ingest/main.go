// Package main provides the offline ingestion CLI for the law and
// accident-case vector indexes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/TALA-AI/tala-web/internal/config"
	"github.com/TALA-AI/tala-web/internal/embedding"
	"github.com/TALA-AI/tala-web/internal/ingest"
	"github.com/TALA-AI/tala-web/internal/refdata"
	"github.com/TALA-AI/tala-web/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Vector index ingestion tool",
	Long:  "CLI tool for building the law and accident-case indexes in Qdrant",
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the Qdrant collections",
	Long: `Creates the korean_laws and accident_cases collections if missing.

Idempotent - safe to run repeatedly.

Environment variables:
  QDRANT_HOST    Qdrant hostname (default: localhost)
  QDRANT_PORT    Qdrant gRPC port (default: 6334)`,
	RunE: runSetup,
}

var runCmd = &cobra.Command{
	Use:   "run <directory>",
	Short: "Ingest law JSON documents from a directory",
	Long: `Parses every JSON statute file in the directory, splits each segment
into fixed-size word chunks, embeds the chunks and upserts them into the
korean_laws collection with fresh identifiers.

A malformed file aborts the run. Re-running creates new records - there
is no dedup.

Environment variables:
  QDRANT_HOST     Qdrant hostname (default: localhost)
  QDRANT_PORT     Qdrant gRPC port (default: 6334)
  OPENAI_API_KEY  API key for embeddings (required)
  OPENAI_BASE_URL Embedding API base URL (optional)`,
	Args: cobra.ExactArgs(1),
	RunE: runLaws,
}

var casesCmd = &cobra.Command{
	Use:   "cases <csv>",
	Short: "Ingest accident cases from the reference CSV",
	Long: `Embeds every accident description in the reference table and upserts
it into the accident_cases collection.`,
	Args: cobra.ExactArgs(1),
	RunE: runCases,
}

var chunkSize int

func init() {
	runCmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "words per chunk (default 300)")
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(casesCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Load()

	store, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureCollections(ctx); err != nil {
		return fmt.Errorf("failed to ensure collections: %w", err)
	}

	fmt.Println("Collections ready")
	return nil
}

func runLaws(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Load()

	store, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureCollections(ctx); err != nil {
		return fmt.Errorf("failed to ensure collections: %w", err)
	}

	pipeline, err := newPipeline(cfg, store)
	if err != nil {
		return err
	}

	fmt.Printf("Ingesting law documents from %s...\n", args[0])
	result, err := pipeline.Run(ctx, args[0])
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Println()
	fmt.Println("Ingestion complete!")
	fmt.Printf("  Files:    %d\n", result.Files)
	fmt.Printf("  Segments: %d\n", result.Segments)
	fmt.Printf("  Chunks:   %d\n", result.Chunks)
	fmt.Printf("  Duration: %s\n", result.Duration.Round(time.Second))
	return nil
}

func runCases(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Load()

	table, err := refdata.Load(args[0])
	if err != nil {
		return err
	}

	store, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureCollections(ctx); err != nil {
		return fmt.Errorf("failed to ensure collections: %w", err)
	}

	pipeline, err := newPipeline(cfg, store)
	if err != nil {
		return err
	}

	count, err := pipeline.IngestCases(ctx, table)
	if err != nil {
		return fmt.Errorf("case ingestion failed: %w", err)
	}

	fmt.Printf("Ingested %d accident cases\n", count)
	return nil
}

func connect(ctx context.Context, cfg config.Config) (*storage.QdrantStorage, error) {
	fmt.Printf("Connecting to Qdrant at %s:%d...\n", cfg.QdrantHost, cfg.QdrantPort)
	store, err := storage.NewQdrantStorage(cfg.QdrantHost, cfg.QdrantPort)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Qdrant: %w", err)
	}
	if err := store.Health(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("Qdrant health check failed: %w", err)
	}
	fmt.Println("Qdrant healthy")
	return store, nil
}

func newPipeline(cfg config.Config, store *storage.QdrantStorage) (*ingest.Pipeline, error) {
	client, err := embedding.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}
	embedder := embedding.NewEmbedder(client, 0)
	return ingest.NewPipeline(embedder, store, chunkSize, slog.Default()), nil
}
