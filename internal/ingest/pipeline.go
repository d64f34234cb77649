// Package ingest builds the vector indexes: law chunks from a directory
// of statute JSON files, and accident cases from the reference table.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TALA-AI/tala-web/internal/lawdoc"
	"github.com/TALA-AI/tala-web/internal/refdata"
	"github.com/TALA-AI/tala-web/internal/storage"
)

// Embedder generates embeddings for a batch of texts.
type Embedder interface {
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// Store persists embedded records.
type Store interface {
	UpsertLawChunks(ctx context.Context, chunks []*storage.LawChunk) error
	UpsertCases(ctx context.Context, cases []*storage.CasePoint) error
}

// Result contains statistics about an ingestion run.
type Result struct {
	Files    int
	Segments int
	Chunks   int
	Duration time.Duration
}

// Pipeline orchestrates parse, chunk, embed and upsert.
type Pipeline struct {
	embedder  Embedder
	store     Store
	chunkSize int
	logger    *slog.Logger
}

// NewPipeline creates a pipeline. chunkSize 0 means the default
// word count.
func NewPipeline(embedder Embedder, store Store, chunkSize int, logger *slog.Logger) *Pipeline {
	if chunkSize <= 0 {
		chunkSize = lawdoc.DefaultChunkSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		embedder:  embedder,
		store:     store,
		chunkSize: chunkSize,
		logger:    logger,
	}
}

// Run ingests every JSON file in dir. A malformed file aborts the run;
// there is no partial-file recovery or checkpointing. Re-running inserts
// new records with fresh identifiers - no dedup.
func (p *Pipeline) Run(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()
	result := &Result{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read law directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		p.logger.Info("Processing law document", "path", path)

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		segments, err := lawdoc.ParseLawDocument(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		for _, segment := range segments {
			n, err := p.ingestSegment(ctx, segment)
			if err != nil {
				return nil, fmt.Errorf("%s: segment %q: %w", path, segment.Title, err)
			}
			result.Segments++
			result.Chunks += n
		}
		result.Files++
	}

	result.Duration = time.Since(start)
	p.logger.Info("Ingestion complete",
		"files", result.Files,
		"segments", result.Segments,
		"chunks", result.Chunks,
		"duration", result.Duration,
	)
	return result, nil
}

// ingestSegment chunks one segment, embeds the non-empty chunks and
// upserts them with fresh UUIDs. Returns the number of chunks stored.
func (p *Pipeline) ingestSegment(ctx context.Context, segment lawdoc.Segment) (int, error) {
	var texts []string
	var indexes []int
	for idx, chunk := range lawdoc.ChunkWords(segment.Text, p.chunkSize) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		texts = append(texts, chunk)
		indexes = append(indexes, idx)
	}
	if len(texts) == 0 {
		return 0, nil
	}

	embeddings, err := p.embedder.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embeddings: %w", err)
	}

	chunks := make([]*storage.LawChunk, len(texts))
	for i := range texts {
		chunks[i] = &storage.LawChunk{
			ID:         uuid.New().String(),
			Title:      segment.Title,
			ChunkIndex: indexes[i],
			Text:       texts[i],
			Embedding:  embeddings[i],
		}
	}

	if err := p.store.UpsertLawChunks(ctx, chunks); err != nil {
		return 0, fmt.Errorf("store chunks: %w", err)
	}

	return len(chunks), nil
}

// IngestCases embeds every accident description in the reference table
// and upserts it into the case index. Returns the number of cases stored.
func (p *Pipeline) IngestCases(ctx context.Context, table *refdata.Table) (int, error) {
	rows := table.Cases()
	if len(rows) == 0 {
		return 0, nil
	}

	texts := make([]string, len(rows))
	for i, row := range rows {
		texts[i] = row.Accident
	}

	embeddings, err := p.embedder.GenerateEmbeddings(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embeddings: %w", err)
	}

	points := make([]*storage.CasePoint, len(rows))
	for i, row := range rows {
		points[i] = &storage.CasePoint{
			ID:        uuid.New().String(),
			Accident:  row.Accident,
			Embedding: embeddings[i],
		}
	}

	if err := p.store.UpsertCases(ctx, points); err != nil {
		return 0, fmt.Errorf("store cases: %w", err)
	}

	p.logger.Info("Accident cases ingested", "count", len(points))
	return len(points), nil
}
