// Package storage persists embedded chunks in Qdrant and serves
// nearest-neighbor queries over them.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/qdrant/go-client/qdrant"
)

// QdrantStorage wraps the Qdrant client with connection management and
// health checks.
type QdrantStorage struct {
	client *qdrant.Client
	host   string
	port   int
}

// NewQdrantStorage creates a new Qdrant client with health validation.
// It performs a health check with retry on startup and fails fast if
// Qdrant is unreachable.
func NewQdrantStorage(host string, port int) (*QdrantStorage, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	storage := &QdrantStorage{
		client: client,
		host:   host,
		port:   port,
	}

	ctx := context.Background()
	if err := storage.healthCheckWithRetry(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: %v", ErrQdrantUnreachable, err)
	}

	return storage, nil
}

// healthCheckWithRetry performs a health check with exponential backoff.
// Initial interval 500ms, max interval 10s, max elapsed 30s.
func (s *QdrantStorage) healthCheckWithRetry(ctx context.Context) error {
	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.InitialInterval = 500 * time.Millisecond
	exponentialBackoff.MaxInterval = 10 * time.Second
	exponentialBackoff.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(func() error {
		return s.Health(ctx)
	}, exponentialBackoff)
}

// Health performs a single health check against Qdrant.
func (s *QdrantStorage) Health(ctx context.Context) error {
	result, err := s.client.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if result == nil || result.Title == "" {
		return fmt.Errorf("health check returned invalid response")
	}

	return nil
}

// EnsureCollections creates the law and accident-case collections if they
// do not exist. Idempotent - safe to call multiple times.
func (s *QdrantStorage) EnsureCollections(ctx context.Context) error {
	existing, err := s.client.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	have := make(map[string]bool, len(existing))
	for _, name := range existing {
		have[name] = true
	}

	for _, name := range []string{LawCollection, CaseCollection} {
		if have[name] {
			continue
		}
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: name,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     VectorDimension,
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}

	return nil
}

// Close closes the Qdrant client connection.
func (s *QdrantStorage) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// upsertWithRetry performs an upsert with exponential backoff retry.
func (s *QdrantStorage) upsertWithRetry(ctx context.Context, collection string, points []*qdrant.PointStruct) error {
	exponentialBackoff := backoff.NewExponentialBackOff()
	exponentialBackoff.InitialInterval = 500 * time.Millisecond
	exponentialBackoff.MaxInterval = 10 * time.Second
	exponentialBackoff.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(func() error {
		_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
			CollectionName: collection,
			Points:         points,
		})
		return err
	}, exponentialBackoff)
}

// UpsertLawChunks stores law chunks with embeddings, batched in groups
// of 100.
func (s *QdrantStorage) UpsertLawChunks(ctx context.Context, chunks []*LawChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	for i, chunk := range chunks {
		if len(chunk.Embedding) != VectorDimension {
			return fmt.Errorf("%w: chunk %d has %d dimensions, expected %d",
				ErrDimensionMismatch, i, len(chunk.Embedding), VectorDimension)
		}
	}

	batchSize := 100
	for i := 0; i < len(chunks); i += batchSize {
		end := min(i+batchSize, len(chunks))

		batch := chunks[i:end]
		points := make([]*qdrant.PointStruct, len(batch))
		for j, chunk := range batch {
			points[j] = &qdrant.PointStruct{
				Id:      qdrant.NewIDUUID(chunk.ID),
				Vectors: qdrant.NewVectors(chunk.Embedding...),
				Payload: qdrant.NewValueMap(map[string]any{
					"law_title":   chunk.Title,
					"chunk_index": chunk.ChunkIndex,
					"text":        chunk.Text,
				}),
			}
		}

		if err := s.upsertWithRetry(ctx, LawCollection, points); err != nil {
			return fmt.Errorf("failed to upsert batch %d-%d: %w", i, end, err)
		}
	}

	return nil
}

// UpsertCases stores accident-case descriptions with embeddings.
func (s *QdrantStorage) UpsertCases(ctx context.Context, cases []*CasePoint) error {
	if len(cases) == 0 {
		return nil
	}

	for i, c := range cases {
		if len(c.Embedding) != VectorDimension {
			return fmt.Errorf("%w: case %d has %d dimensions, expected %d",
				ErrDimensionMismatch, i, len(c.Embedding), VectorDimension)
		}
	}

	batchSize := 100
	for i := 0; i < len(cases); i += batchSize {
		end := min(i+batchSize, len(cases))

		batch := cases[i:end]
		points := make([]*qdrant.PointStruct, len(batch))
		for j, c := range batch {
			points[j] = &qdrant.PointStruct{
				Id:      qdrant.NewIDUUID(c.ID),
				Vectors: qdrant.NewVectors(c.Embedding...),
				Payload: qdrant.NewValueMap(map[string]any{
					"accident": c.Accident,
				}),
			}
		}

		if err := s.upsertWithRetry(ctx, CaseCollection, points); err != nil {
			return fmt.Errorf("failed to upsert batch %d-%d: %w", i, end, err)
		}
	}

	return nil
}

// SearchLaws performs vector similarity search over law chunks.
// Returns the top limit chunks ordered by score descending.
func (s *QdrantStorage) SearchLaws(ctx context.Context, embedding []float32, limit int) ([]*ScoredLawChunk, error) {
	if len(embedding) != VectorDimension {
		return nil, fmt.Errorf("%w: query has %d dimensions, expected %d",
			ErrDimensionMismatch, len(embedding), VectorDimension)
	}

	results, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: LawCollection,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search laws: %w", err)
	}

	chunks := make([]*ScoredLawChunk, 0, len(results))
	for _, result := range results {
		payload := result.Payload
		chunks = append(chunks, &ScoredLawChunk{
			LawChunk: LawChunk{
				ID:         result.Id.GetUuid(),
				Title:      payload["law_title"].GetStringValue(),
				ChunkIndex: int(payload["chunk_index"].GetIntegerValue()),
				Text:       payload["text"].GetStringValue(),
			},
			Score: float64(result.Score),
		})
	}

	return chunks, nil
}

// SearchCases performs vector similarity search over accident cases.
// Returns the top limit cases ordered by score descending.
func (s *QdrantStorage) SearchCases(ctx context.Context, embedding []float32, limit int) ([]*CaseHit, error) {
	if len(embedding) != VectorDimension {
		return nil, fmt.Errorf("%w: query has %d dimensions, expected %d",
			ErrDimensionMismatch, len(embedding), VectorDimension)
	}

	results, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: CaseCollection,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search cases: %w", err)
	}

	hits := make([]*CaseHit, 0, len(results))
	for _, result := range results {
		hits = append(hits, &CaseHit{
			Accident: result.Payload["accident"].GetStringValue(),
			Score:    float64(result.Score),
		})
	}

	return hits, nil
}
