package storage

// LawChunk is one word-count slice of a law segment stored in Qdrant.
// Chunks are write-once: upserted during ingestion and only read back
// through nearest-neighbor queries afterwards.
type LawChunk struct {
	ID         string    // UUID generated at ingestion
	Title      string    // Segment title, e.g. "도로교통법 개정문"
	ChunkIndex int       // Position within the segment (0, 1, 2...)
	Text       string    // Chunk text content
	Embedding  []float32 // 1536-dim vector
}

// ScoredLawChunk is a law chunk returned from a similarity query.
type ScoredLawChunk struct {
	LawChunk
	Score float64
}

// CasePoint is one accident-case description stored in the case index.
type CasePoint struct {
	ID        string    // UUID generated at ingestion
	Accident  string    // Full accident description text
	Embedding []float32 // 1536-dim vector
}

// CaseHit is an accident case returned from a similarity query.
type CaseHit struct {
	Accident string
	Score    float64
}

// LawCollection holds embedded law-document chunks.
const LawCollection = "korean_laws"

// CaseCollection holds embedded accident-case descriptions.
const CaseCollection = "accident_cases"

// VectorDimension is the embedding size for text-embedding-3-small.
const VectorDimension = 1536
