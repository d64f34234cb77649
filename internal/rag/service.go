// Package rag composes the embedding, retrieval and generation steps
// behind the consultation endpoints.
package rag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/TALA-AI/tala-web/internal/prompt"
	"github.com/TALA-AI/tala-web/internal/refdata"
	"github.com/TALA-AI/tala-web/internal/storage"
)

// ErrNoSimilarCases is returned when the case index yields zero
// candidates. Zero hits is an error, not an empty success.
var ErrNoSimilarCases = errors.New("no similar accident cases found")

const (
	// CaseSearchLimit is the number of similar cases offered to the user.
	CaseSearchLimit = 3

	// LawSearchLimit is the number of law chunks retrieved for the
	// retrieval-augmented endpoint.
	LawSearchLimit = 5

	// SourceExcerptRunes is the maximum excerpt length per source chunk.
	SourceExcerptRunes = 60
)

// Embedder converts free text into a query vector.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// LawIndex serves nearest-neighbor queries over stored law chunks.
type LawIndex interface {
	SearchLaws(ctx context.Context, embedding []float32, limit int) ([]*storage.ScoredLawChunk, error)
}

// CaseIndex serves nearest-neighbor queries over stored accident cases.
type CaseIndex interface {
	SearchCases(ctx context.Context, embedding []float32, limit int) ([]*storage.CaseHit, error)
}

// TextGenerator produces a completion for a prompt. An empty system
// message is omitted.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// AccidentMatch is one similar-case result resolved back to its
// reference row.
type AccidentMatch struct {
	Accident string `json:"accident"`
	URL      string `json:"url"`
}

// Source identifies one retrieved law chunk backing an answer.
type Source struct {
	CaseID string `json:"case_id"`
	Chunk  string `json:"chunk"`
}

// AskResult is the retrieval-augmented answer with its source chunks.
type AskResult struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}

// Service holds the clients shared by all request handlers. It is
// constructed once at startup; Close releases the underlying resources.
type Service struct {
	embedder  Embedder
	laws      LawIndex
	cases     CaseIndex
	generator TextGenerator
	table     *refdata.Table
	logger    *slog.Logger
}

// NewService wires the consultation pipeline from its components.
func NewService(embedder Embedder, laws LawIndex, cases CaseIndex, generator TextGenerator, table *refdata.Table, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		embedder:  embedder,
		laws:      laws,
		cases:     cases,
		generator: generator,
		table:     table,
		logger:    logger,
	}
}

// SearchAccidents embeds the accident description and returns the top
// similar stored cases, nearest first, each resolved to its reference
// row by exact text match. Returns ErrNoSimilarCases on zero hits and
// fails if a stored case text has no reference row.
func (s *Service) SearchAccidents(ctx context.Context, accidentText string) ([]AccidentMatch, error) {
	vector, err := s.embedder.EmbedQuery(ctx, accidentText)
	if err != nil {
		return nil, fmt.Errorf("embed accident description: %w", err)
	}

	hits, err := s.cases.SearchCases(ctx, vector, CaseSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search accident cases: %w", err)
	}
	if len(hits) == 0 {
		return nil, ErrNoSimilarCases
	}

	matches := make([]AccidentMatch, 0, len(hits))
	for _, hit := range hits {
		row, err := s.table.Lookup(hit.Accident)
		if err != nil {
			return nil, fmt.Errorf("resolve case %q: %w", hit.Accident, err)
		}
		matches = append(matches, AccidentMatch{
			Accident: row.Accident,
			URL:      row.URL,
		})
	}

	s.logger.Info("similar cases found", "count", len(matches))
	return matches, nil
}

// Answer generates a consultation answer for a question about a selected
// accident. The accident description must match a reference row exactly;
// an unknown description fails deterministically.
func (s *Service) Answer(ctx context.Context, accidentText, question string) (string, error) {
	row, err := s.table.Lookup(accidentText)
	if err != nil {
		return "", err
	}

	answer, err := s.generator.Generate(ctx, "", prompt.CaseAnalysis(row, question))
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	return answer, nil
}

// Ask answers a general legal question: the nearest law chunks are
// retrieved, substituted into the RAG prompt and sent to the model in a
// single call. Each retrieved chunk is reported back as a source with a
// short excerpt.
func (s *Service) Ask(ctx context.Context, question string) (*AskResult, error) {
	vector, err := s.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	chunks, err := s.laws.SearchLaws(ctx, vector, LawSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search law chunks: %w", err)
	}

	var contextText strings.Builder
	sources := make([]Source, 0, len(chunks))
	for i, chunk := range chunks {
		if i > 0 {
			contextText.WriteString("\n\n")
		}
		contextText.WriteString(chunk.Text)
		sources = append(sources, Source{
			CaseID: fmt.Sprintf("%s#%d", chunk.Title, chunk.ChunkIndex),
			Chunk:  excerpt(chunk.Text, SourceExcerptRunes),
		})
	}

	answer, err := s.generator.Generate(ctx, prompt.SystemPrompt, prompt.RAG(question, contextText.String()))
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return &AskResult{Answer: answer, Sources: sources}, nil
}

// excerpt truncates text to at most n runes. Korean text makes byte
// truncation unsafe here.
func excerpt(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
