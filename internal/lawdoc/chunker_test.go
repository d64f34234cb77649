package lawdoc

import (
	"strings"
	"testing"
)

// TestChunkWords_ShortInput verifies that fewer than N words produce a
// single chunk equal to the whole input.
func TestChunkWords_ShortInput(t *testing.T) {
	input := "교차로에서 좌회전 중 추돌사고 발생"

	chunks := ChunkWords(input, 300)

	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != input {
		t.Errorf("Expected chunk %q, got %q", input, chunks[0])
	}
}

// TestChunkWords_ExactMultiple verifies that exactly kN words produce k
// chunks of N words whose space-join reproduces the input.
func TestChunkWords_ExactMultiple(t *testing.T) {
	words := make([]string, 12)
	for i := range words {
		words[i] = "단어"
	}
	input := strings.Join(words, " ")

	chunks := ChunkWords(input, 4)

	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if n := len(strings.Fields(chunk)); n != 4 {
			t.Errorf("Chunk %d: expected 4 words, got %d", i, n)
		}
	}
	if joined := strings.Join(chunks, " "); joined != input {
		t.Errorf("Joined chunks do not reproduce input:\n%q\n%q", joined, input)
	}
}

// TestChunkWords_Remainder verifies the trailing partial chunk.
func TestChunkWords_Remainder(t *testing.T) {
	input := "하나 둘 셋 넷 다섯"

	chunks := ChunkWords(input, 2)

	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	if chunks[2] != "다섯" {
		t.Errorf("Expected final chunk %q, got %q", "다섯", chunks[2])
	}
}

// TestChunkWords_Empty verifies that whitespace-only input yields no chunks.
func TestChunkWords_Empty(t *testing.T) {
	if chunks := ChunkWords("   \n\t  ", 10); chunks != nil {
		t.Errorf("Expected no chunks, got %v", chunks)
	}
}

// TestChunkWords_DefaultSize verifies that a non-positive size falls back
// to the default.
func TestChunkWords_DefaultSize(t *testing.T) {
	words := make([]string, DefaultChunkSize+1)
	for i := range words {
		words[i] = "w"
	}

	chunks := ChunkWords(strings.Join(words, " "), 0)

	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}
	if n := len(strings.Fields(chunks[0])); n != DefaultChunkSize {
		t.Errorf("Expected first chunk of %d words, got %d", DefaultChunkSize, n)
	}
}
