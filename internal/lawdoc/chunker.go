package lawdoc

import "strings"

// DefaultChunkSize is the word count per chunk.
const DefaultChunkSize = 300

// ChunkWords splits text into chunks of at most size whitespace-separated
// words, with no overlap. The split is a flat word count, not a
// token-aware or sentence-aware boundary; a space-join of the chunks
// reproduces the whitespace-normalized input.
func ChunkWords(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
