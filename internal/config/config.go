// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

// Config holds all runtime configuration for the consultation services.
// It is built once in main and passed into constructors; nothing reads
// the environment after startup.
type Config struct {
	QdrantHost string
	QdrantPort int

	// OpenAIBaseURL points at the inference server. Empty means the
	// public OpenAI endpoint; a local vLLM/Ollama-style server works as
	// long as it speaks the OpenAI API.
	OpenAIBaseURL string
	OpenAIAPIKey  string

	// LLMModel is the chat model used for answer generation.
	LLMModel string

	// CaseDataPath is the accident reference CSV loaded at startup.
	CaseDataPath string

	// Port is the HTTP listen port for the consultation API.
	Port string

	// APIBaseURL is where the chat front end reaches the API.
	APIBaseURL string
}

// Load reads configuration from the environment, applying defaults for
// everything except credentials.
func Load() Config {
	return Config{
		QdrantHost:    getEnv("QDRANT_HOST", "localhost"),
		QdrantPort:    getEnvInt("QDRANT_PORT", 6334),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		LLMModel:      getEnv("LLM_MODEL", "granite-3-8b-instruct"),
		CaseDataPath:  getEnv("CASE_DATA_PATH", "data/accident_datas.csv"),
		Port:          getEnv("PORT", "8066"),
		APIBaseURL:    getEnv("TALA_API_URL", "http://localhost:8066"),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}
