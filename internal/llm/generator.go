// Package llm generates consultation answers through an OpenAI-compatible
// chat completion API.
package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
)

const (
	// MaxNewTokens caps the generated answer length.
	MaxNewTokens = 800

	// StopSequence ends generation. The hosted Granite models emit this
	// end-of-text marker.
	StopSequence = "<|endoftext|>"
)

// Generator produces answers with deterministic (greedy) decoding.
// One synchronous call per request; no retries, no streaming.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator creates a Generator using the given chat model.
func NewGenerator(client *openai.Client, model string) *Generator {
	return &Generator{
		client: client,
		model:  model,
	}
}

// Generate runs a single chat completion for the prompt. An empty system
// message is omitted. The first choice's text is returned verbatim.
func (g *Generator) Generate(ctx context.Context, system, prompt string) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(prompt))

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       g.model,
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(MaxNewTokens),
		Stop: openai.ChatCompletionNewParamsStopUnion{
			OfString: openai.String(StopSequence),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
