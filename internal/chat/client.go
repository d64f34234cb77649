package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/TALA-AI/tala-web/internal/rag"
)

// APIError is a non-2xx response from the consultation API, carrying
// the server's detail message when one was returned.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Client is a thin HTTP client for the consultation API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

// SearchAccidents calls POST /search_accidents/.
func (c *Client) SearchAccidents(ctx context.Context, accidentText string) ([]rag.AccidentMatch, error) {
	var matches []rag.AccidentMatch
	err := c.post(ctx, "/search_accidents/", map[string]string{
		"accident_text": accidentText,
	}, &matches)
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// AskAI calls POST /ask_ai/.
func (c *Client) AskAI(ctx context.Context, accidentText, question string) (string, error) {
	var out struct {
		Response string `json:"response"`
	}
	err := c.post(ctx, "/ask_ai/", map[string]string{
		"accident_text": accidentText,
		"user_question": question,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Response, nil
}

// Ask calls POST /ask.
func (c *Client) Ask(ctx context.Context, question string) (*rag.AskResult, error) {
	var out rag.AskResult
	err := c.post(ctx, "/ask", map[string]string{
		"question": question,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var detail struct {
			Detail string `json:"detail"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&detail)
		return &APIError{StatusCode: resp.StatusCode, Detail: detail.Detail}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
