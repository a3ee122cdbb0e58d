// Package nlu implements the remote intent-extraction client over plain
// HTTP. The endpoint receives a prompt-style request and answers with free
// text expected to contain one JSON object.
package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	sharedConfig "github.com/Belkouche/jarvis-sub000/internal/shared/config"
)

const analysisPrompt = `Analyse le message client suivant et réponds uniquement avec un objet JSON contenant les champs: language (fr|ar|dar|en), intent (status_check|complaint|other), contract_number (format F0000000D ou null), is_valid_format (bool), is_spam (bool), confidence (0..1).

Message: %s`

// Client talks to the configured NLU endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(cfg *sharedConfig.NLUConfig) *Client {
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{},
	}
}

type analyzeRequest struct {
	Model     string `json:"model,omitempty"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type analyzeResponse struct {
	Text string `json:"text"`
}

// Analyze sends the prompt and returns the raw model text. The caller owns
// the timeout via ctx.
func (c *Client) Analyze(ctx context.Context, text string) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("nlu endpoint not configured")
	}

	body, err := json.Marshal(analyzeRequest{
		Model:     c.model,
		Prompt:    fmt.Sprintf(analysisPrompt, text),
		MaxTokens: 512,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal nlu request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build nlu request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("nlu request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read nlu response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nlu endpoint returned %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(data, &parsed); err != nil || parsed.Text == "" {
		// Some deployments answer with the raw completion text directly.
		return string(data), nil
	}
	return parsed.Text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
