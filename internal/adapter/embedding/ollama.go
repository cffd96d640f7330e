// Package embedding implements text embedders backed by external model servers.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaConfig holds the endpoint used for embeddings.
type OllamaConfig struct {
	BaseURL string // e.g. http://localhost:11434
	Model   string // e.g. bge-m3
	Token   string // Bearer token (empty = no auth)
	Timeout time.Duration
}

// Ollama embeds text through the Ollama /api/embed endpoint.
type Ollama struct {
	cfg        OllamaConfig
	httpClient *http.Client
}

// NewOllama creates an Ollama-backed embedder.
func NewOllama(cfg OllamaConfig) *Ollama {
	return &Ollama{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Name identifies the embedder in logs.
func (o *Ollama) Name() string { return "ollama:" + o.cfg.Model }

// Embed returns the embedding of text.
func (o *Ollama) Embed(ctx context.Context, text string) ([]float32, error) {
	payload := map[string]any{
		"model": o.cfg.Model,
		"input": text,
	}

	body, err := o.post(ctx, "/api/embed", payload)
	if err != nil {
		return nil, fmt.Errorf("ollama embed: %w", err)
	}

	var resp struct {
		Embeddings [][]float32 `json:"embeddings"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("ollama embed decode: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0]) == 0 {
		return nil, fmt.Errorf("ollama embed: empty response")
	}

	return resp.Embeddings[0], nil
}

func (o *Ollama) post(ctx context.Context, path string, payload any) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.BaseURL+path, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if o.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+o.cfg.Token)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
