package brief

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Oracle is an opaque text completion service.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OllamaConfig configures the local Ollama oracle.
type OllamaConfig struct {
	Endpoint    string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// Ollama completes prompts with a local Ollama server in JSON mode.
type Ollama struct {
	endpoint    string
	model       string
	temperature float64
	timeout     time.Duration
	client      *http.Client
}

var _ Oracle = &Ollama{}

// NewOllama creates an Ollama oracle, filling defaults for empty fields.
func NewOllama(cfg OllamaConfig) *Ollama {
	if cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3.1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Ollama{
		endpoint:    cfg.Endpoint,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Complete sends one generate request and returns the raw "response" text.
// The call is detached from ctx cancellation and bounded only by the timeout.
func (o *Ollama) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.timeout)
	defer cancel()

	body, err := json.Marshal(ollamaGenerateRequest{
		Model:   o.model,
		Prompt:  prompt,
		Stream:  false,
		Format:  "json",
		Options: ollamaOptions{Temperature: o.temperature},
	})
	if err != nil {
		return "", oracleErr("marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", oracleErr("create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", oracleErr("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return "", oracleErr(fmt.Sprintf("status %d", resp.StatusCode), fmt.Errorf("%s", bytes.TrimSpace(bodyBytes)))
	}

	var result ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", oracleErr("decode response", err)
	}
	return result.Response, nil
}

// Name returns the oracle name.
func (o *Ollama) Name() string {
	return fmt.Sprintf("ollama:%s", o.model)
}

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Format  string        `json:"format"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}
