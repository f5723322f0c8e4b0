package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client talks to the text-generation service that backs the chat
// assistant. The service exposes a single POST /generate endpoint.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type generateRequest struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens"`
	Temperature float64  `json:"temperature"`
	TopP        float64  `json:"top_p"`
	Stop        []string `json:"stop"`
}

type generateResponse struct {
	Response      string `json:"response"`
	GeneratedText string `json:"generated_text"`
}

// Generate sends a prompt and returns the assistant's reply. The request is
// bounded by the client timeout regardless of the caller's context.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Prompt:      prompt,
		MaxTokens:   1024,
		Temperature: 0.7,
		TopP:        0.95,
		Stop:        []string{"<|im_end|>"},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generate request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation service returned status %d", resp.StatusCode)
	}

	var apiResponse generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", fmt.Errorf("failed to decode generate response: %w", err)
	}

	reply := apiResponse.Response
	if reply == "" {
		reply = apiResponse.GeneratedText
	}
	reply = strings.TrimSpace(reply)

	if reply == "" {
		return "", fmt.Errorf("generation service returned an empty reply")
	}

	c.logger.Debug("assistant reply generated", "prompt_length", len(prompt), "reply_length", len(reply))
	return reply, nil
}
