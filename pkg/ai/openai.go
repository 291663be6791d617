package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

const (
	defaultBaseURL     = "https://api.openai.com"
	defaultModel       = "gpt-4o"
	defaultTemperature = 0.3
	defaultMaxTokens   = 1500
	defaultTimeout     = 60 * time.Second

	chatCompletionsPath = "/v1/chat/completions"

	// upper bound on how much of an error body is kept for diagnostics
	maxErrorBody = 64 << 10
)

// Message roles understood by the chat completions endpoint
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape. Pointers distinguish an absent
// message or content from an empty one.
type ChatResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// ChatClient is a minimal client for OpenAI-compatible chat completion APIs.
// The API key is passed per call, never stored on the client.
type ChatClient struct {
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
}

// NewChatClient creates a chat client from the provided config.
// Pass a nil config to use the built-in defaults.
func NewChatClient(cfg *config.OpenAIConfig) *ChatClient {
	c := &ChatClient{
		baseURL:     defaultBaseURL,
		model:       defaultModel,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
	}
	timeout := defaultTimeout

	if cfg != nil {
		if cfg.BaseURL != "" {
			c.baseURL = cfg.BaseURL
		}
		if cfg.Model != "" {
			c.model = cfg.Model
		}
		c.temperature = cfg.Temperature
		if cfg.MaxTokens > 0 {
			c.maxTokens = cfg.MaxTokens
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	c.client = &http.Client{Timeout: timeout}

	return c
}

// Model returns the model identifier sent with every request
func (c *ChatClient) Model() string {
	return c.model
}

// Complete sends the messages to the chat completion endpoint and returns the
// content of the first choice. It makes exactly one request; nothing is retried.
func (c *ChatClient) Complete(ctx context.Context, apiKey string, messages []Message) (string, error) {
	reqBody := ChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", statusError(resp.StatusCode, readErrorDetail(resp.Body))
	}

	var cr ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("%w: decode body: %v", ErrMalformedResponse, err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}
	msg := cr.Choices[0].Message
	if msg == nil || msg.Content == nil || strings.TrimSpace(*msg.Content) == "" {
		return "", fmt.Errorf("%w: no message content", ErrMalformedResponse)
	}

	return *msg.Content, nil
}

// statusError maps a non-success HTTP status to its error kind
func statusError(code int, detail string) error {
	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w (status %d): %s", ErrAuthentication, code, detail)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w (status %d): %s", ErrRateLimited, code, detail)
	case http.StatusForbidden:
		return fmt.Errorf("%w (status %d): %s", ErrAccessDenied, code, detail)
	default:
		return &ServiceError{StatusCode: code, Detail: detail}
	}
}

// readErrorDetail extracts the provider's error message, falling back to the
// raw body text.
func readErrorDetail(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}

	var apiErr apiErrorBody
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		if apiErr.Error.Type != "" {
			return fmt.Sprintf("%s: %s", apiErr.Error.Type, apiErr.Error.Message)
		}
		return apiErr.Error.Message
	}

	return strings.TrimSpace(string(body))
}
