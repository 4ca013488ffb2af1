package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"shelp/internal/config"
	"shelp/internal/prompts"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	requestTimeout = 60 * time.Second
)

// Client talks to an OpenAI-compatible chat completion endpoint. One client
// is created at startup; credential problems surface here, before any
// request is sent.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient builds a client for model. SHELP_API_BASE overrides the endpoint
// base URL.
func NewClient(model string, logger *zap.Logger) (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := os.Getenv("SHELP_API_BASE")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		// The overall timeout only bounds the non-streaming path; streaming
		// requests are bounded by their context instead.
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		logger:     logger,
	}, nil
}

func systemPrompt(task config.Task) string {
	if task == config.TaskExplain {
		return prompts.ExplainTask
	}
	return prompts.AskTask
}

func (c *Client) newRequest(ctx context.Context, task config.Task, userContent string, stream bool) (*http.Request, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(task)},
			{Role: "user", Content: userContent},
		},
		Temperature: 0,
		Stream:      stream,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if stream {
		req.Header.Set("Accept", "text/event-stream")
		req.Header.Set("Cache-Control", "no-cache")
	}
	return req, nil
}

// Complete performs a non-streaming chat completion and returns the answer
// text of the first choice.
func (c *Client) Complete(ctx context.Context, task config.Task, userContent string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, task, userContent, false)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &DecodeError{Err: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &DecodeError{Err: fmt.Errorf("response contains no choices")}
	}
	return parsed.Choices[0].Message.Content, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &TransportError{
		Status: resp.StatusCode,
		Err:    fmt.Errorf("%s", bytes.TrimSpace(body)),
	}
}
