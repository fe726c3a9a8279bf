package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// Backend endpoints
const (
	TranscriptPath = "/api/transcript"
	QuestionPath   = "/api/question"
	HealthPath     = "/health"
)

// ContentTypeJSON is sent with every request body
const ContentTypeJSON = "application/json"

// Client talks to the transcript backend
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	timeout    time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

// WithTimeout bounds each request; zero means no timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchTranscript asks the backend to extract the transcript of videoURL
func (c *Client) FetchTranscript(ctx context.Context, videoURL string) (*TranscriptResponse, error) {
	log.Printf("Requesting transcript for URL: %s", videoURL)
	resp, err := postJSON[TranscriptResponse](ctx, c, TranscriptPath, TranscriptRequest{URL: videoURL})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AskQuestion submits a question about transcript
func (c *Client) AskQuestion(ctx context.Context, question, transcript string) (*AnswerResponse, error) {
	log.Printf("Submitting question (%d chars) against transcript (%d chars)", len(question), len(transcript))
	resp, err := postJSON[AnswerResponse](ctx, c, QuestionPath, QuestionRequest{
		Question:   question,
		Transcript: transcript,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health calls the backend health endpoint
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+HealthPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := FetchJSON[HealthResponse](c.httpClient, req)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// postJSON encodes body, posts it to path and decodes the response
func postJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var zero T

	payload, err := json.Marshal(body)
	if err != nil {
		return zero, fmt.Errorf("failed to marshal request: %w", err)
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", ContentTypeJSON)
	req.Header.Set("Accept", ContentTypeJSON)

	return FetchJSON[T](c.httpClient, req)
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}
