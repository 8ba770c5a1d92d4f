// Package generation calls the external draft generation service.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"content_orchestrator/internal/domain"
)

// Config holds generation service configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Request describes the draft to produce.
type Request struct {
	BrandName      string             `json:"brand_name"`
	Industry       string             `json:"industry"`
	Description    string             `json:"description"`
	TargetAudience string             `json:"target_audience"`
	Keywords       []string           `json:"keywords"`
	ContentType    domain.ContentType `json:"content_type"`
	Platform       domain.Platform    `json:"platform"`
}

type draftResponse struct {
	Title          string  `json:"title"`
	Caption        string  `json:"caption"`
	VisualBrief    string  `json:"visual_brief"`
	AlignmentScore float64 `json:"alignment_score"`
	Error          string  `json:"error"`
}

// Client talks to the generation service with bounded retries.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "generation"),
	}
}

// Draft requests one draft for the given brand profile.
func (c *Client) Draft(ctx context.Context, req Request) (*domain.DraftContent, error) {
	var resp *draftResponse
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.doRequest(ctx, req)
		if err == nil {
			return &domain.DraftContent{
				Title:          resp.Title,
				Caption:        resp.Caption,
				VisualBrief:    resp.VisualBrief,
				AlignmentScore: resp.AlignmentScore,
				ContentType:    req.ContentType,
				Platform:       req.Platform,
			}, nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("generation request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, genReq Request) (*draftResponse, error) {
	body, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var draft draftResponse
	if err := json.NewDecoder(resp.Body).Decode(&draft); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if draft.Error != "" {
		return nil, fmt.Errorf("generation service: %s", draft.Error)
	}

	return &draft, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
