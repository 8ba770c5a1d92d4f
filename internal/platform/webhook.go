package platform

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

// acceptedTypes lists which content types each network takes. Instagram
// has no text-only posts; LinkedIn and Reddit take no video through this
// integration.
var acceptedTypes = map[domain.Platform]map[domain.ContentType]bool{
	domain.PlatformInstagram: {domain.ContentTypePhoto: true, domain.ContentTypeVideo: true},
	domain.PlatformTwitter:   {domain.ContentTypeText: true, domain.ContentTypePhoto: true, domain.ContentTypeVideo: true},
	domain.PlatformLinkedIn:  {domain.ContentTypeText: true, domain.ContentTypePhoto: true},
	domain.PlatformFacebook:  {domain.ContentTypeText: true, domain.ContentTypePhoto: true, domain.ContentTypeVideo: true},
	domain.PlatformReddit:    {domain.ContentTypeText: true, domain.ContentTypePhoto: true},
}

// Accepts reports whether the network takes the given content type.
func Accepts(p domain.Platform, ct domain.ContentType) bool {
	return acceptedTypes[p][ct]
}

// WebhookConfig configures one WebhookAdapter endpoint.
type WebhookConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

// WebhookAdapter publishes through a per-network webhook bridge that owns
// the network's wire format and OAuth handling. The core only sees
// post_id or error.
type WebhookAdapter struct {
	platform   domain.Platform
	httpClient *http.Client
	url        string
	token      string
	logger     *slog.Logger
}

func NewWebhookAdapter(p domain.Platform, cfg WebhookConfig, logger *slog.Logger) *WebhookAdapter {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &WebhookAdapter{
		platform: p,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:    cfg.URL,
		token:  cfg.Token,
		logger: logger.With("platform", string(p)),
	}
}

func (a *WebhookAdapter) IsConfigured() bool {
	return a.url != ""
}

type publishRequest struct {
	Title            string `json:"title,omitempty"`
	Caption          string `json:"caption"`
	ContentType      string `json:"content_type"`
	MediaDescription string `json:"media_description,omitempty"`
}

type publishResponse struct {
	PostID string `json:"post_id"`
	Error  string `json:"error,omitempty"`
}

func (a *WebhookAdapter) Publish(ctx context.Context, item *domain.ContentItem) (string, error) {
	if !Accepts(a.platform, item.ContentType) {
		return "", fmt.Errorf("%s does not take %s content: %w", a.platform, item.ContentType, ErrIncompatibleContent)
	}

	payload := publishRequest{
		Title:       item.Title,
		Caption:     item.Caption,
		ContentType: string(item.ContentType),
	}
	if item.MediaDescription != nil {
		payload.MediaDescription = *item.MediaDescription
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal publish request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var result publishResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		reason := result.Error
		if reason == "" {
			reason = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return "", &RejectedError{Reason: reason}
	}
	if result.Error != "" {
		return "", &RejectedError{Reason: result.Error}
	}

	a.logger.Debug("published to platform", "item_id", item.ID, "post_id", result.PostID)

	return result.PostID, nil
}
