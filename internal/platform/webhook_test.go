package platform

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_orchestrator/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestWebhookAdapter_Publish(t *testing.T) {
	var gotAuth string
	var gotReq publishRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(publishResponse{PostID: "post-42"})
	}))
	defer server.Close()

	adapter := NewWebhookAdapter(domain.PlatformTwitter, WebhookConfig{
		URL:   server.URL,
		Token: "secret",
	}, testLogger())

	item := &domain.ContentItem{
		ID:          1,
		Caption:     "hello",
		ContentType: domain.ContentTypeText,
		Platform:    domain.PlatformTwitter,
	}

	postID, err := adapter.Publish(context.Background(), item)

	require.NoError(t, err)
	assert.Equal(t, "post-42", postID)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "hello", gotReq.Caption)
	assert.Equal(t, "text", gotReq.ContentType)
}

func TestWebhookAdapter_Publish_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(publishResponse{Error: "caption too long"})
	}))
	defer server.Close()

	adapter := NewWebhookAdapter(domain.PlatformTwitter, WebhookConfig{URL: server.URL}, testLogger())

	item := &domain.ContentItem{Caption: "hello", ContentType: domain.ContentTypeText}

	_, err := adapter.Publish(context.Background(), item)

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "caption too long", rejected.Reason)
}

func TestWebhookAdapter_Publish_IncompatibleContent(t *testing.T) {
	adapter := NewWebhookAdapter(domain.PlatformInstagram, WebhookConfig{URL: "http://localhost"}, testLogger())

	item := &domain.ContentItem{Caption: "text only", ContentType: domain.ContentTypeText}

	_, err := adapter.Publish(context.Background(), item)

	assert.ErrorIs(t, err, ErrIncompatibleContent)
}

func TestWebhookAdapter_IsConfigured(t *testing.T) {
	assert.False(t, NewWebhookAdapter(domain.PlatformReddit, WebhookConfig{}, testLogger()).IsConfigured())
	assert.True(t, NewWebhookAdapter(domain.PlatformReddit, WebhookConfig{URL: "http://localhost"}, testLogger()).IsConfigured())
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	_, ok := reg.Lookup(domain.PlatformInstagram)
	assert.False(t, ok)

	adapter := NewWebhookAdapter(domain.PlatformInstagram, WebhookConfig{URL: "http://localhost"}, testLogger())
	reg.Register(domain.PlatformInstagram, adapter)

	got, ok := reg.Lookup(domain.PlatformInstagram)
	assert.True(t, ok)
	assert.Same(t, adapter, got)

	assert.Equal(t, []domain.Platform{domain.PlatformInstagram}, reg.Configured())
}
