package generation

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_orchestrator/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Timeout:        5 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, testLogger())
}

func TestClient_Draft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Acme Coffee", req.BrandName)
		assert.Equal(t, domain.ContentTypePhoto, req.ContentType)

		json.NewEncoder(w).Encode(map[string]any{
			"title":           "Morning blend",
			"caption":         "Start the day right",
			"visual_brief":    "latte art close-up",
			"alignment_score": 92.5,
		})
	}))
	defer server.Close()

	client := testClient(server.URL)
	draft, err := client.Draft(context.Background(), Request{
		BrandName:   "Acme Coffee",
		Industry:    "food_beverage",
		Keywords:    []string{"coffee", "roast"},
		ContentType: domain.ContentTypePhoto,
		Platform:    domain.PlatformInstagram,
	})
	require.NoError(t, err)

	assert.Equal(t, "Morning blend", draft.Title)
	assert.Equal(t, "Start the day right", draft.Caption)
	assert.Equal(t, "latte art close-up", draft.VisualBrief)
	assert.Equal(t, 92.5, draft.AlignmentScore)
	assert.Equal(t, domain.ContentTypePhoto, draft.ContentType)
	assert.Equal(t, domain.PlatformInstagram, draft.Platform)
}

func TestClient_Draft_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"title":           "Roastery tour",
			"caption":         "Behind the scenes",
			"alignment_score": 80.0,
		})
	}))
	defer server.Close()

	client := testClient(server.URL)
	draft, err := client.Draft(context.Background(), Request{
		BrandName:   "Acme Coffee",
		ContentType: domain.ContentTypeVideo,
		Platform:    domain.PlatformInstagram,
	})
	require.NoError(t, err)

	assert.Equal(t, "Roastery tour", draft.Title)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Draft_ExhaustsAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Draft(context.Background(), Request{
		BrandName:   "Acme Coffee",
		ContentType: domain.ContentTypePhoto,
		Platform:    domain.PlatformInstagram,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Draft_ServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": "brand profile incomplete",
		})
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.Draft(context.Background(), Request{
		BrandName:   "Acme Coffee",
		ContentType: domain.ContentTypePhoto,
		Platform:    domain.PlatformInstagram,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "brand profile incomplete")
}

func TestClient_Draft_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{
		BaseURL:        server.URL,
		Timeout:        5 * time.Second,
		MaxAttempts:    5,
		InitialBackoff: time.Hour,
		MaxBackoff:     time.Hour,
	}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Draft(ctx, Request{
		BrandName:   "Acme Coffee",
		ContentType: domain.ContentTypePhoto,
		Platform:    domain.PlatformInstagram,
	})
	require.ErrorIs(t, err, context.Canceled)
}
