// Package platform holds the adapter boundary to the social networks.
// The core never branches on a network's payload shape; it only selects
// an adapter from the registry by platform identifier.
package platform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"content_orchestrator/internal/domain"
)

// ErrIncompatibleContent means the item's content type is not accepted by
// the target network.
var ErrIncompatibleContent = errors.New("content type not accepted by platform")

// RejectedError is an adapter-reported publish rejection.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("platform rejected publish: %s", e.Reason)
}

// Adapter publishes one content item to one network.
type Adapter interface {
	Publish(ctx context.Context, item *domain.ContentItem) (string, error)
	IsConfigured() bool
}

// Registry maps platform identifiers to adapters. Adding a network means
// registering an implementation, not editing a branch chain.
type Registry struct {
	mu       sync.RWMutex
	adapters map[domain.Platform]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[domain.Platform]Adapter)}
}

func (r *Registry) Register(p domain.Platform, a Adapter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[p] = a
}

func (r *Registry) Lookup(p domain.Platform) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[p]
	return a, ok
}

// Configured lists platforms whose adapter reports itself configured.
func (r *Registry) Configured() []domain.Platform {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Platform
	for p, a := range r.adapters {
		if a.IsConfigured() {
			out = append(out, p)
		}
	}
	return out
}
