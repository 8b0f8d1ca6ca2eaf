// Package analytics forwards product usage events to PostHog.
package analytics

import (
	"errors"
	"log/slog"

	"github.com/posthog/posthog-go"
)

// DefaultEndpoint is the PostHog ingestion host used when none is configured.
const DefaultEndpoint = "https://eu.i.posthog.com"

// PosthogTracker enqueues events on a PostHog client. Delivery is asynchronous and best effort.
type PosthogTracker struct {
	client posthog.Client
	logger *slog.Logger
}

// NewPosthogTracker creates a tracker for apiKey. An empty endpoint selects DefaultEndpoint.
func NewPosthogTracker(apiKey, endpoint string, logger *slog.Logger) (*PosthogTracker, error) {
	if apiKey == "" {
		return nil, errors.New("posthog API key is empty")
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, err
	}
	logger.Info("PostHog usage tracking enabled", slog.String("endpoint", endpoint))
	return newPosthogTracker(client, logger), nil
}

func newPosthogTracker(client posthog.Client, logger *slog.Logger) *PosthogTracker {
	return &PosthogTracker{client: client, logger: logger}
}

// Enqueue queues one capture event.
func (t *PosthogTracker) Enqueue(distinctID, event string, properties map[string]any) {
	err := t.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		t.logger.Warn("Failed to enqueue usage event", slog.String("event", event), slog.String("error", err.Error()))
		return
	}
	t.logger.Debug("Usage event enqueued", slog.String("distinct_id", distinctID), slog.String("event", event))
}

// Close flushes pending events.
func (t *PosthogTracker) Close() {
	if err := t.client.Close(); err != nil {
		t.logger.Warn("Failed to flush usage events", slog.String("error", err.Error()))
	}
}
