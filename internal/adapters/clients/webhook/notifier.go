// Package webhook implements the event notifier port by POSTing note change
// events to a configured consumer endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dkarlsen/notes-service/internal/domain/note"
	"github.com/dkarlsen/notes-service/internal/platform/httpclient"
	"github.com/dkarlsen/notes-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.EventNotifier = (*Notifier)(nil)
	_ ports.HealthChecker = (*Notifier)(nil)
)

// eventNoteUpdated is the event type sent when a note's fields change.
const eventNoteUpdated = "note.updated"

// eventEnvelope is the wire format for webhook deliveries.
type eventEnvelope struct {
	Event      string    `json:"event"`
	OccurredAt time.Time `json:"occurred_at"`
	Note       eventNote `json:"note"`
}

type eventNote struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Notifier delivers note events over HTTP. Delivery runs through the
// instrumented outbound pipeline, so retries, circuit breaking, rate
// limiting, and tracing all apply without any logic here.
type Notifier struct {
	client *httpclient.Client
	logger *slog.Logger
}

// New creates a Notifier sending events to the client's BaseURL.
func New(client *httpclient.Client, logger *slog.Logger) *Notifier {
	return &Notifier{client: client, logger: logger}
}

// NoteUpdated POSTs a note.updated event to the consumer endpoint.
// Any non-2xx response is reported as an error; the caller decides whether
// delivery failures matter.
func (n *Notifier) NoteUpdated(ctx context.Context, updated *note.Note) error {
	envelope := eventEnvelope{
		Event:      eventNoteUpdated,
		OccurredAt: time.Now().UTC(),
		Note: eventNote{
			ID:        updated.ID,
			Owner:     updated.Owner,
			Title:     updated.Title,
			UpdatedAt: updated.UpdatedAt,
		},
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", eventNoteUpdated, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.client.BaseURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", eventNoteUpdated, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(ctx, req)
	if resp != nil {
		// Drain so the connection is reusable.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("delivering %s event for note %s: %w", eventNoteUpdated, updated.ID, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("delivering %s event for note %s: consumer returned HTTP %d",
			eventNoteUpdated, updated.ID, resp.StatusCode)
	}

	return nil
}

// Name identifies this component in readiness results.
func (n *Notifier) Name() string {
	return "webhook"
}

// HealthCheck reports the consumer's availability from the circuit breaker.
func (n *Notifier) HealthCheck(ctx context.Context) error {
	return n.client.HealthCheck(ctx)
}
