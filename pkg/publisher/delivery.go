package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mnemonic-nexus/mnx/pkg/models"
)

// OutcomeKind classifies a delivery attempt.
type OutcomeKind int

const (
	// OutcomeSuccess covers 2xx and 409: the subscriber has (or already
	// had) the event.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeStructural covers 400: the event itself is malformed and
	// retrying cannot help. Goes straight to the DLQ.
	OutcomeStructural
	// OutcomeRetryable covers everything else: transport errors, 5xx,
	// timeouts.
	OutcomeRetryable
)

// Outcome is the result of delivering one event to one subscriber.
type Outcome struct {
	Kind       OutcomeKind
	Subscriber string
	StatusCode int
	Err        error
}

func (o Outcome) String() string {
	switch {
	case o.Err != nil:
		return fmt.Sprintf("%s: %v", o.Subscriber, o.Err)
	default:
		return fmt.Sprintf("%s: HTTP %d", o.Subscriber, o.StatusCode)
	}
}

// Deliverer posts events to subscriber endpoints.
type Deliverer struct {
	client      *http.Client
	publisherID string
}

// NewDeliverer creates a Deliverer with the given per-attempt timeout.
func NewDeliverer(publisherID string, timeout time.Duration) *Deliverer {
	return &Deliverer{
		client:      &http.Client{Timeout: timeout},
		publisherID: publisherID,
	}
}

// Deliver posts one event to one subscriber and classifies the response.
func (d *Deliverer) Deliver(ctx context.Context, sub Subscriber, req *models.ProjectorEventRequest) Outcome {
	body, err := json.Marshal(req)
	if err != nil {
		return Outcome{Kind: OutcomeStructural, Subscriber: sub.Name, Err: fmt.Errorf("encoding delivery body: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.URL, bytes.NewReader(body))
	if err != nil {
		return Outcome{Kind: OutcomeRetryable, Subscriber: sub.Name, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Publisher-ID", d.publisherID)
	httpReq.Header.Set("X-Event-ID", req.EventID)

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return Outcome{Kind: OutcomeRetryable, Subscriber: sub.Name, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	return Outcome{
		Kind:       classifyStatus(resp.StatusCode),
		Subscriber: sub.Name,
		StatusCode: resp.StatusCode,
	}
}

// classifyStatus maps an HTTP status to an outcome. 409 means the
// subscriber already processed the sequence (watermark gate), which is a
// success for at-least-once delivery.
func classifyStatus(status int) OutcomeKind {
	switch {
	case status >= 200 && status < 300:
		return OutcomeSuccess
	case status == http.StatusConflict:
		return OutcomeSuccess
	case status == http.StatusBadRequest:
		return OutcomeStructural
	default:
		return OutcomeRetryable
	}
}
