// Package models defines the request/response shapes shared by the API
// handlers and the service layer.
package models

import (
	"time"

	"github.com/mnemonic-nexus/mnx/ent"
	"github.com/mnemonic-nexus/mnx/pkg/envelope"
)

// AppendEventRequest is the gateway append body: a client envelope plus the
// optional idempotency key.
type AppendEventRequest struct {
	envelope.Envelope
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// AppendEventResponse acknowledges a durably committed append.
type AppendEventResponse struct {
	GlobalSeq     int64  `json:"global_seq"`
	EventID       string `json:"event_id"`
	ReceivedAt    string `json:"received_at"`
	PayloadHash   string `json:"payload_hash"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// EventFilters contains filtering options for listing a stream. AfterSeq is
// an exclusive cursor; pass the previous page's next_after_global_seq.
type EventFilters struct {
	WorldID  string `query:"-"`
	Branch   string `query:"branch"`
	Kind     string `query:"kind"`
	AfterSeq int64  `query:"after_global_seq"`
	Limit    int    `query:"limit"`
}

// EventListResponse is one page of a stream in sequence order.
type EventListResponse struct {
	Items              []*ent.WorldEvent `json:"items"`
	NextAfterGlobalSeq int64             `json:"next_after_global_seq"`
	HasMore            bool              `json:"has_more"`
}

// EventResponse wraps a single log row.
type EventResponse struct {
	*ent.WorldEvent
}

// DeadLetterListResponse contains quarantined events.
type DeadLetterListResponse struct {
	DeadLetters []*ent.DeadLetter `json:"dead_letters"`
	Count       int               `json:"count"`
}

// OutboxStatus summarizes publisher progress for the admin surface.
type OutboxStatus struct {
	UnpublishedCount int64      `json:"unpublished_count"`
	RetryScheduled   int64      `json:"retry_scheduled"`
	DeadLetterCount  int64      `json:"dead_letter_count"`
	OldestUnpublished *time.Time `json:"oldest_unpublished,omitempty"`
}
