package api

import (
	"github.com/mnemonic-nexus/mnx/pkg/database"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	Projectors []string               `json:"projectors"`
	Checks     map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one named component check inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the append endpoint's error body.
type ErrorResponse struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// IdempotencyConflictResponse is the 409 body for a replayed idempotency
// key: the standard error taxonomy plus the first-accepted event, which
// remains authoritative.
type IdempotencyConflictResponse struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlation_id,omitempty"`
	GlobalSeq     int64  `json:"global_seq"`
	EventID       string `json:"event_id"`
	ReceivedAt    string `json:"received_at"`
	PayloadHash   string `json:"payload_hash"`
}
