// Package envelope defines the event envelope accepted by the gateway and
// the validation rules it must pass before it reaches the store.
package envelope

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mnemonic-nexus/mnx/pkg/canonical"
)

// Supported envelope schema versions.
const (
	MinVersion = 1
	MaxVersion = 2
)

// MaxBranchLength is the maximum branch name length.
const MaxBranchLength = 100

var branchPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// By identifies the audit principal behind an event.
type By struct {
	Agent string `json:"agent"`
}

// Envelope is the immutable per-event record accepted by the gateway.
// Server-assigned fields (EventID, ReceivedAt, PayloadHash) are empty until
// Enrich is called; GlobalSeq is assigned by the store.
type Envelope struct {
	WorldID     string                 `json:"world_id"`
	Branch      string                 `json:"branch"`
	Kind        string                 `json:"kind"`
	Payload     map[string]interface{} `json:"payload"`
	By          By                     `json:"by"`
	OccurredAt  string                 `json:"occurred_at,omitempty"`
	CausationID string                 `json:"causation_id,omitempty"`
	Version     int                    `json:"version,omitempty"`

	// Server-assigned
	EventID     string `json:"event_id,omitempty"`
	ReceivedAt  string `json:"received_at,omitempty"`
	PayloadHash string `json:"payload_hash,omitempty"`
}

// KindCategory returns the category half of kind ("category.action").
func (e *Envelope) KindCategory() string {
	category, _, _ := strings.Cut(e.Kind, ".")
	return category
}

// Validate checks the envelope against the acceptance rules. It returns a
// descriptive error for the first violation found; a nil error means the
// envelope may be enriched and appended.
func (e *Envelope) Validate() error {
	if e.WorldID == "" {
		return fmt.Errorf("world_id is required")
	}
	if _, err := uuid.Parse(e.WorldID); err != nil {
		return fmt.Errorf("world_id must be a valid UUID")
	}

	if e.Branch == "" {
		return fmt.Errorf("branch is required")
	}
	if len(e.Branch) > MaxBranchLength {
		return fmt.Errorf("branch name cannot exceed %d characters", MaxBranchLength)
	}
	if !branchPattern.MatchString(e.Branch) {
		return fmt.Errorf("branch name must be alphanumeric with hyphens/underscores")
	}

	category, action, found := strings.Cut(e.Kind, ".")
	if !found || strings.Contains(action, ".") {
		return fmt.Errorf("event kind must be in format 'category.action'")
	}
	if category == "" || action == "" {
		return fmt.Errorf("event kind category and action cannot be empty")
	}

	if len(e.Payload) == 0 {
		return fmt.Errorf("event payload cannot be empty")
	}

	if strings.TrimSpace(e.By.Agent) == "" {
		return fmt.Errorf("by.agent is required for the audit trail")
	}

	if e.OccurredAt != "" {
		if err := validateTimestamp(e.OccurredAt); err != nil {
			return err
		}
	}

	if e.CausationID != "" {
		if _, err := uuid.Parse(e.CausationID); err != nil {
			return fmt.Errorf("causation_id must be a valid UUID")
		}
	}

	if e.Version != 0 && (e.Version < MinVersion || e.Version > MaxVersion) {
		return fmt.Errorf("unsupported envelope version: %d (supported: %d-%d)",
			e.Version, MinVersion, MaxVersion)
	}

	return nil
}

// validateTimestamp enforces strict RFC 3339 UTC timestamps.
func validateTimestamp(s string) error {
	if _, err := time.Parse(time.RFC3339Nano, s); err != nil {
		return fmt.Errorf("invalid RFC 3339 timestamp: %q", s)
	}
	if !strings.HasSuffix(s, "Z") && !strings.HasSuffix(s, "+00:00") {
		return fmt.Errorf("occurred_at must be UTC (end with Z or +00:00)")
	}
	return nil
}

// OccurredAtTime parses the client timestamp, or returns nil when absent.
// Validate must have succeeded first.
func (e *Envelope) OccurredAtTime() *time.Time {
	if e.OccurredAt == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, e.OccurredAt)
	if err != nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// ComputePayloadHash returns the SHA-256 of the canonical JSON of the
// payload alone.
func (e *Envelope) ComputePayloadHash() (string, error) {
	return canonical.Hash(e.Payload)
}

// Enrich assigns the server fields: a fresh event id, the receipt timestamp
// (UTC, RFC 3339), and the payload hash. It mutates the envelope and returns
// the assigned event id.
func (e *Envelope) Enrich(now time.Time) (string, error) {
	hash, err := e.ComputePayloadHash()
	if err != nil {
		return "", fmt.Errorf("computing payload hash: %w", err)
	}

	eventID := uuid.NewString()
	e.EventID = eventID
	e.ReceivedAt = now.UTC().Format("2006-01-02T15:04:05.000Z")
	e.PayloadHash = hash
	return eventID, nil
}

// VerifyPayloadHash recomputes the canonical payload hash and compares it to
// the expected value. Used by the publisher before delivery and by the
// projector framework on reception.
func (e *Envelope) VerifyPayloadHash(expected string) (bool, error) {
	computed, err := e.ComputePayloadHash()
	if err != nil {
		return false, err
	}
	return computed == expected, nil
}

// ToMap returns the envelope as a generic map for JSONB persistence.
func (e *Envelope) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"world_id": e.WorldID,
		"branch":   e.Branch,
		"kind":     e.Kind,
		"payload":  e.Payload,
		"by":       map[string]interface{}{"agent": e.By.Agent},
	}
	if e.OccurredAt != "" {
		m["occurred_at"] = e.OccurredAt
	}
	if e.CausationID != "" {
		m["causation_id"] = e.CausationID
	}
	if e.Version != 0 {
		m["version"] = e.Version
	}
	if e.EventID != "" {
		m["event_id"] = e.EventID
	}
	if e.ReceivedAt != "" {
		m["received_at"] = e.ReceivedAt
	}
	if e.PayloadHash != "" {
		m["payload_hash"] = e.PayloadHash
	}
	return m
}
