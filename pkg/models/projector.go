package models

import (
	"github.com/mnemonic-nexus/mnx/pkg/envelope"
)

// ProjectorEventRequest is the delivery body POSTed to a projector's
// reception endpoint by the publisher.
type ProjectorEventRequest struct {
	GlobalSeq   int64              `json:"global_seq"`
	EventID     string             `json:"event_id"`
	Envelope    *envelope.Envelope `json:"envelope"`
	PayloadHash string             `json:"payload_hash"`
}

// ProjectorAckResponse acknowledges a processed (or already-processed)
// delivery.
type ProjectorAckResponse struct {
	Status    string `json:"status"`
	GlobalSeq int64  `json:"global_seq"`
	Projector string `json:"projector"`
}

// WatermarkEntry reports one projector's committed progress on a stream.
type WatermarkEntry struct {
	ProjectorName    string `json:"projector_name"`
	WorldID          string `json:"world_id"`
	Branch           string `json:"branch"`
	LastProcessedSeq int64  `json:"last_processed_seq"`
}

// SnapshotResponse carries a projector's deterministic state snapshot and
// its hash for replay validation.
type SnapshotResponse struct {
	Projector string                 `json:"projector"`
	WorldID   string                 `json:"world_id"`
	Branch    string                 `json:"branch"`
	StateHash string                 `json:"state_hash"`
	Snapshot  map[string]interface{} `json:"snapshot"`
}

// ProjectorLagEntry reports how far a projector trails the log head.
type ProjectorLagEntry struct {
	ProjectorName    string `json:"projector_name"`
	WorldID          string `json:"world_id"`
	Branch           string `json:"branch"`
	LastProcessedSeq int64  `json:"last_processed_seq"`
	LogHeadSeq       int64  `json:"log_head_seq"`
	Lag              int64  `json:"lag"`
}

// RebuildRequest asks for a projector rebuild over one stream. The zero
// value of the optional fields means a full rebuild: clear the lens and
// replay the whole stream.
type RebuildRequest struct {
	WorldID string `json:"world_id"`
	Branch  string `json:"branch"`

	// FromGlobalSeq restricts the replay to events at or above this
	// sequence. Only meaningful together with ClearExisting=false; a full
	// rebuild from a mid-stream point would drop earlier state.
	FromGlobalSeq int64 `json:"from_global_seq,omitempty"`

	// ClearExisting controls whether lens rows are truncated before the
	// replay. Defaults to true when omitted. False turns the rebuild into a
	// catch-up pass over the existing state.
	ClearExisting *bool `json:"clear_existing,omitempty"`
}

// Clear reports whether the rebuild should truncate the lens first.
func (r *RebuildRequest) Clear() bool {
	return r.ClearExisting == nil || *r.ClearExisting
}

// RebuildResponse reports a completed rebuild.
type RebuildResponse struct {
	Projector       string `json:"projector"`
	WorldID         string `json:"world_id"`
	Branch          string `json:"branch"`
	EventsReplayed  int64  `json:"events_replayed"`
	FinalWatermark  int64  `json:"final_watermark"`
	StateHash       string `json:"state_hash"`
}
