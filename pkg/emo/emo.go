// Package emo defines the Entity-Memory-Object data model shared by the
// projectors and the memory translator: typed event payloads, deterministic
// identity derivation, idempotency keys, and the replay determinism hash.
package emo

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Event kinds emitted and consumed on the EMO lifecycle.
const (
	KindCreated = "emo.created"
	KindUpdated = "emo.updated"
	KindLinked  = "emo.linked"
	KindDeleted = "emo.deleted"
)

// Legacy memory event kinds handled by the translator.
const (
	KindMemoryUpserted      = "memory.item.upserted"
	KindMemoryDeleted       = "memory.item.deleted"
	KindMemoryEmbeddingDone = "memory.embed.generated"
)

// Type classifies an EMO.
type Type string

const (
	TypeNote    Type = "note"
	TypeFact    Type = "fact"
	TypeDoc     Type = "doc"
	TypeProfile Type = "profile"
)

// SourceKind identifies where an EMO originated.
type SourceKind string

const (
	SourceUser   SourceKind = "user"
	SourceAgent  SourceKind = "agent"
	SourceIngest SourceKind = "ingest"
)

// Operation is the history-row operation derived from the event kind.
type Operation string

const (
	OpCreated Operation = "created"
	OpUpdated Operation = "updated"
	OpLinked  Operation = "linked"
	OpDeleted Operation = "deleted"
)

// ParentRel is a lineage relation kind.
const (
	RelDerived    = "derived"
	RelSupersedes = "supersedes"
	RelMerges     = "merges"
	RelLinked     = "linked"
)

// Source describes EMO provenance.
type Source struct {
	Kind SourceKind `json:"kind"`
	URI  string     `json:"uri,omitempty"`
}

// Parent is a lineage edge to another EMO.
type Parent struct {
	EMOID string `json:"emo_id"`
	Rel   string `json:"rel"`
}

// Link is an outgoing reference, either to another EMO or to an external URI.
type Link struct {
	Kind string `json:"kind"` // "emo" or "uri"
	Ref  string `json:"ref"`
}

// Payload is the body of every emo.* event.
type Payload struct {
	EMOID          string   `json:"emo_id"`
	EMOType        Type     `json:"emo_type,omitempty"`
	EMOVersion     int      `json:"emo_version"`
	TenantID       string   `json:"tenant_id,omitempty"`
	WorldID        string   `json:"world_id"`
	Branch         string   `json:"branch"`
	Source         *Source  `json:"source,omitempty"`
	MimeType       string   `json:"mime_type,omitempty"`
	Content        string   `json:"content,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Parents        []Parent `json:"parents,omitempty"`
	Links          []Link   `json:"links,omitempty"`
	ChangeID       string   `json:"change_id,omitempty"`
	IdempotencyKey string   `json:"idempotency_key,omitempty"`
	DeletionReason string   `json:"deletion_reason,omitempty"`
	SchemaVersion  int      `json:"schema_version,omitempty"`
}

// ParsePayload decodes a generic envelope payload into a typed EMO payload
// and checks the fields every emo.* event must carry.
func ParsePayload(raw map[string]interface{}) (*Payload, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding emo payload: %w", err)
	}

	if p.EMOID == "" {
		return nil, fmt.Errorf("emo payload missing emo_id")
	}
	if _, err := uuid.Parse(p.EMOID); err != nil {
		return nil, fmt.Errorf("emo_id must be a valid UUID")
	}
	if p.EMOVersion < 1 {
		return nil, fmt.Errorf("emo_version must be >= 1, got %d", p.EMOVersion)
	}
	if p.MimeType == "" {
		p.MimeType = "text/markdown"
	}
	return &p, nil
}

// OperationForKind maps an emo.* event kind to its history operation.
func OperationForKind(kind string) (Operation, bool) {
	switch kind {
	case KindCreated:
		return OpCreated, true
	case KindUpdated:
		return OpUpdated, true
	case KindLinked:
		return OpLinked, true
	case KindDeleted:
		return OpDeleted, true
	}
	return "", false
}

// idNamespace anchors deterministic EMO id derivation. Stable forever:
// changing it would re-key every translated memory.
var idNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// DeriveID maps a legacy memory id to its EMO id. The mapping is
// deterministic so repeated translation of the same memory converges on one
// identity.
func DeriveID(memoryID string) uuid.UUID {
	return uuid.NewSHA1(idNamespace, []byte("memory:"+memoryID))
}

// IdempotencyKey builds the per-version key carried by every emo.* event.
func IdempotencyKey(emoID string, version int, op Operation) string {
	return fmt.Sprintf("%s:%d:%s", emoID, version, op)
}

// LinkedEMOIDs extracts the distinct EMO ids referenced by parents and
// emo-kind links, for the determinism hash.
func LinkedEMOIDs(parents []Parent, links []Link) []string {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, p := range parents {
		add(p.EMOID)
	}
	for _, l := range links {
		if l.Kind == "emo" {
			add(l.Ref)
		}
	}
	return ids
}
