// Package translator bridges the legacy memory.* event family onto the EMO
// lifecycle: it consumes memory events like a projector and appends emo.*
// events back onto the same log, preserving identity and version determinism
// across restarts.
package translator

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mnemonic-nexus/mnx/pkg/database"
	"github.com/mnemonic-nexus/mnx/pkg/emo"
	"github.com/mnemonic-nexus/mnx/pkg/envelope"
	"github.com/mnemonic-nexus/mnx/pkg/metrics"
	"github.com/mnemonic-nexus/mnx/pkg/models"
	"github.com/mnemonic-nexus/mnx/pkg/services"
)

// Name is the translator's subscriber name on the publisher.
const Name = "translator"

// Agent is the audit principal stamped on every translated event.
const Agent = "translator:memory"

// Translator turns memory.* events into emo.* events. The version cache is
// an optimization only; a miss falls through to emo_current, so a restarted
// translator continues the version sequence instead of resetting it.
type Translator struct {
	events *services.EventService
	db     *stdsql.DB

	mu       sync.Mutex
	versions map[string]int
}

func New(events *services.EventService, db *stdsql.DB) *Translator {
	return &Translator{
		events:   events,
		db:       db,
		versions: make(map[string]int),
	}
}

// memoryPayload is the shape of memory.item.* payloads. Older producers used
// "id" where newer ones send "memory_id"; both are accepted.
type memoryPayload struct {
	MemoryID   string        `json:"memory_id"`
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Body       string        `json:"body"`
	Content    string        `json:"content"`
	Tags       []string      `json:"tags"`
	MimeType   string        `json:"mime_type"`
	SourceURI  string        `json:"source_uri"`
	ParentID   string        `json:"parent_id"`
	Supersedes string        `json:"supersedes"`
	MergedFrom []string      `json:"merged_from"`
	Links      []interface{} `json:"links"`
	References []string      `json:"references"`
}

func (p *memoryPayload) memoryID() string {
	if p.MemoryID != "" {
		return p.MemoryID
	}
	return p.ID
}

func (p *memoryPayload) content() string {
	if p.Content != "" {
		return p.Content
	}
	return p.Body
}

// HandleDelivery processes one publisher delivery. Non-memory kinds are
// acknowledged without effect so the translator can share the full firehose.
func (t *Translator) HandleDelivery(ctx context.Context, req *models.ProjectorEventRequest) (*models.ProjectorAckResponse, error) {
	if req.Envelope == nil {
		return nil, services.NewValidationError("envelope", "envelope is required")
	}
	if err := req.Envelope.Validate(); err != nil {
		return nil, services.NewValidationError("envelope", err.Error())
	}
	ok, err := req.Envelope.VerifyPayloadHash(req.PayloadHash)
	if err != nil {
		return nil, services.NewValidationError("payload_hash", err.Error())
	}
	if !ok {
		return nil, services.NewValidationError("payload_hash", "payload hash does not match canonical payload")
	}

	switch req.Envelope.Kind {
	case emo.KindMemoryUpserted, emo.KindMemoryDeleted:
	default:
		return &models.ProjectorAckResponse{
			Status:    "ignored",
			GlobalSeq: req.GlobalSeq,
			Projector: Name,
		}, nil
	}
	if req.GlobalSeq <= 0 {
		return nil, services.NewValidationError("global_seq", "global_seq must be positive")
	}

	// The translator keeps its own watermark so a redelivered sequence is
	// acknowledged without re-emitting. Without it, a warm version cache
	// would translate the redelivery as a fresh update. The row lock also
	// serializes concurrent deliveries for the same stream.
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin translator progress transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	worldID := req.Envelope.WorldID
	branch := req.Envelope.Branch
	watermark, err := lockProgress(ctx, tx, worldID, branch)
	if err != nil {
		return nil, err
	}
	if req.GlobalSeq <= watermark {
		slog.Debug("Duplicate delivery gated by translator watermark",
			"global_seq", req.GlobalSeq, "watermark", watermark)
		return &models.ProjectorAckResponse{
			Status:    "duplicate",
			GlobalSeq: req.GlobalSeq,
			Projector: Name,
		}, nil
	}

	var ack *models.ProjectorAckResponse
	switch req.Envelope.Kind {
	case emo.KindMemoryUpserted:
		ack, err = t.translateUpsert(ctx, req)
	case emo.KindMemoryDeleted:
		ack, err = t.translateDelete(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	if err := advanceProgress(ctx, tx, worldID, branch, req.GlobalSeq); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit translator progress for seq %d: %w", req.GlobalSeq, err)
	}
	return ack, nil
}

// lockProgress reads the translator's watermark under FOR UPDATE, creating
// the row on first contact. Watermarks are shared infrastructure, not
// tenant-gated, so no world context is needed.
func lockProgress(ctx context.Context, tx *stdsql.Tx, worldID, branch string) (int64, error) {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO watermarks (projector_name, world_id, branch, last_processed_seq, updated_at)
		VALUES ($1, $2, $3, 0, now())
		ON CONFLICT (projector_name, world_id, branch) DO NOTHING`,
		Name, worldID, branch)
	if err != nil {
		return 0, fmt.Errorf("failed to ensure translator watermark row: %w", err)
	}

	var seq int64
	err = tx.QueryRowContext(ctx, `
		SELECT last_processed_seq FROM watermarks
		WHERE projector_name = $1 AND world_id = $2 AND branch = $3
		FOR UPDATE`,
		Name, worldID, branch).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to lock translator watermark: %w", err)
	}
	return seq, nil
}

// advanceProgress moves the translator watermark forward, never back. The
// translated events themselves carry idempotency keys, which cover a crash
// between emit and commit: the replayed emit is absorbed as a conflict.
func advanceProgress(ctx context.Context, tx *stdsql.Tx, worldID, branch string, seq int64) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE watermarks
		SET last_processed_seq = GREATEST(last_processed_seq, $4), updated_at = now()
		WHERE projector_name = $1 AND world_id = $2 AND branch = $3`,
		Name, worldID, branch, seq)
	if err != nil {
		return fmt.Errorf("failed to advance translator watermark: %w", err)
	}
	return nil
}

func (t *Translator) translateUpsert(ctx context.Context, req *models.ProjectorEventRequest) (*models.ProjectorAckResponse, error) {
	payload, err := decodeMemoryPayload(req.Envelope.Payload)
	if err != nil {
		return nil, services.NewValidationError("payload", err.Error())
	}

	emoID := emo.DeriveID(payload.memoryID()).String()
	current, err := t.currentVersion(ctx, req.Envelope.WorldID, req.Envelope.Branch, emoID)
	if err != nil {
		return nil, err
	}

	var (
		kind    string
		op      emo.Operation
		version int
	)
	if current == 0 {
		kind, op, version = emo.KindCreated, emo.OpCreated, 1
	} else {
		kind, op, version = emo.KindUpdated, emo.OpUpdated, current+1
	}

	out := emo.Payload{
		EMOID:          emoID,
		EMOType:        inferEMOType(payload),
		EMOVersion:     version,
		WorldID:        req.Envelope.WorldID,
		Branch:         req.Envelope.Branch,
		Source:         &emo.Source{Kind: inferSourceKind(req.Envelope.By.Agent), URI: payload.SourceURI},
		MimeType:       mimeTypeOrDefault(payload.MimeType),
		Content:        joinContent(payload.Title, payload.content()),
		Tags:           payload.Tags,
		Parents:        inferParents(payload),
		Links:          extractLinks(payload),
		ChangeID:       uuid.NewString(),
		IdempotencyKey: emo.IdempotencyKey(emoID, version, op),
		SchemaVersion:  1,
	}

	if err := t.emit(ctx, req, kind, &out); err != nil {
		return nil, err
	}
	t.cacheVersion(req.Envelope.WorldID, req.Envelope.Branch, emoID, version)
	metrics.TranslatedEvents.WithLabelValues(kind).Inc()

	return &models.ProjectorAckResponse{
		Status:    "translated",
		GlobalSeq: req.GlobalSeq,
		Projector: Name,
	}, nil
}

func (t *Translator) translateDelete(ctx context.Context, req *models.ProjectorEventRequest) (*models.ProjectorAckResponse, error) {
	payload, err := decodeMemoryPayload(req.Envelope.Payload)
	if err != nil {
		return nil, services.NewValidationError("payload", err.Error())
	}

	emoID := emo.DeriveID(payload.memoryID()).String()
	current, err := t.currentVersion(ctx, req.Envelope.WorldID, req.Envelope.Branch, emoID)
	if err != nil {
		return nil, err
	}
	if current == 0 {
		slog.Warn("Delete for untranslated memory, skipping",
			"memory_id", payload.memoryID(), "emo_id", emoID,
			"world_id", req.Envelope.WorldID, "branch", req.Envelope.Branch)
		return &models.ProjectorAckResponse{
			Status:    "skipped",
			GlobalSeq: req.GlobalSeq,
			Projector: Name,
		}, nil
	}

	out := emo.Payload{
		EMOID:          emoID,
		EMOVersion:     current,
		WorldID:        req.Envelope.WorldID,
		Branch:         req.Envelope.Branch,
		ChangeID:       uuid.NewString(),
		IdempotencyKey: emo.IdempotencyKey(emoID, current, emo.OpDeleted),
		DeletionReason: "memory deleted",
		SchemaVersion:  1,
	}

	if err := t.emit(ctx, req, emo.KindDeleted, &out); err != nil {
		return nil, err
	}
	metrics.TranslatedEvents.WithLabelValues(emo.KindDeleted).Inc()

	return &models.ProjectorAckResponse{
		Status:    "translated",
		GlobalSeq: req.GlobalSeq,
		Projector: Name,
	}, nil
}

// emit appends the translated event. An idempotency conflict means a prior
// run already translated this version; that is success, not failure.
func (t *Translator) emit(ctx context.Context, req *models.ProjectorEventRequest, kind string, payload *emo.Payload) error {
	payloadMap, err := toMap(payload)
	if err != nil {
		return err
	}

	env := &envelope.Envelope{
		WorldID:     req.Envelope.WorldID,
		Branch:      req.Envelope.Branch,
		Kind:        kind,
		Payload:     payloadMap,
		By:          envelope.By{Agent: Agent},
		CausationID: req.EventID,
	}

	_, err = t.events.AppendEvent(ctx, env, payload.IdempotencyKey)
	if err != nil {
		var conflict *services.IdempotencyConflictError
		if errors.As(err, &conflict) {
			slog.Debug("Translation already appended",
				"idempotency_key", payload.IdempotencyKey, "global_seq", conflict.GlobalSeq)
			return nil
		}
		return fmt.Errorf("failed to append translated event: %w", err)
	}
	return nil
}

// currentVersion consults the cache, then emo_current. Zero means unseen.
func (t *Translator) currentVersion(ctx context.Context, worldID, branch, emoID string) (int, error) {
	key := worldID + "|" + branch + "|" + emoID
	t.mu.Lock()
	if v, ok := t.versions[key]; ok {
		t.mu.Unlock()
		return v, nil
	}
	t.mu.Unlock()

	var version int
	err := database.WithWorldContext(ctx, t.db, worldID, func(conn *stdsql.Conn) error {
		row := conn.QueryRowContext(ctx, `
			SELECT emo_version FROM emo_current
			WHERE emo_id = $1 AND world_id = $2 AND branch = $3`,
			emoID, worldID, branch)
		err := row.Scan(&version)
		if errors.Is(err, stdsql.ErrNoRows) {
			version = 0
			return nil
		}
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to look up emo version: %w", err)
	}

	if version > 0 {
		t.cacheVersion(worldID, branch, emoID, version)
	}
	return version, nil
}

func (t *Translator) cacheVersion(worldID, branch, emoID string, version int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.versions[worldID+"|"+branch+"|"+emoID] = version
}

func decodeMemoryPayload(raw map[string]interface{}) (*memoryPayload, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	var p memoryPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding memory payload: %w", err)
	}
	if p.memoryID() == "" {
		return nil, fmt.Errorf("memory payload missing memory_id")
	}
	return &p, nil
}

func toMap(payload *emo.Payload) (map[string]interface{}, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding emo payload: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding emo payload: %w", err)
	}
	return m, nil
}

// joinContent composes the EMO content from title and body; the separator is
// dropped when either side is empty.
func joinContent(title, body string) string {
	switch {
	case title == "":
		return body
	case body == "":
		return title
	default:
		return title + "\n\n" + body
	}
}

// inferSourceKind classifies the audit principal text.
func inferSourceKind(agent string) emo.SourceKind {
	lower := strings.ToLower(agent)
	switch {
	case strings.Contains(lower, "user"):
		return emo.SourceUser
	case strings.Contains(lower, "ingest"), strings.Contains(lower, "import"):
		return emo.SourceIngest
	default:
		return emo.SourceAgent
	}
}

func mimeTypeOrDefault(mimeType string) string {
	if mimeType == "" {
		return "text/markdown"
	}
	return mimeType
}

// inferEMOType classifies a memory by shape: long or heading-structured
// content reads as a document, title keywords mark facts and profiles, and
// everything else stays a note.
func inferEMOType(p *memoryPayload) emo.Type {
	content := p.content()
	if len(content) > 1000 || strings.Contains(content, "# ") || strings.Contains(content, "## ") {
		return emo.TypeDoc
	}

	title := strings.ToLower(p.Title)
	for _, word := range []string{"fact", "definition", "rule"} {
		if strings.Contains(title, word) {
			return emo.TypeFact
		}
	}
	for _, word := range []string{"profile", "person", "contact"} {
		if strings.Contains(title, word) {
			return emo.TypeProfile
		}
	}
	return emo.TypeNote
}

// extractLinks maps the legacy link fields onto EMO links: links entries are
// external URIs, given either as bare strings or as objects with a "uri"
// member, and references are memory ids that become emo links via the same
// deterministic id derivation as the EMO itself.
func extractLinks(p *memoryPayload) []emo.Link {
	var links []emo.Link
	for _, raw := range p.Links {
		switch v := raw.(type) {
		case string:
			links = append(links, emo.Link{Kind: "uri", Ref: v})
		case map[string]interface{}:
			if uri, ok := v["uri"].(string); ok {
				links = append(links, emo.Link{Kind: "uri", Ref: uri})
			}
		}
	}
	for _, ref := range p.References {
		if ref == "" {
			continue
		}
		links = append(links, emo.Link{Kind: "emo", Ref: emo.DeriveID(ref).String()})
	}
	return links
}

// inferParents derives lineage edges from the legacy linkage fields.
func inferParents(p *memoryPayload) []emo.Parent {
	var parents []emo.Parent
	if p.ParentID != "" {
		parents = append(parents, emo.Parent{EMOID: emo.DeriveID(p.ParentID).String(), Rel: emo.RelDerived})
	}
	if p.Supersedes != "" {
		parents = append(parents, emo.Parent{EMOID: emo.DeriveID(p.Supersedes).String(), Rel: emo.RelSupersedes})
	}
	for _, merged := range p.MergedFrom {
		if merged == "" {
			continue
		}
		parents = append(parents, emo.Parent{EMOID: emo.DeriveID(merged).String(), Rel: emo.RelMerges})
	}
	return parents
}
