package publisher

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/mnemonic-nexus/mnx/pkg/envelope"
	"github.com/mnemonic-nexus/mnx/pkg/metrics"
	"github.com/mnemonic-nexus/mnx/pkg/models"
)

// Entry is one claimed outbox row.
type Entry struct {
	GlobalSeq   int64
	EventID     string
	WorldID     string
	Branch      string
	Kind        string
	Envelope    *envelope.Envelope
	PayloadHash string
	ReceivedAt  time.Time
	Attempts    int
}

// Publisher polls the outbox, claims batches under a lease, and fans events
// out to subscribers. Events for the same (world_id, branch) stream are
// routed to the same shard worker, so per-stream delivery order follows
// global_seq; streams on different shards proceed independently.
type Publisher struct {
	db        *stdsql.DB
	config    *Config
	deliverer *Deliverer
	shards    []chan *Entry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	started   bool
}

// New creates a Publisher.
func New(db *stdsql.DB, cfg *Config) *Publisher {
	return &Publisher{
		db:        db,
		config:    cfg,
		deliverer: NewDeliverer(cfg.PublisherID, cfg.DeliveryTimeout),
		stopCh:    make(chan struct{}),
	}
}

// Start spawns the shard workers, the poll loop, and the backlog gauge loop.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *Publisher) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Publisher already started, ignoring duplicate Start call", "publisher_id", p.config.PublisherID)
		return nil
	}
	if len(p.config.Subscribers) == 0 {
		return fmt.Errorf("publisher has no subscribers configured")
	}
	p.started = true

	slog.Info("Starting publisher",
		"publisher_id", p.config.PublisherID,
		"workers", p.config.WorkerCount,
		"batch_size", p.config.BatchSize,
		"subscribers", len(p.config.Subscribers))

	p.shards = make([]chan *Entry, p.config.WorkerCount)
	for i := range p.shards {
		p.shards[i] = make(chan *Entry, p.config.BatchSize)
		p.wg.Add(1)
		go p.runShard(ctx, i)
	}

	p.wg.Add(1)
	go p.runPollLoop(ctx)

	p.wg.Add(1)
	go p.runBacklogGauges(ctx)

	return nil
}

// Stop signals shutdown and waits for in-flight deliveries to finish.
// It is safe to call Stop multiple times.
func (p *Publisher) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	slog.Info("Publisher stopped", "publisher_id", p.config.PublisherID)
}

// runPollLoop claims batches and dispatches them to shard workers. It owns
// the shard channels and closes them on exit.
func (p *Publisher) runPollLoop(ctx context.Context) {
	defer p.wg.Done()
	defer func() {
		for _, ch := range p.shards {
			close(ch)
		}
	}()

	log := slog.With("publisher_id", p.config.PublisherID)
	log.Info("Publisher poll loop started")

	for {
		select {
		case <-p.stopCh:
			log.Info("Publisher poll loop shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, publisher poll loop shutting down")
			return
		default:
			claimed, err := p.pollAndDispatch(ctx)
			if err != nil {
				log.Error("Error polling outbox", "error", err)
				p.sleep(time.Second)
				continue
			}
			if claimed == 0 {
				p.sleep(p.pollInterval())
			}
		}
	}
}

// pollAndDispatch claims one batch and routes each entry to its shard.
func (p *Publisher) pollAndDispatch(ctx context.Context) (int, error) {
	entries, err := p.claimBatch(ctx)
	if err != nil {
		return 0, err
	}

	for _, entry := range entries {
		shard := p.shardFor(entry.WorldID, entry.Branch)
		select {
		case p.shards[shard] <- entry:
		case <-p.stopCh:
			return len(entries), nil
		case <-ctx.Done():
			return len(entries), nil
		}
	}
	return len(entries), nil
}

// claimBatch atomically claims the next batch of due outbox rows using
// FOR UPDATE SKIP LOCKED, extending next_retry_at as the claim lease so
// concurrent publishers skip rows already in flight.
//
// Only stream heads are claimable: a row with any unpublished predecessor
// on the same (world_id, branch) stays put until that predecessor is
// published or dead-lettered. A delivery sitting in retry backoff therefore
// blocks its successors instead of being overtaken by them, which would
// advance the subscriber watermark past the retried sequence and drop it.
func (p *Publisher) claimBatch(ctx context.Context) ([]*Entry, error) {
	rows, err := p.db.QueryContext(ctx, `
		UPDATE outbox
		SET next_retry_at = now() + make_interval(secs => $2)
		WHERE global_seq IN (
			SELECT o.global_seq FROM outbox o
			WHERE o.published_at IS NULL
			  AND (o.next_retry_at IS NULL OR o.next_retry_at <= now())
			  AND NOT EXISTS (
				SELECT 1 FROM outbox prev
				WHERE prev.world_id = o.world_id
				  AND prev.branch = o.branch
				  AND prev.published_at IS NULL
				  AND prev.global_seq < o.global_seq
			  )
			ORDER BY o.global_seq
			LIMIT $1
			FOR UPDATE OF o SKIP LOCKED
		)
		RETURNING global_seq, event_id, world_id, branch, kind, envelope, payload_hash, received_at, attempts`,
		p.config.BatchSize, p.config.ClaimLease.Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to claim outbox batch: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var (
			e      Entry
			envRaw []byte
		)
		if err := rows.Scan(&e.GlobalSeq, &e.EventID, &e.WorldID, &e.Branch, &e.Kind,
			&envRaw, &e.PayloadHash, &e.ReceivedAt, &e.Attempts); err != nil {
			return nil, fmt.Errorf("failed to scan outbox row: %w", err)
		}
		var env envelope.Envelope
		if err := json.Unmarshal(envRaw, &env); err != nil {
			return nil, fmt.Errorf("failed to decode stored envelope for seq %d: %w", e.GlobalSeq, err)
		}
		e.Envelope = &env
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// UPDATE ... RETURNING does not guarantee row order; restore sequence
	// order before dispatch so each shard sees its streams in order.
	sort.Slice(entries, func(i, j int) bool { return entries[i].GlobalSeq < entries[j].GlobalSeq })
	return entries, nil
}

// shardFor routes a stream to a shard worker.
func (p *Publisher) shardFor(worldID, branch string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(worldID))
	_, _ = h.Write([]byte("|"))
	_, _ = h.Write([]byte(branch))
	return int(h.Sum32() % uint32(len(p.shards)))
}

// runShard processes entries routed to one shard, serially.
func (p *Publisher) runShard(ctx context.Context, shard int) {
	defer p.wg.Done()

	log := slog.With("publisher_id", p.config.PublisherID, "shard", shard)
	for entry := range p.shards[shard] {
		if err := p.process(ctx, entry); err != nil {
			log.Error("Error processing outbox entry",
				"global_seq", entry.GlobalSeq, "error", err)
		}
	}
}

// process fans one event out to every subscriber and commits the aggregate
// outcome: published, retry-scheduled, or dead-lettered.
func (p *Publisher) process(ctx context.Context, e *Entry) error {
	// A corrupted payload can never deliver; quarantine instead of retrying.
	if ok, err := e.Envelope.VerifyPayloadHash(e.PayloadHash); err != nil || !ok {
		reason := "payload hash mismatch"
		if err != nil {
			reason = fmt.Sprintf("payload hash verification failed: %v", err)
		}
		return p.deadLetter(ctx, e, reason, "structural")
	}

	req := &models.ProjectorEventRequest{
		GlobalSeq:   e.GlobalSeq,
		EventID:     e.EventID,
		Envelope:    e.Envelope,
		PayloadHash: e.PayloadHash,
	}

	outcomes := make([]Outcome, len(p.config.Subscribers))
	var wg sync.WaitGroup
	for i, sub := range p.config.Subscribers {
		wg.Add(1)
		go func(i int, sub Subscriber) {
			defer wg.Done()
			outcomes[i] = p.deliverer.Deliver(ctx, sub, req)
		}(i, sub)
	}
	wg.Wait()

	var (
		structural *Outcome
		retryable  *Outcome
	)
	for i := range outcomes {
		switch outcomes[i].Kind {
		case OutcomeStructural:
			structural = &outcomes[i]
		case OutcomeRetryable:
			if retryable == nil {
				retryable = &outcomes[i]
			}
		}
	}

	switch {
	case structural != nil:
		return p.deadLetter(ctx, e, structural.String(), "structural")
	case retryable != nil:
		return p.scheduleRetry(ctx, e, retryable.String())
	default:
		return p.markPublished(ctx, e)
	}
}

func (p *Publisher) markPublished(ctx context.Context, e *Entry) error {
	_, err := p.db.ExecContext(ctx, `
		UPDATE outbox
		SET published_at = now(), last_error = NULL, next_retry_at = NULL
		WHERE global_seq = $1`, e.GlobalSeq)
	if err != nil {
		return fmt.Errorf("failed to mark seq %d published: %w", e.GlobalSeq, err)
	}
	metrics.PublishedEvents.Inc()
	return nil
}

func (p *Publisher) scheduleRetry(ctx context.Context, e *Entry, lastError string) error {
	attempts := e.Attempts + 1
	if attempts >= p.config.MaxAttempts {
		reason := fmt.Sprintf("retries exhausted after %d attempts: %s", attempts, lastError)
		return p.deadLetter(ctx, e, reason, "retries_exhausted")
	}

	delay := RetryDelay(attempts, p.config.RetryBaseDelay, p.config.RetryMaxDelay)
	_, err := p.db.ExecContext(ctx, `
		UPDATE outbox
		SET attempts = $2, last_error = $3, next_retry_at = now() + make_interval(secs => $4)
		WHERE global_seq = $1`,
		e.GlobalSeq, attempts, lastError, delay.Seconds())
	if err != nil {
		return fmt.Errorf("failed to schedule retry for seq %d: %w", e.GlobalSeq, err)
	}

	metrics.RetriedDeliveries.Inc()
	slog.Warn("Delivery failed, retry scheduled",
		"global_seq", e.GlobalSeq, "attempts", attempts, "delay", delay, "error", lastError)
	return nil
}

// deadLetter quarantines an event and terminally marks its outbox row. The
// admin requeue path reverses both.
func (p *Publisher) deadLetter(ctx context.Context, e *Entry, reason, category string) error {
	envJSON, err := json.Marshal(e.Envelope.ToMap())
	if err != nil {
		return fmt.Errorf("failed to encode envelope for DLQ: %w", err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin DLQ transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO dead_letters (global_seq, event_id, world_id, branch, kind, envelope, error, publisher_id, attempts, moved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (global_seq) DO NOTHING`,
		e.GlobalSeq, e.EventID, e.WorldID, e.Branch, e.Kind, envJSON, reason, p.config.PublisherID, e.Attempts)
	if err != nil {
		return fmt.Errorf("failed to insert dead letter for seq %d: %w", e.GlobalSeq, err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE outbox
		SET published_at = now(), last_error = $2, next_retry_at = NULL
		WHERE global_seq = $1`, e.GlobalSeq, reason)
	if err != nil {
		return fmt.Errorf("failed to close out dead-lettered seq %d: %w", e.GlobalSeq, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit DLQ move: %w", err)
	}

	metrics.DeadLetteredEvents.WithLabelValues(category).Inc()
	slog.Error("Event moved to dead letter queue",
		"global_seq", e.GlobalSeq, "event_id", e.EventID, "reason", reason, "category", category)
	return nil
}

// runBacklogGauges periodically refreshes the backlog and lag gauges.
func (p *Publisher) runBacklogGauges(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refreshBacklogGauges(ctx)
		}
	}
}

func (p *Publisher) refreshBacklogGauges(ctx context.Context) {
	var backlog int64
	var oldest stdsql.NullTime
	err := p.db.QueryRowContext(ctx, `
		SELECT COUNT(*), MIN(received_at)
		FROM outbox
		WHERE published_at IS NULL`).Scan(&backlog, &oldest)
	if err != nil {
		slog.Error("Failed to refresh backlog gauges", "error", err)
		return
	}

	metrics.OutboxBacklog.Set(float64(backlog))
	if oldest.Valid {
		metrics.PublishLagSeconds.Set(time.Since(oldest.Time).Seconds())
	} else {
		metrics.PublishLagSeconds.Set(0)
	}
}

// pollInterval returns the poll duration with jitter.
func (p *Publisher) pollInterval() time.Duration {
	jitter := p.config.PollIntervalJitter
	if jitter <= 0 {
		return p.config.PollInterval
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	interval := p.config.PollInterval - jitter + offset
	if interval < 0 {
		interval = 0
	}
	return interval
}

// sleep waits for the given duration or until stop is signalled.
func (p *Publisher) sleep(d time.Duration) {
	select {
	case <-p.stopCh:
	case <-time.After(d):
	}
}
