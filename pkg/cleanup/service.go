// Package cleanup provides data retention for the publisher pipeline.
package cleanup

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mnemonic-nexus/mnx/pkg/database"
)

// Config tunes the retention loop.
type Config struct {
	// OutboxRetention is how long published outbox rows are kept before
	// pruning. Dead-lettered rows are exempt: the admin requeue path needs
	// their outbox row to restore them.
	OutboxRetention time.Duration

	// TagCountsRefresh toggles the periodic refresh of the tag-count
	// materialized view.
	TagCountsRefresh bool

	// Interval is the pause between retention sweeps.
	Interval time.Duration
}

// DefaultConfig returns the built-in retention defaults.
func DefaultConfig() *Config {
	return &Config{
		OutboxRetention:  7 * 24 * time.Hour,
		TagCountsRefresh: true,
		Interval:         time.Hour,
	}
}

// LoadConfigFromEnv loads retention configuration from environment
// variables, falling back to defaults.
func LoadConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	for env, target := range map[string]*time.Duration{
		"CLEANUP_OUTBOX_RETENTION": &cfg.OutboxRetention,
		"CLEANUP_INTERVAL":         &cfg.Interval,
	} {
		if v := os.Getenv(env); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("invalid %s: %q", env, v)
			}
			*target = d
		}
	}

	if v := os.Getenv("CLEANUP_TAG_COUNTS_REFRESH"); v != "" {
		cfg.TagCountsRefresh = v == "true" || v == "1"
	}

	return cfg, nil
}

// Service periodically enforces retention policies:
//   - Prunes published outbox rows past their retention window
//   - Refreshes the tag-count materialized view
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	db     *stdsql.DB
	config *Config

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(db *stdsql.DB, cfg *Config) *Service {
	return &Service{db: db, config: cfg}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"outbox_retention", s.config.OutboxRetention,
		"tag_counts_refresh", s.config.TagCountsRefresh,
		"interval", s.config.Interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.pruneOutbox(ctx)
	if s.config.TagCountsRefresh {
		s.refreshTagCounts(ctx)
	}
}

// pruneOutbox deletes published rows past retention. The event_log row
// stays; the log is the permanent record, the outbox only feeds delivery.
func (s *Service) pruneOutbox(ctx context.Context) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM outbox o
		WHERE o.published_at IS NOT NULL
		  AND o.published_at < now() - make_interval(secs => $1)
		  AND NOT EXISTS (SELECT 1 FROM dead_letters d WHERE d.global_seq = o.global_seq)`,
		s.config.OutboxRetention.Seconds())
	if err != nil {
		slog.Error("Retention: outbox prune failed", "error", err)
		return
	}
	count, _ := res.RowsAffected()
	if count > 0 {
		slog.Info("Retention: pruned published outbox rows", "count", count)
	}
}

func (s *Service) refreshTagCounts(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := database.RefreshTagCounts(refreshCtx, s.db); err != nil {
		slog.Error("Retention: tag count refresh failed", "error", err)
	}
}
