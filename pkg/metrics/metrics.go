// Package metrics defines the Prometheus collectors shared across the
// gateway, publisher, and projector runtime.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsAppended counts durably committed appends, by event kind.
	EventsAppended = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mnx_gateway_events_appended_total",
		Help: "Events durably appended to the log",
	}, []string{"kind"})

	// IdempotentReplays counts appends short-circuited by an idempotency key.
	IdempotentReplays = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mnx_gateway_idempotent_replays_total",
		Help: "Appends that returned a previously accepted event",
	})

	// AppendDuration observes the append transaction latency.
	AppendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mnx_gateway_append_duration_seconds",
		Help:    "Latency of the append transaction",
		Buckets: prometheus.DefBuckets,
	})

	// PublishedEvents counts events fully fanned out to all subscribers.
	PublishedEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mnx_publisher_published_total",
		Help: "Outbox entries marked published",
	})

	// RetriedDeliveries counts retry-scheduled delivery failures.
	RetriedDeliveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mnx_publisher_retries_total",
		Help: "Deliveries that failed and were scheduled for retry",
	})

	// DeadLetteredEvents counts events moved to the DLQ, by reason.
	DeadLetteredEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mnx_publisher_dead_lettered_total",
		Help: "Events quarantined in the dead letter queue",
	}, []string{"reason"})

	// OutboxBacklog tracks unpublished outbox rows.
	OutboxBacklog = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mnx_publisher_outbox_backlog",
		Help: "Unpublished outbox entries",
	})

	// PublishLagSeconds tracks age of the oldest unpublished entry.
	PublishLagSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mnx_publisher_lag_seconds",
		Help: "Age of the oldest unpublished outbox entry",
	})

	// ProjectorApplied counts applied events per projector.
	ProjectorApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mnx_projector_applied_total",
		Help: "Events applied by projectors",
	}, []string{"projector"})

	// ProjectorDuplicates counts watermark-gated duplicate deliveries.
	ProjectorDuplicates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mnx_projector_duplicates_total",
		Help: "Deliveries acknowledged as already processed",
	}, []string{"projector"})

	// ProjectorApplyDuration observes per-event apply latency.
	ProjectorApplyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mnx_projector_apply_duration_seconds",
		Help:    "Latency of a single projector apply transaction",
		Buckets: prometheus.DefBuckets,
	}, []string{"projector"})

	// WatermarkSeq tracks each projector's committed watermark.
	WatermarkSeq = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "mnx_projector_watermark_seq",
		Help: "Last processed global sequence per projector and stream",
	}, []string{"projector", "world_id", "branch"})

	// TranslatedEvents counts memory events translated to EMO events.
	TranslatedEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mnx_translator_translated_total",
		Help: "Memory events translated to EMO events",
	}, []string{"kind"})
)
