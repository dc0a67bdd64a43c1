// Package publisher implements the CDC publisher: it polls the transactional
// outbox, fans events out to projector endpoints over HTTP, and quarantines
// events that exhaust their retry budget.
package publisher

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Subscriber is one downstream projector endpoint.
type Subscriber struct {
	Name string
	URL  string
}

// Config contains publisher tuning. Defaults suit a single-node deployment;
// the claim lease makes concurrent publishers safe.
type Config struct {
	// PublisherID identifies this instance in delivery headers and DLQ rows.
	PublisherID string

	// BatchSize is the maximum number of outbox rows claimed per poll.
	BatchSize int

	// WorkerCount is the number of shard workers. Events are routed to
	// shards by stream hash so per-stream delivery order is preserved.
	WorkerCount int

	// PollInterval is the base interval between outbox polls.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration

	// ClaimLease is how long a claimed row stays invisible to other
	// publishers before it becomes claimable again.
	ClaimLease time.Duration

	// DeliveryTimeout bounds a single HTTP delivery attempt.
	DeliveryTimeout time.Duration

	// MaxAttempts is the retry budget before an event moves to the DLQ.
	MaxAttempts int

	// RetryBaseDelay and RetryMaxDelay bound the exponential backoff.
	RetryBaseDelay time.Duration
	RetryMaxDelay  time.Duration

	// Subscribers are the projector endpoints to fan out to.
	Subscribers []Subscriber
}

// DefaultConfig returns the built-in publisher defaults.
func DefaultConfig() *Config {
	host, _ := os.Hostname()
	if host == "" {
		host = "publisher"
	}
	return &Config{
		PublisherID:        host,
		BatchSize:          50,
		WorkerCount:        4,
		PollInterval:       1 * time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
		ClaimLease:         30 * time.Second,
		DeliveryTimeout:    5 * time.Second,
		MaxAttempts:        10,
		RetryBaseDelay:     1 * time.Second,
		RetryMaxDelay:      1 * time.Hour,
	}
}

// LoadConfigFromEnv loads publisher configuration from environment
// variables, falling back to defaults. Subscribers come from
// PUBLISHER_SUBSCRIBERS as "name=url,name=url".
func LoadConfigFromEnv() (*Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("PUBLISHER_ID"); v != "" {
		cfg.PublisherID = v
	}
	if v := os.Getenv("PUBLISHER_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid PUBLISHER_BATCH_SIZE: %q", v)
		}
		cfg.BatchSize = n
	}
	if v := os.Getenv("PUBLISHER_WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid PUBLISHER_WORKER_COUNT: %q", v)
		}
		cfg.WorkerCount = n
	}
	if v := os.Getenv("PUBLISHER_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid PUBLISHER_MAX_ATTEMPTS: %q", v)
		}
		cfg.MaxAttempts = n
	}

	for env, target := range map[string]*time.Duration{
		"PUBLISHER_POLL_INTERVAL":    &cfg.PollInterval,
		"PUBLISHER_CLAIM_LEASE":      &cfg.ClaimLease,
		"PUBLISHER_DELIVERY_TIMEOUT": &cfg.DeliveryTimeout,
		"PUBLISHER_RETRY_BASE_DELAY": &cfg.RetryBaseDelay,
		"PUBLISHER_RETRY_MAX_DELAY":  &cfg.RetryMaxDelay,
	} {
		if v := os.Getenv(env); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %q", env, v)
			}
			*target = d
		}
	}

	if v := os.Getenv("PUBLISHER_SUBSCRIBERS"); v != "" {
		subs, err := parseSubscribers(v)
		if err != nil {
			return nil, err
		}
		cfg.Subscribers = subs
	}

	return cfg, nil
}

func parseSubscribers(raw string) ([]Subscriber, error) {
	var subs []Subscriber
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, url, found := strings.Cut(part, "=")
		if !found || name == "" || url == "" {
			return nil, fmt.Errorf("invalid subscriber entry %q (want name=url)", part)
		}
		subs = append(subs, Subscriber{Name: name, URL: url})
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("PUBLISHER_SUBSCRIBERS contained no subscribers")
	}
	return subs, nil
}
