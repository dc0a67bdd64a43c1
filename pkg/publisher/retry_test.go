package publisher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryDelay_ExponentialWithCap(t *testing.T) {
	base := 1 * time.Second
	max := 1 * time.Hour

	tests := []struct {
		name     string
		attempts int
		floor    time.Duration
	}{
		{"first retry", 0, 1 * time.Second},
		{"second retry", 1, 2 * time.Second},
		{"fifth retry", 4, 16 * time.Second},
		{"deep retry hits the cap", 20, 1 * time.Hour},
		{"negative attempts treated as zero", -3, 1 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := RetryDelay(tt.attempts, base, max)
			assert.GreaterOrEqual(t, d, tt.floor)
			// Jitter adds at most 10% of the capped delay.
			ceiling := tt.floor + time.Duration(float64(tt.floor)*retryJitterFraction)
			assert.LessOrEqual(t, d, ceiling)
		})
	}
}

func TestRetryDelay_Jittered(t *testing.T) {
	// With a 10% jitter window the odds of 50 identical draws are negligible.
	seen := map[time.Duration]bool{}
	for i := 0; i < 50; i++ {
		seen[RetryDelay(5, time.Second, time.Hour)] = true
	}
	assert.Greater(t, len(seen), 1)
}
