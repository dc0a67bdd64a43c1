package publisher

import (
	"math/rand/v2"
	"time"
)

// retryJitterFraction is the upper bound of the uniform jitter applied to
// each backoff delay, as a fraction of the capped delay.
const retryJitterFraction = 0.10

// RetryDelay returns the backoff delay before attempt n+1, given n prior
// failed attempts: base*2^n capped at max, plus uniform jitter so a burst of
// failures does not retry in lockstep.
func RetryDelay(attempts int, base, max time.Duration) time.Duration {
	if attempts < 0 {
		attempts = 0
	}

	delay := base
	for i := 0; i < attempts; i++ {
		delay *= 2
		if delay >= max {
			delay = max
			break
		}
	}
	if delay > max {
		delay = max
	}

	jitterCap := time.Duration(float64(delay) * retryJitterFraction)
	if jitterCap > 0 {
		delay += time.Duration(rand.Int64N(int64(jitterCap)))
	}
	return delay
}
