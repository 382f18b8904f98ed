package footballdata

import (
	"net/http"
	"time"
)

const defaultMaxTries = 5

// RetryPolicy bounds upstream request retries. Delays are fixed per status
// class: no jitter, no exponential growth. Any status without an entry is
// treated as non-retryable.
type RetryPolicy struct {
	MaxTries int
	Delays   map[int]time.Duration
}

// DefaultRetryPolicy mirrors the provider's documented throttling: a 429
// clears after the per-minute window, a 500 is usually transient.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxTries: defaultMaxTries,
		Delays: map[int]time.Duration{
			http.StatusTooManyRequests:     60 * time.Second,
			http.StatusInternalServerError: 10 * time.Second,
		},
	}
}

// DelayFor reports the backoff for a status code and whether the status is
// retryable at all.
func (p RetryPolicy) DelayFor(status int) (time.Duration, bool) {
	delay, ok := p.Delays[status]
	return delay, ok
}

func (p RetryPolicy) normalized() RetryPolicy {
	out := p
	if out.MaxTries <= 0 {
		out.MaxTries = defaultMaxTries
	}
	if out.Delays == nil {
		out.Delays = DefaultRetryPolicy().Delays
	}
	return out
}
