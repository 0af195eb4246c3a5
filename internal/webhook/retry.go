package webhook

import (
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Delay returns the wait before retry number attempt (1-based): exponential
// from InitialDelay, capped at MaxDelay, with ±10% jitter.
func (c *RetryConfig) Delay(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}

	delay := float64(c.InitialDelay) * math.Pow(c.Multiplier, float64(attempt-1))
	delay = math.Min(delay, float64(c.MaxDelay))
	delay += delay * 0.1 * (rand.Float64()*2 - 1)

	return time.Duration(delay)
}

// wait picks the delay before the next attempt. A server supplied
// Retry-After wins over the computed backoff but never exceeds MaxDelay.
func (c *RetryConfig) wait(attempt int, hint time.Duration) time.Duration {
	if hint <= 0 {
		return c.Delay(attempt)
	}
	return min(hint, c.MaxDelay)
}

func retryable(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryAfter reads a Retry-After header given either as delay-seconds or as
// an HTTP date. Missing or unparsable values yield 0.
func retryAfter(h http.Header, now time.Time) time.Duration {
	value := strings.TrimSpace(h.Get("Retry-After"))
	if value == "" {
		return 0
	}

	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}

	if at, err := http.ParseTime(value); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
