package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/manfredlotz/rcronic/internal/output"
)

// Client posts run alerts to a webhook endpoint.
type Client struct {
	httpClient  *http.Client
	config      *Config
	retryConfig *RetryConfig
	verbose     bool
	diag        io.Writer
}

// NewClient creates a new webhook client
func NewClient(config *Config, retryConfig *RetryConfig, verbose bool) *Client {
	if config.Method == "" {
		config.Method = http.MethodPost
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if retryConfig == nil {
		retryConfig = DefaultRetryConfig()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second, // per request
		},
		config:      config,
		retryConfig: retryConfig,
		verbose:     verbose,
		diag:        os.Stderr,
	}
}

// SetDiagnostics redirects verbose [WEBHOOK] lines, which go to os.Stderr by default.
func (c *Client) SetDiagnostics(w io.Writer) {
	c.diag = w
}

// Notify sends the alert, retrying only if the retry config allows it.
func (c *Client) Notify(ctx context.Context, alert *output.Alert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var lastErr error
	var hint time.Duration
	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryConfig.wait(attempt, hint)
			c.logf("Retry %d/%d after %v", attempt, c.retryConfig.MaxRetries, delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("webhook timeout after %d attempts: %w", attempt, ctx.Err())
			}
		}

		var statusCode int
		statusCode, hint, err = c.post(ctx, alert.RunID, body)
		if err == nil && statusCode >= 200 && statusCode < 300 {
			c.logf("Delivered run %s (status: %d)", alert.RunID, statusCode)
			return nil
		}

		if err != nil {
			lastErr = fmt.Errorf("attempt %d failed: %w", attempt+1, err)
		} else {
			lastErr = fmt.Errorf("attempt %d failed with status %d", attempt+1, statusCode)
		}

		if statusCode > 0 && !retryable(statusCode) {
			c.logf("Non-retryable status %d, giving up", statusCode)
			return lastErr
		}
	}

	if c.retryConfig.MaxRetries == 0 {
		return lastErr
	}
	return fmt.Errorf("webhook failed after %d attempts: %w", c.retryConfig.MaxRetries+1, lastErr)
}

// post sends one request and returns the status code and any Retry-After hint.
func (c *Client) post(ctx context.Context, runID string, body []byte) (int, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, c.config.Method, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return 0, 0, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "rcronic")
	req.Header.Set("X-Rcronic-Run-Id", runID)
	for k, v := range c.config.Headers {
		req.Header.Set(k, v)
	}

	switch c.config.AuthType {
	case "bearer":
		req.Header.Set("Authorization", "Bearer "+c.config.AuthToken)
	case "api-key":
		req.Header.Set("X-API-Key", c.config.AuthToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, retryAfter(resp.Header, time.Now()), nil
}

func (c *Client) logf(format string, args ...any) {
	if c.verbose {
		fmt.Fprintf(c.diag, "[WEBHOOK] "+format+"\n", args...)
	}
}
