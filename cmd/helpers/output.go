package helpers

import (
	"context"
	"fmt"
	"io"

	"github.com/manfredlotz/rcronic/internal/output"
	"github.com/manfredlotz/rcronic/internal/webhook"
)

// NotifyWebhook posts the alert to the configured webhook. A nil config is a no-op.
func NotifyWebhook(ctx context.Context, config *webhook.Config, retryConfig *webhook.RetryConfig, alert *output.Alert, verbose bool, diag io.Writer) error {
	if config == nil || config.URL == "" {
		return nil
	}

	if verbose {
		fmt.Fprintf(diag, "[WEBHOOK] Sending to %s\n", config.URL)
	}

	client := webhook.NewClient(config, retryConfig, verbose)
	client.SetDiagnostics(diag)
	if err := client.Notify(ctx, alert); err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	return nil
}
