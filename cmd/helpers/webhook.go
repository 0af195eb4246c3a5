package helpers

import (
	"fmt"
	"time"

	"github.com/manfredlotz/rcronic/cmd/config"
	fileconfig "github.com/manfredlotz/rcronic/internal/config"
	"github.com/manfredlotz/rcronic/internal/webhook"
)

// BuildWebhookConfig builds webhook configuration from all sources.
// Precedence: config file section < env < file < inline < kv < direct flags
func BuildWebhookConfig(cfg *config.WebhookConfig, base map[string]any) (map[string]any, error) {
	webhookConf, err := fileconfig.Build(fileconfig.Sources{
		Base:      base,
		EnvPrefix: "RCRONIC_WEBHOOK",
		File:      cfg.ConfigFile,
		Document:  cfg.Config,
		KV:        cfg.ConfigKV,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook config: %w", err)
	}

	// Direct flags only override when moved off their defaults
	if cfg.URL != "" {
		webhookConf["url"] = cfg.URL
	}
	if cfg.Method != "" && cfg.Method != "POST" {
		webhookConf["method"] = cfg.Method
	}
	if cfg.AuthType != "" && cfg.AuthType != "none" {
		webhookConf["auth_type"] = cfg.AuthType
	}
	if cfg.AuthToken != "" {
		webhookConf["auth_token"] = cfg.AuthToken
	}
	if cfg.Timeout != "" && cfg.Timeout != "30s" {
		webhookConf["timeout"] = cfg.Timeout
	}
	if cfg.Retries != 0 {
		webhookConf["retries"] = cfg.Retries
	}
	if cfg.RetryDelay != "" && cfg.RetryDelay != "1s" {
		webhookConf["retry_delay"] = cfg.RetryDelay
	}

	return webhookConf, nil
}

// ParseWebhookConfigToInternal converts the merged settings into webhook client
// configuration. It returns nil configs when no URL is configured.
func ParseWebhookConfigToInternal(cfg *config.WebhookConfig, base map[string]any) (*webhook.Config, *webhook.RetryConfig, error) {
	configMap, err := BuildWebhookConfig(cfg, base)
	if err != nil {
		return nil, nil, err
	}

	url := fileconfig.StringDefault(configMap, "url", "")
	if url == "" {
		return nil, nil, nil
	}

	timeout, err := parseDuration(configMap, "timeout", 30*time.Second)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid webhook timeout duration: %w", err)
	}

	retryDelay, err := parseDuration(configMap, "retry_delay", 1*time.Second)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid webhook retry delay: %w", err)
	}

	retries := fileconfig.Int(configMap, "retries", 0)
	if retries < 0 {
		return nil, nil, fmt.Errorf("webhook retries must not be negative")
	}

	webhookConfig := &webhook.Config{
		URL:       url,
		Method:    fileconfig.StringDefault(configMap, "method", "POST"),
		Timeout:   timeout,
		AuthType:  fileconfig.StringDefault(configMap, "auth_type", "none"),
		AuthToken: fileconfig.StringDefault(configMap, "auth_token", ""),
	}

	if headers, ok := configMap["headers"].(map[string]any); ok {
		webhookConfig.Headers = make(map[string]string, len(headers))
		for k, v := range headers {
			webhookConfig.Headers[k] = fmt.Sprint(v)
		}
	}

	retryConfig := &webhook.RetryConfig{
		MaxRetries:   retries,
		InitialDelay: retryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	return webhookConfig, retryConfig, nil
}

func parseDuration(values map[string]any, key string, def time.Duration) (time.Duration, error) {
	raw := fileconfig.StringDefault(values, key, "")
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return d, nil
}
