package helpers

import (
	"github.com/spf13/cobra"

	"github.com/manfredlotz/rcronic/cmd/config"
)

// SetupWrapperFlags adds the core wrapper flags to a command
func SetupWrapperFlags(cmd *cobra.Command, flags *config.WrapperFlags) {
	cmd.Flags().StringVarP(&flags.Command, "command", "c", "", "Command to execute (required)")
	cmd.Flags().StringVarP(&flags.Logfile, "logfile", "l", "", "Append output to this log file")
	cmd.Flags().BoolVarP(&flags.Stderr, "stderr", "e", false, "Trigger output when stderr is not empty")
	cmd.Flags().StringVar(&flags.ConfigPath, "config", "", "Path to YAML config file (default $RCRONIC_CONFIG)")
	cmd.Flags().StringVar(&flags.Shell, "shell", "", "Shell used to interpret the command (default sh)")
	cmd.Flags().StringVar(&flags.AlertPolicy, "alert-policy", "", "How --stderr triggers output: flag, stderr-output (default flag)")
	cmd.Flags().BoolVarP(&flags.Summary, "summary", "s", false, "Frame alerting output with header and exit status lines")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print run diagnostics to stderr")
}

// SetupUploadFlags adds upload-related flags to a command
func SetupUploadFlags(cmd *cobra.Command, cfg *config.UploadConfig) {
	cmd.Flags().StringVar(&cfg.Provider, "upload-provider", "", "Archive alerting runs with this upload provider (e.g., minio)")
	cmd.Flags().StringVar(&cfg.Config, "upload-config", "", "Upload configuration as YAML/JSON string")
	cmd.Flags().StringArrayVar(&cfg.ConfigKV, "upload-config-kv", nil, "Upload config key=value pairs (can be used multiple times)")
	cmd.Flags().StringVar(&cfg.ConfigFile, "upload-config-file", "", "Path to YAML/JSON file containing upload configuration")
}

// SetupWebhookFlags adds webhook-related flags to a command
func SetupWebhookFlags(cmd *cobra.Command, cfg *config.WebhookConfig) {
	cmd.Flags().StringVar(&cfg.URL, "webhook-url", "", "Webhook URL notified when a run alerts")
	cmd.Flags().StringVar(&cfg.Method, "webhook-method", "POST", "HTTP method to use: GET, POST, PUT, PATCH, DELETE")
	cmd.Flags().StringVar(&cfg.AuthType, "webhook-auth-type", "none", "Authentication type: none, bearer, api-key")
	cmd.Flags().StringVar(&cfg.AuthToken, "webhook-auth-token", "", "Authentication token (use with --webhook-auth-type)")
	cmd.Flags().IntVar(&cfg.Retries, "webhook-retries", 0, "Webhook retry attempts (0 = send once)")
	cmd.Flags().StringVar(&cfg.RetryDelay, "webhook-retry-delay", "1s", "Initial delay between webhook retries")
	cmd.Flags().StringVar(&cfg.Timeout, "webhook-timeout", "30s", "Total timeout for webhook including retries")

	cmd.Flags().StringVar(&cfg.Config, "webhook-config", "", "Webhook configuration as YAML/JSON string")
	cmd.Flags().StringArrayVar(&cfg.ConfigKV, "webhook-config-kv", nil, "Webhook config key=value pairs (can be used multiple times)")
	cmd.Flags().StringVar(&cfg.ConfigFile, "webhook-config-file", "", "Path to YAML/JSON file containing webhook configuration")
}
