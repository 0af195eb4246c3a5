package config

// WrapperFlags holds the flags that shape a single wrapped run
type WrapperFlags struct {
	Command     string
	Logfile     string
	Stderr      bool
	ConfigPath  string
	Shell       string
	AlertPolicy string
	Summary     bool
	Verbose     bool
}

// UploadConfig holds upload-related flags
type UploadConfig struct {
	Provider   string
	Config     string
	ConfigKV   []string
	ConfigFile string
}

// WebhookConfig holds webhook-related flags
type WebhookConfig struct {
	// Direct configuration flags
	URL        string
	Method     string // HTTP method (GET, POST, PUT, PATCH, DELETE)
	AuthType   string
	AuthToken  string
	Timeout    string
	Retries    int
	RetryDelay string

	// Alternative configuration methods
	Config     string   // inline YAML/JSON configuration
	ConfigKV   []string // Key-value pairs
	ConfigFile string   // Path to YAML/JSON config file
}
