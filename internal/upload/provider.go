package upload

import (
	"context"
	"io"
)

// Provider stores run transcripts remotely.
type Provider interface {
	// Upload uploads content from reader to the remote path
	Upload(ctx context.Context, reader io.Reader, remotePath string) error

	// Configure sets up the provider with the given settings
	Configure(settings map[string]any) error

	Name() string
}
