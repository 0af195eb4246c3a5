package helpers

import (
	"context"
	"fmt"
	"io"
	"maps"
	"time"

	"github.com/manfredlotz/rcronic/cmd/config"
	fileconfig "github.com/manfredlotz/rcronic/internal/config"
	"github.com/manfredlotz/rcronic/internal/upload"
)

// BuildUploadConfig builds upload configuration from all sources
func BuildUploadConfig(cfg *config.UploadConfig, base map[string]any) (map[string]any, error) {
	result, err := fileconfig.Build(fileconfig.Sources{
		Base:      base,
		EnvPrefix: "RCRONIC_UPLOAD_CONFIG",
		File:      cfg.ConfigFile,
		Document:  cfg.Config,
		KV:        cfg.ConfigKV,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build upload config: %w", err)
	}
	return result, nil
}

// SetupUploadProvider creates and configures an upload provider. The provider
// name comes from --upload-provider or the "provider" key of the config file
// section. It returns a nil provider when none is configured.
func SetupUploadProvider(cfg *config.UploadConfig, base map[string]any) (upload.Provider, map[string]any, error) {
	name := cfg.Provider
	if name == "" {
		name = fileconfig.StringDefault(base, "provider", "")
	}
	if name == "" {
		return nil, nil, nil
	}

	section := maps.Clone(base)
	delete(section, "provider")

	uploadConf, err := BuildUploadConfig(cfg, section)
	if err != nil {
		return nil, nil, err
	}

	provider, err := upload.NewProvider(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create upload provider: %w", err)
	}

	if err := provider.Configure(uploadConf); err != nil {
		return nil, nil, fmt.Errorf("failed to configure upload provider: %w", err)
	}

	return provider, uploadConf, nil
}

// ArchiveRun uploads the transcript of an alerting run and returns its remote path
func ArchiveRun(ctx context.Context, provider upload.Provider, runID string, at time.Time, transcript []byte, verbose bool, diag io.Writer) (string, error) {
	remotePath, err := upload.Archive(ctx, provider, runID, at, transcript)
	if err != nil {
		return "", err
	}

	if verbose {
		fmt.Fprintf(diag, "[UPLOAD] Archived transcript to %s:%s\n", provider.Name(), remotePath)
	}
	return remotePath, nil
}
