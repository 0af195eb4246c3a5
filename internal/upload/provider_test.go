package upload

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// MockProvider implements Provider for testing
type MockProvider struct {
	name       string
	configured bool
	uploadErr  error
	uploads    []mockUpload
}

type mockUpload struct {
	content    string
	remotePath string
}

func NewMockProvider(name string) *MockProvider {
	return &MockProvider{
		name:    name,
		uploads: []mockUpload{},
	}
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Configure(settings map[string]any) error {
	m.configured = true
	return nil
}

func (m *MockProvider) Upload(ctx context.Context, reader io.Reader, remotePath string) error {
	if m.uploadErr != nil {
		return m.uploadErr
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	m.uploads = append(m.uploads, mockUpload{
		content:    string(content),
		remotePath: remotePath,
	})
	return nil
}

func TestProviderRegistry(t *testing.T) {
	testProviderName := "test-provider"
	RegisterProvider(testProviderName, func() Provider {
		return NewMockProvider(testProviderName)
	})
	defer delete(Registry, testProviderName)

	provider, err := NewProvider(testProviderName)
	if err != nil {
		t.Fatalf("Failed to create registered provider: %v", err)
	}
	if provider.Name() != testProviderName {
		t.Errorf("Expected provider name %s, got %s", testProviderName, provider.Name())
	}

	names := Names()
	if len(names) != 2 || names[0] != "minio" || names[1] != testProviderName {
		t.Errorf("Names() = %v", names)
	}

	_, err = NewProvider("unknown-provider")
	if err == nil || !strings.Contains(err.Error(), "available") {
		t.Errorf("Expected error listing available providers, got %v", err)
	}
}

func TestObjectName(t *testing.T) {
	at := time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC)
	if got, want := ObjectName("abc", at), "2026/03/07/abc.log"; got != want {
		t.Errorf("ObjectName() = %q, want %q", got, want)
	}
}

func TestArchive(t *testing.T) {
	provider := NewMockProvider("mock")
	at := time.Date(2026, 10, 18, 3, 0, 0, 0, time.UTC)

	remote, err := Archive(context.Background(), provider, "run-1", at, []byte("transcript\n"))
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if remote != "2026/10/18/run-1.log" {
		t.Errorf("remote = %q", remote)
	}
	if len(provider.uploads) != 1 || provider.uploads[0].content != "transcript\n" || provider.uploads[0].remotePath != remote {
		t.Errorf("unexpected uploads: %+v", provider.uploads)
	}
}

func TestArchiveError(t *testing.T) {
	provider := NewMockProvider("mock")
	provider.uploadErr = errors.New("bucket unreachable")

	_, err := Archive(context.Background(), provider, "run-2", time.Now(), nil)
	if err == nil || !strings.Contains(err.Error(), "run-2") || !strings.Contains(err.Error(), "bucket unreachable") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMinioProviderName(t *testing.T) {
	provider := NewMinioProvider()
	if provider.Name() != "minio" {
		t.Errorf("Expected provider name 'minio', got %s", provider.Name())
	}
}

func TestMinioProviderEndpointScheme(t *testing.T) {
	tests := []struct {
		name           string
		endpoint       string
		explicitSecure *bool
		wantHost       string
		wantSecure     bool
	}{
		{
			name:       "http scheme",
			endpoint:   "http://localhost:9000",
			wantHost:   "localhost:9000",
			wantSecure: false,
		},
		{
			name:       "https scheme",
			endpoint:   "https://s3.amazonaws.com",
			wantHost:   "s3.amazonaws.com",
			wantSecure: true,
		},
		{
			name:       "no scheme defaults to secure",
			endpoint:   "localhost:9000",
			wantHost:   "localhost:9000",
			wantSecure: true,
		},
		{
			name:           "no scheme with explicit secure=false",
			endpoint:       "localhost:9000",
			explicitSecure: boolPtr(false),
			wantHost:       "localhost:9000",
			wantSecure:     false,
		},
		{
			name:           "http scheme overrides secure=true",
			endpoint:       "http://localhost:9000/",
			explicitSecure: boolPtr(true),
			wantHost:       "localhost:9000",
			wantSecure:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewMinioProvider()
			settings := map[string]any{
				"endpoint":     tt.endpoint,
				"access_key":   "testkey",
				"secret_key":   "testsecret",
				"bucket":       "testbucket",
				"check_bucket": false,
			}
			if tt.explicitSecure != nil {
				settings["secure"] = *tt.explicitSecure
			}

			if err := provider.Configure(settings); err != nil {
				t.Fatalf("Configure: %v", err)
			}

			endpoint := provider.client.EndpointURL()
			if endpoint.Host != tt.wantHost {
				t.Errorf("host = %q, want %q", endpoint.Host, tt.wantHost)
			}
			if gotSecure := endpoint.Scheme == "https"; gotSecure != tt.wantSecure {
				t.Errorf("secure = %v, want %v", gotSecure, tt.wantSecure)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func TestMinioProviderConfigValidation(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		errMsg   string
	}{
		{
			name:     "missing endpoint",
			settings: map[string]any{},
			errMsg:   "endpoint is required",
		},
		{
			name:     "missing access_key",
			settings: map[string]any{"endpoint": "localhost:9000"},
			errMsg:   "access_key is required",
		},
		{
			name: "missing secret_key",
			settings: map[string]any{
				"endpoint":   "localhost:9000",
				"access_key": "minioadmin",
			},
			errMsg: "secret_key is required",
		},
		{
			name: "missing bucket",
			settings: map[string]any{
				"endpoint":   "localhost:9000",
				"access_key": "minioadmin",
				"secret_key": "minioadmin",
			},
			errMsg: "bucket is required",
		},
		{
			name: "scheme without host",
			settings: map[string]any{
				"endpoint":   "http://",
				"access_key": "minioadmin",
				"secret_key": "minioadmin",
				"bucket":     "test",
			},
			errMsg: "invalid endpoint URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMinioProvider().Configure(tt.settings)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestMinioProviderObjectName(t *testing.T) {
	provider := &MinioProvider{prefix: "cron/host1"}
	if got := provider.objectName("2026/10/18/x.log"); got != "cron/host1/2026/10/18/x.log" {
		t.Errorf("objectName() = %q", got)
	}

	provider.prefix = ""
	if got := provider.objectName("a.log"); got != "a.log" {
		t.Errorf("objectName() = %q", got)
	}
}

func TestMinioProviderUploadUnconfigured(t *testing.T) {
	err := NewMinioProvider().Upload(context.Background(), strings.NewReader("x"), "x.log")
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Errorf("expected not configured error, got %v", err)
	}
}
