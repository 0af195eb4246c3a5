package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rcronic.yaml")
	content := `logfile: /var/log/cron/jobs.log
stderr: true
shell: /bin/bash
alert_policy: stderr-output
summary: true
webhook:
  url: http://hooks.local/cron
  auth_type: bearer
upload:
  provider: minio
  bucket: cron-logs
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Logfile != "/var/log/cron/jobs.log" {
		t.Errorf("Logfile = %q", cfg.Logfile)
	}
	if !cfg.Stderr || !cfg.Summary || cfg.Verbose {
		t.Errorf("booleans mismatch: %+v", cfg)
	}
	if cfg.Shell != "/bin/bash" || cfg.AlertPolicy != "stderr-output" {
		t.Errorf("Shell/AlertPolicy mismatch: %+v", cfg)
	}
	if cfg.Webhook["url"] != "http://hooks.local/cron" || cfg.Webhook["auth_type"] != "bearer" {
		t.Errorf("Webhook = %#v", cfg.Webhook)
	}
	if cfg.Upload["provider"] != "minio" || cfg.Upload["bucket"] != "cron-logs" {
		t.Errorf("Upload = %#v", cfg.Upload)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rcronic.yaml")
	if err := os.WriteFile(path, []byte("logfile: /tmp/from-env.log\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logfile != "/tmp/from-env.log" {
		t.Errorf("Logfile = %q", cfg.Logfile)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logfile != "" || cfg.Stderr || cfg.Webhook != nil {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("stderr: [not a bool"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.yaml"), bad} {
		if _, err := Load(path); err == nil {
			t.Errorf("Load(%s): expected error", path)
		}
	}
}
