package emit

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var fixedTime = time.Date(2026, 10, 18, 3, 0, 0, 0, time.UTC)

func fixedNow() time.Time {
	return fixedTime
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(content)
}

func TestTerminalSink(t *testing.T) {
	var out, errOut bytes.Buffer
	sink := NewTerminalSink(&out, &errOut)

	if err := sink.Write(slog.LevelInfo, "from stdout"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sink.Write(slog.LevelWarn, "summary"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sink.Write(slog.LevelError, "from stderr"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := out.String(), "[INFO] from stdout\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if got, want := errOut.String(), "[WARN] summary\n[ERROR] from stderr\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "j.log")
	if err := os.WriteFile(path, []byte("existing line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, line := range []string{"first", "second"} {
		sink, err := OpenFileSink(path, fixedNow)
		if err != nil {
			t.Fatalf("OpenFileSink: %v", err)
		}
		if err := sink.Write(slog.LevelInfo, line); err != nil {
			t.Fatalf("Write: %v", err)
		}
		if err := sink.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}

	want := "existing line\n" +
		"2026-10-18T03:00:00Z [INFO] first\n" +
		"2026-10-18T03:00:00Z [INFO] second\n"
	if got := readFile(t, path); got != want {
		t.Errorf("log content mismatch\ngot:  %q\nwant: %q", got, want)
	}
}

func TestFileSinkCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.log")

	sink, err := OpenFileSink(path, fixedNow)
	if err != nil {
		t.Fatalf("OpenFileSink: %v", err)
	}
	if err := sink.Write(slog.LevelError, "boom"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got, want := readFile(t, path), "2026-10-18T03:00:00Z [ERROR] boom\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOpenFileSinkErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing directory", path: filepath.Join(t.TempDir(), "missing", "j.log")},
		{name: "directory as file", path: t.TempDir()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OpenFileSink(tt.path, fixedNow)
			if err == nil {
				t.Fatal("expected error")
			}
			var openErr *SinkOpenError
			if !errors.As(err, &openErr) {
				t.Fatalf("expected *SinkOpenError, got %T", err)
			}
			if openErr.Path != tt.path {
				t.Errorf("Path = %q, want %q", openErr.Path, tt.path)
			}
		})
	}
}

func TestFileSinkDevNull(t *testing.T) {
	if _, err := os.Stat(os.DevNull); err != nil {
		t.Skip("no null device")
	}

	sink, err := OpenFileSink(os.DevNull, fixedNow)
	if err != nil {
		t.Fatalf("OpenFileSink: %v", err)
	}
	if err := sink.Write(slog.LevelInfo, "discarded"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
