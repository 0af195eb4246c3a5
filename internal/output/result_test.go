package output

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/manfredlotz/rcronic/internal/routing"
	"github.com/manfredlotz/rcronic/internal/runner"
)

func TestNewAlert(t *testing.T) {
	at := time.Date(2026, 10, 18, 3, 0, 0, 0, time.UTC)
	result := &runner.Result{
		Command:       "backup.sh",
		Status:        runner.StatusFailed,
		ExitCode:      3,
		ExecutionTime: 1200,
		Stdout:        []byte("copied\n"),
		Stderr:        []byte("disk \xff full\n"),
	}

	alert := NewAlert("run-1", "cronhost", routing.TerminalAndLog, result, at)

	if alert.Decision != "terminal+log" || alert.Status != "failed" || alert.ExitCode != 3 {
		t.Errorf("unexpected alert: %+v", alert)
	}
	if alert.Stderr != "disk \uFFFD full\n" {
		t.Errorf("Stderr = %q", alert.Stderr)
	}

	data, err := json.Marshal(alert)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if fields["run_id"] != "run-1" || fields["host"] != "cronhost" {
		t.Errorf("unexpected fields: %v", fields)
	}
	if _, ok := fields["archive"]; ok {
		t.Errorf("archive should be omitted when empty")
	}
}
