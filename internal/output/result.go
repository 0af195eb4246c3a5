package output

import (
	"strings"
	"time"

	"github.com/manfredlotz/rcronic/internal/routing"
	"github.com/manfredlotz/rcronic/internal/runner"
)

// Alert is the webhook body sent when a run reaches the terminal.
type Alert struct {
	RunID         string    `json:"run_id"`
	Host          string    `json:"host,omitempty"`
	Command       string    `json:"command"`
	Status        string    `json:"status"`
	Decision      string    `json:"decision"`
	ExitCode      int       `json:"exit_code"`
	ExecutionTime int64     `json:"execution_time"`
	Stdout        string    `json:"stdout"`
	Stderr        string    `json:"stderr"`
	Timestamp     time.Time `json:"timestamp"`
	Archive       string    `json:"archive,omitempty"` // remote transcript path, if uploaded
}

// NewAlert builds the payload for one run.
func NewAlert(runID, host string, decision routing.Decision, result *runner.Result, at time.Time) *Alert {
	return &Alert{
		RunID:         runID,
		Host:          host,
		Command:       result.Command,
		Status:        string(result.Status),
		Decision:      decision.String(),
		ExitCode:      result.ExitCode,
		ExecutionTime: result.ExecutionTime,
		Stdout:        strings.ToValidUTF8(string(result.Stdout), "\uFFFD"),
		Stderr:        strings.ToValidUTF8(string(result.Stderr), "\uFFFD"),
		Timestamp:     at,
	}
}
