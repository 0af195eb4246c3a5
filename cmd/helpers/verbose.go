package helpers

import (
	"fmt"
	"io"

	"github.com/manfredlotz/rcronic/internal/routing"
	"github.com/manfredlotz/rcronic/internal/runner"
)

// PrintRunInfo prints how a run was routed, for --verbose
func PrintRunInfo(w io.Writer, runID string, opts *Options, decision routing.Decision, result *runner.Result) {
	inv := opts.Invocation

	logfile := inv.LogDestination
	if logfile == "" {
		logfile = "(none)"
	}
	shell := opts.Shell
	if shell == "" {
		shell = runner.DefaultShell
	}

	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "rcronic run %s\n", runID)
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "Command:  %s\n", inv.Command)
	fmt.Fprintf(w, "Shell:    %s\n", shell)
	fmt.Fprintf(w, "Logfile:  %s\n", logfile)
	fmt.Fprintf(w, "Alert:    stderr=%t policy=%s\n", inv.AlertOnStderr, inv.Policy)
	fmt.Fprintf(w, "Status:   %s (exit %d) in %ss\n", result.Status, result.ExitCode, runner.Seconds(result.ExecutionTime))
	fmt.Fprintf(w, "Decision: %s\n", decision)
	fmt.Fprintln(w, "----------------------------------------")
}
