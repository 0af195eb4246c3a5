// Package routing decides which sinks receive a run's captured output.
package routing

import (
	"fmt"

	"github.com/manfredlotz/rcronic/internal/runner"
)

// Decision is the set of sinks a run's output is routed to.
type Decision int

const (
	Suppress Decision = iota
	TerminalOnly
	LogOnly
	TerminalAndLog
)

func (d Decision) String() string {
	switch d {
	case Suppress:
		return "suppress"
	case TerminalOnly:
		return "terminal"
	case LogOnly:
		return "log"
	case TerminalAndLog:
		return "terminal+log"
	default:
		return fmt.Sprintf("Decision(%d)", int(d))
	}
}

// Terminal reports whether the terminal sink is active.
func (d Decision) Terminal() bool {
	return d == TerminalOnly || d == TerminalAndLog
}

// Log reports whether the log file sink is active.
func (d Decision) Log() bool {
	return d == LogOnly || d == TerminalAndLog
}

// routes is indexed by [success][hasLog][alert].
var routes = [2][2][2]Decision{
	// failed
	{
		{TerminalOnly, TerminalOnly},
		{TerminalAndLog, TerminalAndLog},
	},
	// succeeded
	{
		{Suppress, TerminalOnly},
		{LogOnly, TerminalAndLog},
	},
}

// Decide maps the three routing inputs to a Decision. It never looks at
// captured output; any content-based alert policy is applied by the caller
// when computing alert.
func Decide(success, hasLog, alert bool) Decision {
	return routes[b2i(success)][b2i(hasLog)][b2i(alert)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Invocation describes one wrapper run.
type Invocation struct {
	Command        string
	LogDestination string
	AlertOnStderr  bool
	Policy         AlertPolicy
}

func (inv Invocation) HasLog() bool {
	return inv.LogDestination != ""
}

// Resolve computes the Decision for a finished run.
func Resolve(inv Invocation, result *runner.Result) Decision {
	alert := inv.Policy.Alert(inv.AlertOnStderr, result.Stderr)
	return Decide(result.Success, inv.HasLog(), alert)
}
