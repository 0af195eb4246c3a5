// Package emit writes a run's captured output into the sinks chosen by a
// routing decision.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/manfredlotz/rcronic/internal/routing"
	"github.com/manfredlotz/rcronic/internal/runner"
)

// Entry is one line of output with its severity.
type Entry struct {
	Level slog.Level
	Line  string
}

type Emitter struct {
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time

	// Summary wraps alerting output in a WARN header and footer line.
	Summary bool
}

// Emit builds exactly the sinks named by decision and writes the result into
// each of them. A failing sink does not stop the other one; all failures are
// returned joined.
func (e *Emitter) Emit(decision routing.Decision, result *runner.Result, logDestination string) error {
	if decision == routing.Suppress {
		return nil
	}

	entries := Entries(result, e.Summary && decision.Terminal())

	var errs []error
	if decision.Terminal() {
		if err := writeAll(NewTerminalSink(e.Stdout, e.Stderr), entries); err != nil {
			errs = append(errs, fmt.Errorf("terminal: %w", err))
		}
	}

	if decision.Log() {
		sink, err := OpenFileSink(logDestination, e.Now)
		if err != nil {
			errs = append(errs, err)
		} else if err := writeAll(sink, entries); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Transcript renders the run in log file format, summary lines included.
func (e *Emitter) Transcript(result *runner.Result) []byte {
	now := e.Now
	if now == nil {
		now = time.Now
	}

	var buf bytes.Buffer
	for _, entry := range Entries(result, true) {
		buf.Write(formatLine(now(), entry.Level, entry.Line))
	}
	return buf.Bytes()
}

// Entries lists stdout lines at INFO followed by stderr lines at ERROR,
// optionally framed by the WARN summary lines.
func Entries(result *runner.Result, summary bool) []Entry {
	var entries []Entry

	var footer string
	if summary {
		var header string
		header, footer = runner.Describe(result)
		entries = append(entries, Entry{Level: slog.LevelWarn, Line: header})
	}

	for _, line := range Lines(result.Stdout) {
		entries = append(entries, Entry{Level: slog.LevelInfo, Line: line})
	}
	for _, line := range Lines(result.Stderr) {
		entries = append(entries, Entry{Level: slog.LevelError, Line: line})
	}

	if summary {
		entries = append(entries, Entry{Level: slog.LevelWarn, Line: footer})
	}
	return entries
}

func writeAll(sink Sink, entries []Entry) error {
	var writeErr error
	for _, entry := range entries {
		if writeErr = sink.Write(entry.Level, entry.Line); writeErr != nil {
			break
		}
	}
	return errors.Join(writeErr, sink.Close())
}
