package emit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"
	"time"
)

// Sink is a destination for emitted lines.
type Sink interface {
	Write(level slog.Level, line string) error
	Close() error
}

// SinkOpenError reports that the log destination could not be opened for appending.
type SinkOpenError struct {
	Path string
	Err  error
}

func (e *SinkOpenError) Error() string {
	return fmt.Sprintf("failed to open log file %s: %v", e.Path, e.Err)
}

func (e *SinkOpenError) Unwrap() error {
	return e.Err
}

// TerminalSink writes info lines to Out and everything more severe to Err.
type TerminalSink struct {
	Out io.Writer
	Err io.Writer
}

func NewTerminalSink(out, err io.Writer) *TerminalSink {
	return &TerminalSink{Out: out, Err: err}
}

func (s *TerminalSink) Write(level slog.Level, line string) error {
	w := s.Out
	if level >= slog.LevelWarn {
		w = s.Err
	}
	_, err := fmt.Fprintf(w, "[%s] %s\n", level, line)
	return err
}

func (s *TerminalSink) Close() error {
	return nil
}

// FileSink appends timestamped lines to a log file.
type FileSink struct {
	file *os.File
	now  func() time.Time
}

// OpenFileSink opens path for appending, creating it if needed. An existing
// file is never truncated.
func OpenFileSink(path string, now func() time.Time) (*FileSink, error) {
	if path == "" {
		return nil, &SinkOpenError{Path: path, Err: fmt.Errorf("empty path")}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, &SinkOpenError{Path: path, Err: err}
	}

	if now == nil {
		now = time.Now
	}
	return &FileSink{file: file, now: now}, nil
}

// Write issues each line as a single write so concurrent appenders
// to the same file never split a line.
func (s *FileSink) Write(level slog.Level, line string) error {
	if _, err := s.file.Write(formatLine(s.now(), level, line)); err != nil {
		return fmt.Errorf("failed to write to log file %s: %w", s.file.Name(), err)
	}
	return nil
}

// Close flushes the file to disk and closes it.
func (s *FileSink) Close() error {
	syncErr := s.file.Sync()
	// Character devices such as /dev/null cannot be synced
	if errors.Is(syncErr, syscall.EINVAL) {
		syncErr = nil
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file %s: %w", s.file.Name(), err)
	}
	if syncErr != nil {
		return fmt.Errorf("failed to sync log file %s: %w", s.file.Name(), syncErr)
	}
	return nil
}

func formatLine(t time.Time, level slog.Level, line string) []byte {
	return []byte(fmt.Sprintf("%s [%s] %s\n", t.Format(time.RFC3339), level, line))
}
