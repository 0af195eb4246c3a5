package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultShell interprets the command string when Config.Shell is empty.
const DefaultShell = "sh"

// Status is the coarse outcome of the wrapped command.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

type Config struct {
	Command string
	Shell   string
}

type Result struct {
	Command       string
	Status        Status
	Success       bool
	ExitCode      int
	Stdout        []byte
	Stderr        []byte
	ExecutionTime int64 // milliseconds
}

// SpawnError reports that the shell could not be started at all.
// A non-zero exit of the wrapped command is never a SpawnError.
type SpawnError struct {
	Shell string
	Err   error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start command via %s: %v", e.Shell, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Execute runs config.Command through the shell and blocks until it exits.
// The command string is handed to the shell verbatim.
func Execute(config *Config) (*Result, error) {
	if config.Command == "" {
		return nil, fmt.Errorf("no command specified")
	}

	shell := config.Shell
	if shell == "" {
		shell = DefaultShell
	}

	cmd := exec.Command(shell, "-c", config.Command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	startTime := time.Now()
	err := cmd.Run()
	executionTime := time.Since(startTime).Milliseconds()

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &SpawnError{Shell: shell, Err: err}
		}
		// -1 when the child was terminated by a signal
		exitCode = exitErr.ExitCode()
	}

	status := StatusSuccess
	if exitCode != 0 {
		status = StatusFailed
	}

	return &Result{
		Command:       config.Command,
		Status:        status,
		Success:       exitCode == 0,
		ExitCode:      exitCode,
		Stdout:        stdout.Bytes(),
		Stderr:        stderr.Bytes(),
		ExecutionTime: executionTime,
	}, nil
}
