package helpers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manfredlotz/rcronic/cmd/config"
	fileconfig "github.com/manfredlotz/rcronic/internal/config"
	"github.com/manfredlotz/rcronic/internal/routing"
)

// Options is the resolved configuration of one wrapper run
type Options struct {
	Invocation routing.Invocation
	Shell      string
	Summary    bool
	Verbose    bool
}

// ValidateWrapperFlags checks the flags that must be set on every run
func ValidateWrapperFlags(flags *config.WrapperFlags) error {
	if flags.Command == "" {
		return fmt.Errorf("required flag 'command' not set")
	}
	return nil
}

// ResolveOptions merges config file defaults with the flags explicitly set on cmd.
// Flags always win.
func ResolveOptions(cmd *cobra.Command, flags *config.WrapperFlags, file *fileconfig.Config) (*Options, error) {
	changed := cmd.Flags().Changed

	logfile := file.Logfile
	if changed("logfile") {
		logfile = flags.Logfile
	}

	alertOnStderr := file.Stderr
	if changed("stderr") {
		alertOnStderr = flags.Stderr
	}

	policyName := file.AlertPolicy
	if changed("alert-policy") {
		policyName = flags.AlertPolicy
	}
	policy, err := routing.ParseAlertPolicy(policyName)
	if err != nil {
		return nil, err
	}

	shell := file.Shell
	if changed("shell") {
		shell = flags.Shell
	}

	summary := file.Summary
	if changed("summary") {
		summary = flags.Summary
	}

	verbose := file.Verbose
	if changed("verbose") {
		verbose = flags.Verbose
	}

	return &Options{
		Invocation: routing.Invocation{
			Command:        flags.Command,
			LogDestination: logfile,
			AlertOnStderr:  alertOnStderr,
			Policy:         policy,
		},
		Shell:   shell,
		Summary: summary,
		Verbose: verbose,
	}, nil
}
