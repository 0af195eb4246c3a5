package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manfredlotz/rcronic/cmd/config"
	"github.com/manfredlotz/rcronic/cmd/helpers"
)

// NewRootCmd builds the rcronic command with fresh flag state.
func NewRootCmd() *cobra.Command {
	w := &wrapper{}

	rootCmd := &cobra.Command{
		Use:   "rcronic -c <command> [-l <logfile>] [-e]",
		Short: "Run a cron job quietly on success and loudly on failure",
		Long: `rcronic runs a single shell command, captures its stdout and stderr and
decides where the output goes: nowhere on a quiet success, to the terminal on
failure, and to an append-only log file whenever one is configured.

The exit status of rcronic reflects only its own faults (the command could not
be started, the log file could not be written); a failing job is reported
through its output, not through rcronic's exit code.`,
		Example: `  rcronic -c "backup.sh --full"
  rcronic -c "certbot renew" -l /var/log/cron/certbot.log
  rcronic -c "rsync -a /src /dst 2>&1 | grep -v skipping" -e -l /var/log/cron/rsync.log`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         w.run,
	}

	helpers.SetupWrapperFlags(rootCmd, &w.flags)
	helpers.SetupWebhookFlags(rootCmd, &w.webhook)
	helpers.SetupUploadFlags(rootCmd, &w.upload)

	return rootCmd
}

type wrapper struct {
	flags   config.WrapperFlags
	webhook config.WebhookConfig
	upload  config.UploadConfig
}

func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
