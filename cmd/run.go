package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/manfredlotz/rcronic/cmd/helpers"
	fileconfig "github.com/manfredlotz/rcronic/internal/config"
	"github.com/manfredlotz/rcronic/internal/emit"
	"github.com/manfredlotz/rcronic/internal/output"
	"github.com/manfredlotz/rcronic/internal/routing"
	"github.com/manfredlotz/rcronic/internal/runner"
)

func (w *wrapper) run(cmd *cobra.Command, args []string) error {
	if cmd.Flags().NFlag() == 0 {
		return cmd.Help()
	}

	if err := helpers.ValidateWrapperFlags(&w.flags); err != nil {
		return err
	}

	fileCfg, err := fileconfig.Load(w.flags.ConfigPath)
	if err != nil {
		return err
	}

	opts, err := helpers.ResolveOptions(cmd, &w.flags, fileCfg)
	if err != nil {
		return err
	}

	webhookConfig, retryConfig, err := helpers.ParseWebhookConfigToInternal(&w.webhook, fileCfg.Webhook)
	if err != nil {
		return err
	}

	provider, _, err := helpers.SetupUploadProvider(&w.upload, fileCfg.Upload)
	if err != nil {
		return err
	}

	result, err := runner.Execute(&runner.Config{
		Command: opts.Invocation.Command,
		Shell:   opts.Shell,
	})
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	decision := routing.Resolve(opts.Invocation, result)
	diag := cmd.ErrOrStderr()

	if opts.Verbose {
		helpers.PrintRunInfo(diag, runID, opts, decision, result)
	}

	emitter := &emit.Emitter{
		Stdout:  cmd.OutOrStdout(),
		Stderr:  diag,
		Now:     time.Now,
		Summary: opts.Summary,
	}

	var errs []error
	if err := emitter.Emit(decision, result, opts.Invocation.LogDestination); err != nil {
		errs = append(errs, err)
	}

	// Only alerting runs are archived and announced
	if decision.Terminal() && (provider != nil || webhookConfig != nil) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		now := time.Now()
		host, _ := os.Hostname()
		alert := output.NewAlert(runID, host, decision, result, now)

		if provider != nil {
			remote, err := helpers.ArchiveRun(ctx, provider, runID, now, emitter.Transcript(result), opts.Verbose, diag)
			if err != nil {
				errs = append(errs, err)
			} else {
				alert.Archive = remote
			}
		}

		if err := helpers.NotifyWebhook(ctx, webhookConfig, retryConfig, alert, opts.Verbose, diag); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
