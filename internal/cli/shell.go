package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/staffbook/internal/config"
	"github.com/roach88/staffbook/internal/directory"
	"github.com/roach88/staffbook/internal/logging"
	"github.com/roach88/staffbook/internal/session"
	"github.com/roach88/staffbook/internal/shell"
)

// NewShellCommand creates the shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu",
		Long: `Start the interactive employee menu on stdin/stdout.

The directory starts empty and is discarded on exit. Confirmation prompts
accept the configured token (default "yes", case-insensitive); any other
answer cancels the change.

Example:
  staffbook shell
  staffbook shell --config ./staffbook.yaml --verbose`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(rootOpts, cmd)
		},
	}
}

func runShell(opts *RootOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigPath, opts.EnvFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}

	level := cfg.Log.Level
	if opts.Verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{
		Level:  level,
		File:   cfg.Log.File,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create logger", err)
	}
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("error closing log file")
		}
	}()

	sessions := opts.Sessions
	if sessions == nil {
		sessions = session.UUIDv7Generator{}
	}

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	ctx = logging.WithSession(ctx, logger.Logger, sessions.Generate())

	var dirOpts []directory.Option
	if cfg.Shell.AllowDuplicateIDs {
		dirOpts = append(dirOpts, directory.WithDuplicateIDs())
	}
	sh := shell.New(cmd.InOrStdin(), cmd.OutOrStdout(), directory.New(dirOpts...), shell.Options{
		ConfirmToken:  cfg.Shell.ConfirmToken,
		HeaderSpacing: cfg.Shell.HeaderSpacing,
	})

	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return WrapExitError(ExitFailure, "shell error", err)
	}
	return nil
}
