package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"psync/internal/log"
	"psync/internal/pathsyncer"
	"psync/internal/settings"
	"psync/pkg/helpers/run"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	var stgErr *settings.Error
	switch {
	case err == nil:
		return 0
	case errors.As(err, &stgErr):
		return 2
	default:
		return 1
	}
}

func newRootCmd() *cobra.Command {
	stg := settings.Default()
	cmd := &cobra.Command{
		Use:   "psync [flags] <source> <dest>",
		Short: "Copy a file or a directory tree to another place",
		Long: `psync copies the source path (a file or a directory tree) to the destination path.

Every source file that passes the filters is copied, changed or not.
Destination entries that are absent from the source are kept; a file is only
removed when a directory has to take its place, and vice versa.

Examples:
  psync ./site /var/www/site
  psync -s assets/img -s index.html ./site /var/www/site
  psync -i node_modules -x '*.log' ./app /backup/app`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := stg.SetPaths(args); err != nil {
				return err
			}
			return runSync(cmd.Context(), stg, cmd.OutOrStdout())
		},
	}
	settings.AddFlags(cmd.Flags(), stg)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &settings.Error{Err: err}
	})
	return cmd
}

func runSync(ctx context.Context, stg *settings.Settings, out io.Writer) error {
	logger, err := log.New(stg.LogLevel, stg.LogToStd, stg.LogFile)
	if err != nil {
		return fmt.Errorf("cannot create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	progress := out
	if stg.Quiet {
		progress = io.Discard
	}
	syncer, err := pathsyncer.New(stg.Source, stg.Dest, stg.SyncPaths, stg.IgnorePaths,
		pathsyncer.WithExcludes(stg.Excludes),
		pathsyncer.WithLogger(logger),
		pathsyncer.WithProgress(progress),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("sync started", log.String("source", stg.Source), log.String("dest", stg.Dest))
	errCh := run.AsyncWithError(func() error { return syncer.Sync(ctx) })
	select {
	case err = <-errCh:
	case <-ctx.Done():
		stop() // a second interruption kills the process
		logger.Warn("interrupted, waiting for the current entry to finish")
		err = <-errCh
	}
	if err != nil {
		logger.Error("sync failed", log.Cause(err))
		return err
	}
	logger.Info("sync finished")
	return nil
}
