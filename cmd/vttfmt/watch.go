package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/interview-transcript/internal/config"
	"github.com/nguyentantai21042004/interview-transcript/internal/processor"
	"github.com/nguyentantai21042004/interview-transcript/internal/watcher"
	"github.com/nguyentantai21042004/interview-transcript/internal/writer"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Format .vtt files as they appear in paths.input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, a)
		},
	}
}

func runWatch(cmd *cobra.Command, a *app) error {
	interviewer, err := a.cfg.RequireInterviewer()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := ensureDirectories(a.cfg); err != nil {
		return err
	}

	w, err := writer.New(a.cfg.Output.Format)
	if err != nil {
		return err
	}
	proc := processor.New(a.cfg, w, a.log, a.progress(cmd))

	wt, err := watcher.New(a.cfg.Paths.Input, proc.Process, a.log, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer wt.Stop()

	a.log.Info(ctx, "Transcript watcher is ready")
	a.log.Info(ctx, "Interviewer: %s", interviewer)
	a.log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
	a.log.Info(ctx, "Output: %s (%s)", a.cfg.Paths.Output, a.cfg.Output.Format)
	a.log.Info(ctx, "Press Ctrl+C to stop")

	if err := wt.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher: %w", err)
	}

	a.log.Info(ctx, "Transcript watcher stopped")
	return nil
}

// ensureDirectories creates the watched and output directories if missing
func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
