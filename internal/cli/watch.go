package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davitran/audioscribe/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a drop directory and pre-compute artifacts for new recordings",
	Long: `watch monitors a directory for new audio files and runs the
non-interactive part of the pipeline on each one, so the transcript and
summary are already cached when you come back to ask questions.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

var flagWatchDir string

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&flagWatchDir, "dir", "", "Drop directory to watch (overrides watch.input_dir)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadApp()
	if err != nil {
		return err
	}

	dir := cfg.Watch.InputDir
	if flagWatchDir != "" {
		dir = flagWatchDir
	}
	if dir == "" {
		return fmt.Errorf("a drop directory is required (--dir or watch.input_dir)")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create watch directory %s: %w", dir, err)
	}

	p, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}

	handler := func(ctx context.Context, audioPath string) error {
		_, _, err := p.Prepare(ctx, audioPath)
		return err
	}

	w, err := watcher.New(dir, handler, log, cfg.Watch.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}
