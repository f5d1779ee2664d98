package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davitran/audioscribe/internal/cache"
)

var rootCmd = &cobra.Command{
	Use:   "audioscribe [audio file]",
	Short: "Transcribe, summarize and interactively query long audio recordings",
	Long: `audioscribe transcribes a long audio recording, condenses it into a
summary, and then answers your questions about the content interactively.

Both the transcript and the summary are cached, keyed by the audio file's
content, so re-running on the same recording skips the expensive work.

Examples:
  audioscribe meeting.mp3               # run the pipeline and ask questions
  audioscribe --clear-cache             # destroy the artifact cache and exit
  audioscribe --debug meeting.mp3       # verbose engine diagnostics`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

var (
	flagConfig     string
	flagDebug      bool
	flagClearCache bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable verbose diagnostics")
	rootCmd.Flags().BoolVar(&flagClearCache, "clear-cache", false, "Destroy the entire artifact cache and exit")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadApp()
	if err != nil {
		return err
	}

	ctx := context.Background()

	if flagClearCache {
		if err := cache.New(cfg.Cache.Dir, log).ClearAll(); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		log.Info(ctx, "Cache cleared: %s", cfg.Cache.Dir)
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("an audio file is required (or --clear-cache)")
	}

	p, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}
	return p.Run(ctx, args[0])
}
