package cli

import (
	"fmt"
	"os"

	"github.com/davitran/audioscribe/internal/cache"
	"github.com/davitran/audioscribe/internal/config"
	"github.com/davitran/audioscribe/internal/engine"
	"github.com/davitran/audioscribe/internal/logger"
	"github.com/davitran/audioscribe/internal/media"
	"github.com/davitran/audioscribe/internal/pipeline"
	"github.com/davitran/audioscribe/pkg/executor"
)

// loadApp loads configuration and builds the logger, honoring --debug.
func loadApp() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logging.Level
	if flagDebug {
		level = "debug"
	}

	return cfg, logger.New(level), nil
}

// buildPipeline wires the orchestrator from the configured provider.
// Transcription always goes through Whisper; the gemini provider swaps the
// summarization and question-answering engines only.
func buildPipeline(cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	if err := cfg.ValidateSecrets(); err != nil {
		return nil, err
	}

	exec := executor.New()
	m := media.New(cfg.FFmpeg, exec, log)

	openAI := engine.NewOpenAI(cfg.OpenAI, log)

	var (
		summarizer engine.Summarizer = openAI
		answerer   engine.Answerer   = openAI
	)
	if cfg.Provider == "gemini" {
		gemini := engine.NewGemini(cfg.Gemini, log)
		summarizer = gemini
		answerer = gemini
	}

	p := pipeline.New(cfg.Pipeline, pipeline.Deps{
		Media:       m,
		Transcriber: openAI,
		Summarizer:  summarizer,
		Answerer:    answerer,
		Cache:       cache.New(cfg.Cache.Dir, log),
		Logger:      log,
		Progress:    pipeline.NewLogSink(log),
		Input:       os.Stdin,
		Output:      os.Stdout,
	})
	return p, nil
}
