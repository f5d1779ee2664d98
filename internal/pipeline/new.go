package pipeline

import (
	"io"

	"github.com/davitran/audioscribe/internal/cache"
	"github.com/davitran/audioscribe/internal/config"
	"github.com/davitran/audioscribe/internal/engine"
	"github.com/davitran/audioscribe/internal/logger"
	"github.com/davitran/audioscribe/internal/media"
)

// Deps bundles the collaborators the orchestrator is composed from. All
// engines are injected so tests can substitute deterministic fakes.
type Deps struct {
	Media       media.Media
	Transcriber engine.Transcriber
	Summarizer  engine.Summarizer
	Answerer    engine.Answerer
	Cache       cache.ArtifactCache
	Logger      logger.Logger
	Progress    Sink

	// Input and Output carry the interactive query loop.
	Input  io.Reader
	Output io.Writer
}

type implPipeline struct {
	cfg  config.PipelineConfig
	deps Deps
}

// New creates a Pipeline instance.
func New(cfg config.PipelineConfig, deps Deps) Pipeline {
	if deps.Progress == nil {
		deps.Progress = NewLogSink(deps.Logger)
	}
	return &implPipeline{
		cfg:  cfg,
		deps: deps,
	}
}
