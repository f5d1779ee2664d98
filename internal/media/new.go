package media

import (
	"github.com/davitran/audioscribe/internal/config"
	"github.com/davitran/audioscribe/internal/logger"
	"github.com/davitran/audioscribe/pkg/executor"
)

type implMedia struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Media instance backed by the ffmpeg/ffprobe binaries.
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Media {
	return &implMedia{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
