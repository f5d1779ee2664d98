package cache

import "github.com/davitran/audioscribe/internal/logger"

type implCache struct {
	dir    string
	logger logger.Logger
}

// New creates an ArtifactCache backed by a flat directory of text files.
// The directory is created lazily on the first Put; its absence means an
// empty cache.
func New(dir string, log logger.Logger) ArtifactCache {
	return &implCache{
		dir:    dir,
		logger: log,
	}
}
