package pipeline

import (
	"context"

	"github.com/davitran/audioscribe/internal/logger"
)

// Phase names reported to the progress sink.
const (
	PhaseTranscription = "transcription"
	PhaseSummarization = "summarization"
)

// Sink receives per-unit progress during the transcription and
// summarization phases. Purely observational; it never affects control flow.
type Sink interface {
	Step(phase string, index, total int)
	Done(phase string)
}

type logSink struct {
	logger logger.Logger
}

// NewLogSink returns a Sink that reports progress through the logger.
func NewLogSink(log logger.Logger) Sink {
	return &logSink{logger: log}
}

func (s *logSink) Step(phase string, index, total int) {
	s.logger.Info(context.Background(), "%s: %d of %d...", phase, index, total)
}

func (s *logSink) Done(phase string) {
	s.logger.Info(context.Background(), "%s complete.", phase)
}
