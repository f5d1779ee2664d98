package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davitran/audioscribe/internal/engine"
	"github.com/davitran/audioscribe/internal/media"
)

// transcribeAll invokes the transcriber once per span, strictly in temporal
// order, and joins the results with single spaces. It runs to completion
// before anything is cached: a failure on any segment aborts the phase and
// leaves no partial transcript behind.
func (p *implPipeline) transcribeAll(ctx context.Context, stream media.Stream, spans []media.Span) (string, error) {
	total := len(spans)

	workDir, err := os.MkdirTemp("", "audioscribe-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	parts := make([]string, 0, total)
	for i, span := range spans {
		p.deps.Progress.Step(PhaseTranscription, i+1, total)

		text, err := p.transcribeSpan(ctx, stream, span, workDir)
		if err != nil {
			return "", &engine.TranscriptionError{Segment: i + 1, Total: total, Err: err}
		}

		parts = append(parts, text)
	}

	p.deps.Progress.Done(PhaseTranscription)
	return strings.Join(parts, " "), nil
}

// transcribeSpan exports one span to a standalone segment file and sends it
// to the engine. The segment file is consumed exactly once and removed.
func (p *implPipeline) transcribeSpan(ctx context.Context, stream media.Stream, span media.Span, workDir string) (string, error) {
	segPath, err := p.deps.Media.ExportSpan(ctx, stream, span, workDir)
	if err != nil {
		return "", err
	}
	defer p.removeSegment(ctx, segPath)

	f, err := os.Open(segPath)
	if err != nil {
		return "", fmt.Errorf("open segment %s: %w", segPath, err)
	}
	defer f.Close()

	return p.deps.Transcriber.Transcribe(ctx, f, filepath.Base(segPath), stream.Format)
}

func (p *implPipeline) removeSegment(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		p.deps.Logger.Warn(ctx, "Failed to remove segment file %s: %v", path, err)
	}
}
