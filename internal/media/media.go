package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Probe reads the audio file's total duration via ffprobe and derives the
// format hint from the file extension.
func (m *implMedia) Probe(ctx context.Context, path string) (Stream, error) {
	// ffprobe arguments:
	// -v error: only print real errors
	// -show_entries format=duration: duration in seconds
	// -of default=noprint_wrappers=1:nokey=1: bare value output
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := m.executor.Execute(ctx, m.cfg.ProbeBinary, args...)
	if err != nil {
		return Stream{}, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return Stream{}, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}

	stream := Stream{
		Path:       path,
		DurationMs: int64(seconds * 1000),
		Format:     formatHint(path),
	}

	m.logger.Debug(ctx, "Probed %s: %dms, format %q", path, stream.DurationMs, stream.Format)
	return stream, nil
}

// ExportSpan cuts one span of the stream into a standalone audio file in the
// stream's own container format and returns its path. The caller removes the
// file once the segment has been consumed.
func (m *implMedia) ExportSpan(ctx context.Context, stream Stream, span Span, destDir string) (string, error) {
	name := fmt.Sprintf("segment_%d.%s", span.Index+1, stream.Format)
	out := filepath.Join(destDir, name)

	// -ss/-t take seconds; keep millisecond precision with fractions.
	args := []string{
		"-y",
		"-i", stream.Path,
		"-ss", msToSeconds(span.StartMs),
		"-t", msToSeconds(span.DurationMs()),
		out,
	}

	if _, err := m.executor.Execute(ctx, m.cfg.Binary, args...); err != nil {
		return "", fmt.Errorf("ffmpeg export %s: %w", span, err)
	}

	m.logger.Debug(ctx, "Exported %s to %s", span, out)
	return out, nil
}

func msToSeconds(ms int64) string {
	return strconv.FormatFloat(float64(ms)/1000.0, 'f', 3, 64)
}

func formatHint(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
