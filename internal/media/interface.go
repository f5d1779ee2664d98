package media

import "context"

// Media probes audio files and exports time-bounded segments of them.
type Media interface {
	Probe(ctx context.Context, path string) (Stream, error)
	ExportSpan(ctx context.Context, stream Stream, span Span, destDir string) (string, error)
}
