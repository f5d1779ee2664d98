package pipeline

import "context"

// Pipeline drives an audio recording through fingerprinting, cached
// transcription, cached summarization and the interactive question loop.
type Pipeline interface {
	// Run executes the full pipeline on one audio file, ending in the
	// interactive query loop.
	Run(ctx context.Context, audioPath string) error

	// Prepare executes the non-interactive part only: it returns the
	// transcript and summary for the file, computing and caching whatever
	// is not cached yet.
	Prepare(ctx context.Context, audioPath string) (transcript, summary string, err error)
}
