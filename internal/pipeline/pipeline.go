package pipeline

import (
	"context"
	"fmt"

	"github.com/davitran/audioscribe/internal/cache"
	"github.com/davitran/audioscribe/internal/hash"
	"github.com/davitran/audioscribe/internal/segment"
)

// Run executes the full pipeline: fingerprint, transcript, summary, then the
// interactive query loop.
func (p *implPipeline) Run(ctx context.Context, audioPath string) error {
	_, summary, err := p.Prepare(ctx, audioPath)
	if err != nil {
		return err
	}

	return p.queryLoop(ctx, summary)
}

// Prepare computes (or loads) the transcript and summary artifacts for the
// file. The fingerprint is computed once; each artifact is looked up before
// the expensive work runs, and stored only after its phase completed fully.
func (p *implPipeline) Prepare(ctx context.Context, audioPath string) (string, string, error) {
	fingerprint, err := hash.FingerprintFile(audioPath)
	if err != nil {
		return "", "", fmt.Errorf("fingerprint %s: %w", audioPath, err)
	}
	p.deps.Logger.Debug(ctx, "Fingerprint: %s", fingerprint)

	transcript, err := p.transcript(ctx, audioPath, fingerprint)
	if err != nil {
		return "", "", err
	}

	summary, err := p.summary(ctx, fingerprint, transcript)
	if err != nil {
		return "", "", err
	}

	return transcript, summary, nil
}

// transcript resolves the transcript artifact: cache hit loads it, a miss
// splits the audio and transcribes every segment in order before caching.
func (p *implPipeline) transcript(ctx context.Context, audioPath, fingerprint string) (string, error) {
	cached, ok, err := p.deps.Cache.Get(fingerprint, cache.KindTranscript)
	if err != nil {
		return "", err
	}
	if ok {
		p.deps.Logger.Info(ctx, "Using cached transcription.")
		return cached, nil
	}

	stream, err := p.deps.Media.Probe(ctx, audioPath)
	if err != nil {
		return "", err
	}

	spans := segment.SplitAudio(stream, p.cfg.SegmentMs)
	transcript, err := p.transcribeAll(ctx, stream, spans)
	if err != nil {
		return "", err
	}

	if err := p.deps.Cache.Put(fingerprint, cache.KindTranscript, transcript); err != nil {
		return "", err
	}

	return transcript, nil
}

// summary resolves the summary artifact: cache hit loads it, a miss chunks
// the transcript and summarizes every chunk in order before caching. The
// summary is always derived from the transcript of the same fingerprint.
func (p *implPipeline) summary(ctx context.Context, fingerprint, transcript string) (string, error) {
	cached, ok, err := p.deps.Cache.Get(fingerprint, cache.KindSummary)
	if err != nil {
		return "", err
	}
	if ok {
		p.deps.Logger.Info(ctx, "Using cached summary.")
		return cached, nil
	}

	chunks := segment.SplitTranscript(transcript, p.cfg.ChunkWords)
	summary, err := p.summarizeAll(ctx, chunks)
	if err != nil {
		return "", err
	}

	if err := p.deps.Cache.Put(fingerprint, cache.KindSummary, summary); err != nil {
		return "", err
	}

	return summary, nil
}
