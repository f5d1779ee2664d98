package pipeline

import (
	"context"
	"strings"

	"github.com/davitran/audioscribe/internal/engine"
)

// summarizeAll invokes the summarizer once per chunk in order, trims each
// result and joins them with single spaces. Chunks are summarized
// independently with no cross-chunk context, so the result is a
// concatenation of partial summaries rather than one globally coherent
// summary. A failure on any chunk aborts the phase with nothing cached.
func (p *implPipeline) summarizeAll(ctx context.Context, chunks []string) (string, error) {
	total := len(chunks)

	parts := make([]string, 0, total)
	for i, chunk := range chunks {
		p.deps.Progress.Step(PhaseSummarization, i+1, total)

		summary, err := p.deps.Summarizer.Summarize(ctx, chunk, p.cfg.SummaryMaxChars)
		if err != nil {
			return "", &engine.SummarizationError{Chunk: i + 1, Total: total, Err: err}
		}

		parts = append(parts, strings.TrimSpace(summary))
	}

	p.deps.Progress.Done(PhaseSummarization)
	return strings.Join(parts, " "), nil
}
