package engine

import (
	"context"
	"io"
)

// Transcriber converts one audio segment into text. The name carries the
// segment's file name (and thus its extension); formatHint is the container
// format derived from the original file's extension, which the engine may
// need for raw formats.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader, name, formatHint string) (string, error)
}

// Summarizer condenses one transcript chunk. maxChars is an instruction to
// the engine, not a mechanically enforced limit.
type Summarizer interface {
	Summarize(ctx context.Context, chunk string, maxChars int) (string, error)
}

// Answerer answers a free-form question given the summary as fixed context.
// Each call is stateless; no conversation memory is carried across questions.
type Answerer interface {
	Answer(ctx context.Context, summaryContext, question string) (string, error)
}
