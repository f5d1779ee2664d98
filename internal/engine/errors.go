package engine

import "fmt"

// TranscriptionError marks an engine failure on a single audio segment. The
// transcription phase aborts without caching anything.
type TranscriptionError struct {
	Segment int // 1-based
	Total   int
	Err     error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribe segment %d of %d: %v", e.Segment, e.Total, e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// SummarizationError marks an engine failure on a single transcript chunk.
// The summarization phase aborts without caching anything.
type SummarizationError struct {
	Chunk int // 1-based
	Total int
	Err   error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarize chunk %d of %d: %v", e.Chunk, e.Total, e.Err)
}

func (e *SummarizationError) Unwrap() error { return e.Err }

// QueryError marks an engine failure answering one question. It is surfaced
// for that question only; the interactive loop continues.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("answer question: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
