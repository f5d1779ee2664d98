package media

import "fmt"

// Stream is a decoded audio input: a local file with a known total duration
// and container format. Immutable once probed.
type Stream struct {
	Path       string
	DurationMs int64
	// Format is the lowercased file extension without the dot, passed to
	// the transcription engine as a format hint.
	Format string
}

// Span is a contiguous [StartMs, EndMs) sub-range of a Stream, produced by
// splitting and consumed exactly once by transcription.
type Span struct {
	Index   int
	StartMs int64
	EndMs   int64
}

// DurationMs returns the span length in milliseconds.
func (s Span) DurationMs() int64 {
	return s.EndMs - s.StartMs
}

func (s Span) String() string {
	return fmt.Sprintf("segment %d [%dms, %dms)", s.Index+1, s.StartMs, s.EndMs)
}
