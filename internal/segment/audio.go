package segment

import "github.com/davitran/audioscribe/internal/media"

// SplitAudio partitions [0, stream.DurationMs) into consecutive,
// non-overlapping spans of segmentMs milliseconds in temporal order. The
// last span is shorter when the duration does not divide evenly. A
// zero-duration stream yields no spans.
func SplitAudio(stream media.Stream, segmentMs int64) []media.Span {
	var spans []media.Span

	for start := int64(0); start < stream.DurationMs; start += segmentMs {
		end := start + segmentMs
		if end > stream.DurationMs {
			end = stream.DurationMs
		}
		spans = append(spans, media.Span{
			Index:   len(spans),
			StartMs: start,
			EndMs:   end,
		})
	}

	return spans
}
