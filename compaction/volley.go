package compaction

import (
	"github.com/youssefsiam38/agentcontext"
)

// Volley is a half-open index range [Start, End) into a transcript.
// A volley starts at a user message and includes subsequent items
// until the next user message; leading items before the first user
// message form a prelude volley.
type Volley struct {
	Start int
	End   int
}

// Len returns the number of items the volley spans.
func (v Volley) Len() int {
	return v.End - v.Start
}

// SegmentIntoVolleys partitions a transcript into volley ranges.
// When the transcript is non-empty the result is a contiguous
// partition of [0, len): ranges never overlap and never skip items.
// A transcript without user messages yields a single range covering
// everything; an empty transcript yields nil.
func SegmentIntoVolleys(items []agentcontext.TranscriptItem) []Volley {
	var starts []int
	for idx, item := range items {
		if IsUserMessage(item) {
			starts = append(starts, idx)
		}
	}

	if len(starts) == 0 {
		if len(items) == 0 {
			return nil
		}
		return []Volley{{Start: 0, End: len(items)}}
	}

	var out []Volley
	if starts[0] > 0 {
		out = append(out, Volley{Start: 0, End: starts[0]})
	}
	for i, s := range starts {
		e := len(items)
		if i+1 < len(starts) {
			e = starts[i+1]
		}
		out = append(out, Volley{Start: s, End: e})
	}
	return out
}
