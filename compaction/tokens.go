package compaction

import (
	"math"

	"github.com/youssefsiam38/agentcontext"
)

// EstimatedTokens prices a slice of items as ceil(chars/4) over the
// text blocks of its messages. Non-text blocks and non-message items
// contribute zero. The estimate is deterministic, monotone under
// append, and commutative over slice concatenation; the candidate
// selection budget is denominated in it, so it must not be refined
// silently. Saturates instead of overflowing.
func EstimatedTokens(items []agentcontext.TranscriptItem) int {
	chars := 0
	for _, item := range items {
		if item.Type != agentcontext.ItemTypeMessage {
			continue
		}
		for _, block := range item.Content {
			if block.IsText() {
				chars = saturatingAdd(chars, len(block.Text))
			}
		}
	}
	if chars > math.MaxInt-3 {
		return math.MaxInt / 4
	}
	return (chars + 3) / 4
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
