package compaction

import (
	"strings"

	"github.com/youssefsiam38/agentcontext"
)

// Marker prefixes recognized by the classifier. Matching is
// case-sensitive and applies only to text blocks of message items.
const (
	// SummaryPrefix marks an injected summary/memory block that must
	// not be summarized again.
	SummaryPrefix = "[memory:"

	// EphemeralPrefix marks transient status items (screenshots,
	// progress markers) that are filtered before summarization.
	EphemeralPrefix = "[EPHEMERAL:"
)

// IsUserMessage reports whether item is a message authored by the user.
func IsUserMessage(item agentcontext.TranscriptItem) bool {
	return item.Type == agentcontext.ItemTypeMessage && item.Role == agentcontext.RoleUser
}

// IsSummaryItem reports whether item is a summary/injected memory
// block that should not be summarized again: a message with any text
// block starting with SummaryPrefix.
func IsSummaryItem(item agentcontext.TranscriptItem) bool {
	return anyTextBlockHasPrefix(item, SummaryPrefix)
}

// IsEphemeralItem reports whether item is an ephemeral status marker
// message: any text block starting with EphemeralPrefix.
func IsEphemeralItem(item agentcontext.TranscriptItem) bool {
	return anyTextBlockHasPrefix(item, EphemeralPrefix)
}

func anyTextBlockHasPrefix(item agentcontext.TranscriptItem, prefix string) bool {
	if item.Type != agentcontext.ItemTypeMessage {
		return false
	}
	for _, block := range item.Content {
		if block.IsText() && strings.HasPrefix(block.Text, prefix) {
			return true
		}
	}
	return false
}
