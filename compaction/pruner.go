package compaction

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/youssefsiam38/agentcontext"
)

// Logger interface for compaction logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a no-op implementation of Logger.
type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}

// SummaryStore persists produced summaries. The memory package
// provides JSONL and Postgres implementations.
type SummaryStore interface {
	Append(repoKey string, sessionID uuid.UUID, title, text string, msgIDs []string) error
}

// Pruner summarizes the portion of a transcript that is about to be
// pruned and then prunes it, keeping only the last KeepLast message
// items.
type Pruner struct {
	keepLast int
	logger   Logger
}

// NewPruner creates a pruner that retains keepLast trailing messages.
// logger may be nil.
func NewPruner(keepLast int, logger Logger) *Pruner {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Pruner{keepLast: keepLast, logger: logger}
}

// SummarizeThenPrune summarizes the prefix that will be dropped,
// appends the summary to store (best effort), and truncates history to
// its last KeepLast messages. Returns the summary, or nil when the
// transcript was already short enough.
func (p *Pruner) SummarizeThenPrune(
	history *agentcontext.Transcript,
	summarizer Summarizer,
	store SummaryStore,
	repoKey string,
	sessionID uuid.UUID,
) (*Summary, error) {
	items := history.Contents()
	if len(items) <= p.keepLast {
		return nil, nil
	}

	cutoff := len(items) - p.keepLast
	summary, err := summarizer.Summarize(items[:cutoff])
	if err != nil {
		return nil, err
	}

	if summary != nil && store != nil {
		if err := store.Append(repoKey, sessionID, summary.Title, summary.Text, nil); err != nil {
			p.logger.Warn("failed to persist summary",
				"session_id", sessionID,
				"repo_key", repoKey,
				"error", err,
			)
		}
	}

	history.KeepLastMessages(p.keepLast)

	if summary != nil {
		p.logger.Info("pruned transcript",
			"session_id", sessionID,
			"items_summarized", summary.ItemCount,
			"kept_messages", p.keepLast,
		)
	}
	return summary, nil
}

// SummaryMessage wraps a summary in the marker message the classifier
// recognizes: the first text block starts with "[memory:" followed by
// the kind and repo tag. Appending it back into a transcript is safe;
// it will never be re-summarized.
func SummaryMessage(kind, repoKey string, summary *Summary) agentcontext.TranscriptItem {
	text := fmt.Sprintf("%s%s v1 | repo=%s]\n%s", SummaryPrefix, kind, repoKey, summary.Text)
	return agentcontext.NewInputTextMessage(agentcontext.RoleUser, text)
}
