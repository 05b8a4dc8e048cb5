// Package memory persists conversation summaries and scores them for
// retrieval. Stores are append-only: a summary written for a repo and
// session is never rewritten, and Recent returns the newest entries
// first.
package memory

import (
	"time"

	"github.com/google/uuid"
)

// KindSummary is the record kind for conversation summaries.
const KindSummary = "summary"

// StoredSummary is one persisted summary record.
type StoredSummary struct {
	RepoKey   string   `json:"repo_key"`
	SessionID string   `json:"session_id"`
	TS        int64    `json:"ts"` // unix ms
	Kind      string   `json:"kind"`
	Title     string   `json:"title"`
	Text      string   `json:"text"`
	MsgIDs    []string `json:"msg_ids,omitempty"`
}

// Store is the persistence contract for summaries.
type Store interface {
	// Append records a summary for the given repo and session.
	Append(repoKey string, sessionID uuid.UUID, title, text string, msgIDs []string) error

	// Recent returns up to limit summaries for repoKey, newest first.
	Recent(repoKey string, limit int) ([]StoredSummary, error)
}

func newRecord(repoKey string, sessionID uuid.UUID, title, text string, msgIDs []string) StoredSummary {
	return StoredSummary{
		RepoKey:   repoKey,
		SessionID: sessionID.String(),
		TS:        time.Now().UnixMilli(),
		Kind:      KindSummary,
		Title:     title,
		Text:      text,
		MsgIDs:    msgIDs,
	}
}
