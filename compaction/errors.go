package compaction

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors for compaction operations.
var (
	// ErrInvalidConfig indicates invalid compaction configuration.
	ErrInvalidConfig = errors.New("invalid compaction configuration")

	// ErrMalformedContent indicates a transcript item carries a content
	// block the summarizer cannot interpret.
	ErrMalformedContent = errors.New("malformed content block")

	// ErrSummarizationFailed indicates a model-backed summarization call failed.
	ErrSummarizationFailed = errors.New("summarization failed")
)

// SummarizerError provides structured context for summarization failures.
type SummarizerError struct {
	// Op is the operation that failed (e.g., "Summarize")
	Op string

	// SessionID is the session id if applicable
	SessionID uuid.UUID

	// Err is the underlying error
	Err error
}

// Error returns a formatted error message.
func (e *SummarizerError) Error() string {
	msg := fmt.Sprintf("summarizer %s failed", e.Op)
	if e.SessionID != uuid.Nil {
		msg += fmt.Sprintf(" for session %s", e.SessionID)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *SummarizerError) Unwrap() error {
	return e.Err
}

// NewSummarizerError creates a new SummarizerError.
func NewSummarizerError(op string, err error) *SummarizerError {
	return &SummarizerError{Op: op, Err: err}
}

// WithSession sets the session id and returns the error for chaining.
func (e *SummarizerError) WithSession(sessionID uuid.UUID) *SummarizerError {
	e.SessionID = sessionID
	return e
}
