package agentcontext

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common errors
var (
	// ErrInvalidConfig is returned when the conversation configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConversationNotFound is returned when a conversation id is unknown
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrSessionConfiguredNotFirstEvent is returned when the first event
	// observed after spawning a session is not SessionConfigured
	ErrSessionConfiguredNotFirstEvent = errors.New("expected SessionConfigured to be the first event")

	// ErrAuthUnavailable is returned when no credential can be loaded
	// for the requested auth mode
	ErrAuthUnavailable = errors.New("auth unavailable")

	// ErrSpawnFailed is returned when the session collaborator could not be spawned
	ErrSpawnFailed = errors.New("session spawn failed")
)

// ConversationError provides structured context for registry operations.
type ConversationError struct {
	// Op is the operation that failed (e.g., "NewConversation")
	Op string

	// ConversationID is the conversation id if known
	ConversationID uuid.UUID

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *ConversationError) Error() string {
	if e.ConversationID != uuid.Nil {
		return fmt.Sprintf("%s (conversation=%s): %v", e.Op, e.ConversationID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *ConversationError) Unwrap() error {
	return e.Err
}

// NewConversationError creates a new ConversationError
func NewConversationError(op string, err error) *ConversationError {
	return &ConversationError{Op: op, Err: err}
}

// WithConversation sets the conversation id and returns the error for chaining.
func (e *ConversationError) WithConversation(id uuid.UUID) *ConversationError {
	e.ConversationID = id
	return e
}
